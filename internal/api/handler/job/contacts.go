package job

import (
	"net/http"

	"github.com/dianestephani/laango-backend/internal/api/response"

	"github.com/gin-gonic/gin"
)

// Contacts returns the job's audit trail of sent messages, newest first.
func (h *JobHandler) Contacts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	records, err := h.jobService.Contacts(c, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    records,
		"total":   len(records),
	})
}
