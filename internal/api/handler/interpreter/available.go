package interpreter

import (
	"net/http"

	"github.com/dianestephani/laango-backend/internal/api/response"

	"github.com/gin-gonic/gin"
)

func (h *InterpreterHandler) AvailableJobs(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	interp, jobs, err := h.assignmentService.AvailableJobs(c, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"interpreter": gin.H{
			"id":   interp.ID,
			"name": interp.FullName(),
		},
		"available_jobs":  jobs,
		"total_available": len(jobs),
	})
}
