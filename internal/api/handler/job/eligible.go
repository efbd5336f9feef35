package job

import (
	"net/http"

	"github.com/dianestephani/laango-backend/internal/api/response"

	"github.com/gin-gonic/gin"
)

// Eligible godoc
// @Summary      List eligible interpreters
// @Description  Interpreters sharing at least one needed language and meeting the certification requirement
// @Tags         Jobs
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200 {object} map[string]interface{} "Ordered matches with matched languages"
// @Failure      404 {object} map[string]string "Job not found"
// @Router       /v1/jobs/{id}/eligible [get]
func (h *JobHandler) Eligible(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.matcherService.FindEligibleInterpreters(c, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.NoLanguagesNeeded {
		c.JSON(http.StatusOK, gin.H{
			"message": "no languages specified",
			"data":    result,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    result,
	})
}
