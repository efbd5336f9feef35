package dispatch

import (
	"net/http"

	"github.com/dianestephani/laango-backend/internal/api/request"
	"github.com/dianestephani/laango-backend/internal/api/response"

	"github.com/gin-gonic/gin"
)

// Send godoc
// @Summary      Dispatch job notifications
// @Description  Text a job opportunity to a set of phone numbers; each recipient is independent
// @Tags         Dispatch
// @Accept       json
// @Produce      json
// @Param        request body request.DispatchRequest true "Dispatch request body"
// @Success      200 {object} map[string]interface{} "Dispatch report with per-recipient outcomes"
// @Failure      400 {object} map[string]string "Missing recipients, message or job id"
// @Failure      404 {object} map[string]string "Job not found"
// @Failure      503 {object} map[string]string "Messaging provider not configured"
// @Router       /v1/dispatch [post]
// @Security     ApiKeyAuth
func (h *DispatchHandler) Send(c *gin.Context) {
	var req request.DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.dispatchService.SendNotifications(c, req.JobID, req.PhoneNumbers, req.Message)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    report,
	})
}
