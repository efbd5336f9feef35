package interpreter

import (
	"fmt"
	"net/http"

	"github.com/dianestephani/laango-backend/internal/api/response"

	"github.com/gin-gonic/gin"
)

// Accept godoc
// @Summary      Accept a job
// @Description  Claim an unassigned job for an interpreter
// @Tags         Interpreters
// @Produce      json
// @Param        id path int true "Interpreter ID"
// @Param        job_id path int true "Job ID"
// @Success      200 {object} map[string]interface{} "Job assigned"
// @Failure      404 {object} map[string]string "Interpreter or job not found"
// @Failure      409 {object} map[string]string "Job already assigned or requirements unmet"
// @Router       /v1/interpreters/{id}/jobs/{job_id}/accept [post]
func (h *InterpreterHandler) Accept(c *gin.Context) {
	interpreterID, ok := pathID(c, "id")
	if !ok {
		return
	}
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	job, err := h.assignmentService.AcceptJob(c, interpreterID, jobID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("job %d successfully assigned", job.ID),
		"job_id":  job.ID,
		"status":  job.Status,
	})
}
