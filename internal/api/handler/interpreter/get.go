package interpreter

import (
	"net/http"

	"github.com/dianestephani/laango-backend/internal/api/response"

	"github.com/gin-gonic/gin"
)

// Get returns a profile with the interpreter's assigned jobs attached,
// the shape the admin detail page renders.
func (h *InterpreterHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	interp, jobs, _, err := h.assignmentService.InterpreterJobs(c, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data": gin.H{
			"interpreter":   interp,
			"full_name":     interp.FullName(),
			"assigned_jobs": jobs,
			"job_count":     len(jobs),
		},
	})
}
