package interpreter

import (
	"net/http"

	"github.com/dianestephani/laango-backend/internal/api/response"

	"github.com/gin-gonic/gin"
)

// Jobs returns the interpreter's assigned jobs and projected earnings:
// the payment sum over every assigned job regardless of status.
func (h *InterpreterHandler) Jobs(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	interp, jobs, earnings, err := h.assignmentService.InterpreterJobs(c, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"interpreter": gin.H{
			"id":    interp.ID,
			"name":  interp.FullName(),
			"email": interp.EmailAddress,
		},
		"jobs":               jobs,
		"total_jobs":         len(jobs),
		"projected_earnings": earnings,
	})
}
