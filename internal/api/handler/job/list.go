package job

import (
	"net/http"

	"github.com/dianestephani/laango-backend/internal/api/response"
	"github.com/dianestephani/laango-backend/pkg/paginator"

	"github.com/gin-gonic/gin"
)

// List godoc
// @Summary      List jobs
// @Description  Paginated job listing, newest first, optionally filtered by status
// @Tags         Jobs
// @Produce      json
// @Param        status query string false "Job status filter"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Number of items per page" default(10)
// @Success      200 {object} map[string]interface{} "Jobs with pagination metadata"
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	pagination := paginator.New(c)
	status := c.Query("status")

	all, count, err := h.jobService.List(c, status, pagination.Size, pagination.From)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    all,
		"meta": gin.H{
			"page_size": pagination.Size,
			"page":      pagination.Page,
			"total":     count,
		},
	})
}
