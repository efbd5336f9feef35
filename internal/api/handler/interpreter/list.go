package interpreter

import (
	"net/http"

	"github.com/dianestephani/laango-backend/internal/api/response"
	"github.com/dianestephani/laango-backend/pkg/paginator"

	"github.com/gin-gonic/gin"
)

// List godoc
// @Summary      List interpreters
// @Description  Paginated directory listing ordered by last name, first name
// @Tags         Interpreters
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Number of items per page" default(10)
// @Success      200 {object} map[string]interface{} "Interpreters with pagination metadata"
// @Router       /v1/interpreters [get]
func (h *InterpreterHandler) List(c *gin.Context) {
	pagination := paginator.New(c)

	all, count, err := h.interpreterService.List(c, pagination.Size, pagination.From)
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
