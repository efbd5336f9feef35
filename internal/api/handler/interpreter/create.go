package interpreter

import (
	"net/http"

	"github.com/dianestephani/laango-backend/internal/api/request"
	"github.com/dianestephani/laango-backend/internal/api/response"

	"github.com/gin-gonic/gin"
)

// Create godoc
// @Summary      Create interpreter profile
// @Description  Register a new interpreter in the directory
// @Tags         Interpreters
// @Accept       json
// @Produce      json
// @Param        request body request.CreateInterpreterRequest true "Interpreter profile"
// @Success      201 {object} map[string]interface{} "Created profile"
// @Failure      400 {object} map[string]string "Invalid request body"
// @Router       /v1/interpreters [post]
func (h *InterpreterHandler) Create(c *gin.Context) {
	var req request.CreateInterpreterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interp, err := h.interpreterService.Create(c, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "success",
		"data":    interp,
	})
}
