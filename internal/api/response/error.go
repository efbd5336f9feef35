package response

import (
	"net/http"

	"github.com/dianestephani/laango-backend/internal/constant"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Error maps a service error onto the HTTP response. Unknown errors
// surface as a generic failure rather than leaking internals.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.ValidationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, constant.NotFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, constant.ConflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, constant.ConfigurationErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
