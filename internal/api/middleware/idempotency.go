package middleware

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"

	"github.com/dianestephani/laango-backend/internal/constant"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type IdempotencyMiddleware struct {
	redisClient *redis.Client
}

func NewIdempotencyMiddleware(redisClient *redis.Client) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{
		redisClient: redisClient,
	}
}

// Handle short-circuits a dispatch request identical to one recently
// completed, so a double-submitted form does not text everyone twice.
// The key is the hash of the raw body; it is only marked after the
// handler finishes successfully.
func (i *IdempotencyMiddleware) Handle(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "request is invalid"})
		return
	}
	// hand the body back to the handler
	c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))

	key := fmt.Sprintf("laango:dispatch:%x", sha256.Sum256(raw))

	exists, err := i.redisClient.Exists(c, key).Result()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if exists > 0 {
		// its already accepted
		c.JSON(http.StatusAccepted, gin.H{
			"message": "dispatch already accepted",
		})
		c.Abort()
		return
	}

	c.Next()

	if c.Writer.Status() == http.StatusOK {
		i.redisClient.Set(c, key, 1, constant.IdempotencyKeyTTL)
	}
}
