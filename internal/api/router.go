package api

import (
	"net/http"

	"github.com/dianestephani/laango-backend/internal/api/handler/dispatch"
	"github.com/dianestephani/laango-backend/internal/api/handler/interpreter"
	"github.com/dianestephani/laango-backend/internal/api/handler/job"
	"github.com/dianestephani/laango-backend/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func (s *Server) SetupAPIRoutes(
	interpreterHandler *interpreter.InterpreterHandler,
	jobHandler *job.JobHandler,
	dispatchHandler *dispatch.DispatchHandler,
	idempotencyMiddleware *middleware.IdempotencyMiddleware,
) {
	s.engine.Use(gin.Recovery())

	v1 := s.engine.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Laango API is running",
		})
	})

	// operator routes come through the gateway with an authenticated user id
	admin := v1.Group("", middleware.HandleAuth())
	{
		admin.POST("/interpreters", interpreterHandler.Create)
		admin.PUT("/interpreters/:id", interpreterHandler.Update)
		admin.POST("/jobs", jobHandler.Create)
		admin.POST("/dispatch", idempotencyMiddleware.Handle, dispatchHandler.Send)
	}

	v1.GET("/interpreters", interpreterHandler.List)
	v1.GET("/interpreters/:id", interpreterHandler.Get)
	v1.GET("/interpreters/:id/jobs", interpreterHandler.Jobs)
	v1.GET("/interpreters/:id/jobs/available", interpreterHandler.AvailableJobs)
	v1.POST("/interpreters/:id/jobs/:job_id/accept", interpreterHandler.Accept)

	v1.GET("/jobs", jobHandler.List)
	v1.GET("/jobs/:id", jobHandler.Get)
	v1.GET("/jobs/:id/eligible", jobHandler.Eligible)
	v1.GET("/jobs/:id/contacts", jobHandler.Contacts)
}
