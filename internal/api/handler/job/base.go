package job

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dianestephani/laango-backend/internal/api/request"
	"github.com/dianestephani/laango-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobService     jobService
	matcherService matcherService
}

type jobService interface {
	Create(ctx context.Context, req request.CreateJobRequest) (domain.Job, error)
	Detail(ctx context.Context, id int64) (domain.Job, string, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Job, int64, error)
	Contacts(ctx context.Context, jobID int64) ([]domain.ContactRecord, error)
}

type matcherService interface {
	FindEligibleInterpreters(ctx context.Context, jobID int64) (domain.MatchResult, error)
}

func New(jobService jobService, matcherService matcherService) *JobHandler {
	return &JobHandler{
		jobService:     jobService,
		matcherService: matcherService,
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}
