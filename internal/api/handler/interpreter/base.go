package interpreter

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dianestephani/laango-backend/internal/api/request"
	"github.com/dianestephani/laango-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type InterpreterHandler struct {
	interpreterService interpreterService
	assignmentService  assignmentService
}

type interpreterService interface {
	Create(ctx context.Context, req request.CreateInterpreterRequest) (domain.Interpreter, error)
	Update(ctx context.Context, id int64, req request.UpdateInterpreterRequest) (domain.Interpreter, error)
	GetByID(ctx context.Context, id int64) (domain.Interpreter, error)
	List(ctx context.Context, limit, offset int) ([]domain.Interpreter, int64, error)
}

type assignmentService interface {
	AcceptJob(ctx context.Context, interpreterID, jobID int64) (domain.Job, error)
	InterpreterJobs(ctx context.Context, interpreterID int64) (domain.Interpreter, []domain.Job, int64, error)
	AvailableJobs(ctx context.Context, interpreterID int64) (domain.Interpreter, []domain.Job, error)
}

func New(interpreterService interpreterService, assignmentService assignmentService) *InterpreterHandler {
	return &InterpreterHandler{
		interpreterService: interpreterService,
		assignmentService:  assignmentService,
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
