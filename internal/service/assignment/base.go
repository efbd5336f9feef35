package assignment

import (
	"context"

	"github.com/dianestephani/laango-backend/internal/domain"
)

type assignmentService struct {
	interpreterRepository interpreterRepository
	jobRepository         jobRepository
}

type interpreterRepository interface {
	GetByID(ctx context.Context, id int64) (domain.Interpreter, error)
}

type jobRepository interface {
	GetByID(ctx context.Context, id int64) (domain.Job, error)
	Assign(ctx context.Context, jobID, interpreterID int64) (bool, error)
	ListAssigned(ctx context.Context, interpreterID int64) ([]domain.Job, error)
	SumPayments(ctx context.Context, interpreterID int64) (int64, error)
	ListAvailable(ctx context.Context, certified bool) ([]domain.Job, error)
}

func NewAssignmentService(
	interpreterRepo interpreterRepository,
	jobRepo jobRepository,
) *assignmentService {
	return &assignmentService{
		interpreterRepository: interpreterRepo,
		jobRepository:         jobRepo,
	}
}
