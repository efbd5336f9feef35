package job

import (
	"context"

	"github.com/dianestephani/laango-backend/internal/domain"
)

type jobService struct {
	jobRepository         jobRepository
	contactRepository     contactRepository
	interpreterRepository interpreterRepository
}

type jobRepository interface {
	Create(ctx context.Context, d domain.Job) (domain.Job, error)
	GetByID(ctx context.Context, id int64) (domain.Job, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Job, int64, error)
}

type contactRepository interface {
	ListByJob(ctx context.Context, jobID int64) ([]domain.ContactRecord, error)
}

type interpreterRepository interface {
	GetByID(ctx context.Context, id int64) (domain.Interpreter, error)
}

func NewJobService(
	jobRepo jobRepository,
	contactRepo contactRepository,
	interpreterRepo interpreterRepository,
) *jobService {
	return &jobService{
		jobRepository:         jobRepo,
		contactRepository:     contactRepo,
		interpreterRepository: interpreterRepo,
	}
}
