package matcher

import (
	"context"

	"github.com/dianestephani/laango-backend/internal/domain"
)

type matcherService struct {
	jobRepository         jobRepository
	interpreterRepository interpreterRepository
	rank                  RankFunc
}

type jobRepository interface {
	GetByID(ctx context.Context, id int64) (domain.Job, error)
}

type interpreterRepository interface {
	GetAll(ctx context.Context) ([]domain.Interpreter, error)
}

// RankFunc reorders eligible matches. The default keeps directory order;
// geographic proximity ranking stays disabled and nothing registers a
// replacement.
type RankFunc func([]domain.Match) []domain.Match

func NewMatcherService(
	jobRepo jobRepository,
	interpreterRepo interpreterRepository,
	rank RankFunc,
) *matcherService {
	if rank == nil {
		rank = func(matches []domain.Match) []domain.Match { return matches }
	}

	return &matcherService{
		jobRepository:         jobRepo,
		interpreterRepository: interpreterRepo,
		rank:                  rank,
	}
}
