package interpreter

import (
	"context"

	"github.com/dianestephani/laango-backend/internal/domain"
)

type interpreterService struct {
	interpreterRepository interpreterRepository
}

type interpreterRepository interface {
	Create(ctx context.Context, d domain.Interpreter) (domain.Interpreter, error)
	Update(ctx context.Context, d domain.Interpreter) (domain.Interpreter, error)
	GetByID(ctx context.Context, id int64) (domain.Interpreter, error)
	List(ctx context.Context, limit, offset int) ([]domain.Interpreter, int64, error)
}

func NewInterpreterService(interpreterRepo interpreterRepository) *interpreterService {
	return &interpreterService{
		interpreterRepository: interpreterRepo,
	}
}
