package repository

import (
	"context"

	"github.com/dianestephani/laango-backend/internal/constant"
	"github.com/dianestephani/laango-backend/internal/domain"
	"github.com/dianestephani/laango-backend/internal/repository/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type interpreterRepository struct {
	db *gorm.DB
}

func NewInterpreterRepository(db *gorm.DB) *interpreterRepository {
	return &interpreterRepository{
		db: db,
	}
}

func (ir *interpreterRepository) Create(ctx context.Context, d domain.Interpreter) (domain.Interpreter, error) {
	e := entity.InterpreterFromDomain(d)
	if err := gorm.G[entity.Interpreter](ir.db).Create(ctx, &e); err != nil {
		return domain.Interpreter{}, errors.Wrap(err, "failed to create interpreter")
	}

	return e.ToDomain(), nil
}

func (ir *interpreterRepository) Update(ctx context.Context, d domain.Interpreter) (domain.Interpreter, error) {
	e := entity.InterpreterFromDomain(d)
	if err := ir.db.WithContext(ctx).Save(&e).Error; err != nil {
		return domain.Interpreter{}, errors.Wrap(err, "failed to update interpreter")
	}

	return e.ToDomain(), nil
}

func (ir *interpreterRepository) GetByID(ctx context.Context, id int64) (domain.Interpreter, error) {
	e, err := gorm.G[entity.Interpreter](ir.db).Where("id = ?", id).First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Interpreter{}, errors.Wrapf(constant.NotFoundErr, "interpreter %d", id)
		}
		return domain.Interpreter{}, errors.Wrap(err, "failed to get interpreter")
	}

	return e.ToDomain(), nil
}

// GetByPhone resolves a dialed number back to an interpreter on file.
func (ir *interpreterRepository) GetByPhone(ctx context.Context, phone string) (domain.Interpreter, error) {
	e, err := gorm.G[entity.Interpreter](ir.db).Where("phone_number = ?", phone).First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Interpreter{}, errors.Wrapf(constant.NotFoundErr, "interpreter with phone %s", phone)
		}
		return domain.Interpreter{}, errors.Wrap(err, "failed to get interpreter by phone")
	}

	return e.ToDomain(), nil
}

// GetAll returns the whole directory ordered by (last name, first name).
func (ir *interpreterRepository) GetAll(ctx context.Context) ([]domain.Interpreter, error) {
	rows, err := gorm.G[entity.Interpreter](ir.db).Order("last_name, first_name").Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list interpreters")
	}

	out := make([]domain.Interpreter, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out, nil
}

func (ir *interpreterRepository) List(ctx context.Context, limit, offset int) ([]domain.Interpreter, int64, error) {
	total, err := gorm.G[entity.Interpreter](ir.db).Count(ctx, "id")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count interpreters")
	}

	rows, err := gorm.G[entity.Interpreter](ir.db).
		Order("last_name, first_name").
		Limit(limit).
		Offset(offset).
		Find(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list interpreters")
	}

	out := make([]domain.Interpreter, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out, total, nil
}
