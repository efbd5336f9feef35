package repository

import (
	"context"

	"github.com/dianestephani/laango-backend/internal/domain"
	"github.com/dianestephani/laango-backend/internal/repository/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *contactRepository {
	return &contactRepository{
		db: db,
	}
}

// Create appends one audit row. There is deliberately no update or
// delete counterpart.
func (cr *contactRepository) Create(ctx context.Context, d domain.ContactRecord) (domain.ContactRecord, error) {
	e := entity.InterpreterContact{
		JobID:         d.JobID,
		InterpreterID: d.InterpreterID,
		MessageSent:   d.MessageSent,
		PhoneNumber:   d.PhoneNumber,
	}
	if err := gorm.G[entity.InterpreterContact](cr.db).Create(ctx, &e); err != nil {
		return domain.ContactRecord{}, errors.Wrap(err, "failed to create contact record")
	}

	return e.ToDomain(), nil
}

func (cr *contactRepository) ListByJob(ctx context.Context, jobID int64) ([]domain.ContactRecord, error) {
	rows, err := gorm.G[entity.InterpreterContact](cr.db).
		Where("job_id = ?", jobID).
		Order("contacted_at DESC").
		Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact records")
	}

	out := make([]domain.ContactRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out, nil
}
