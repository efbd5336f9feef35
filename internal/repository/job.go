package repository

import (
	"context"

	"github.com/dianestephani/laango-backend/internal/constant"
	"github.com/dianestephani/laango-backend/internal/domain"
	"github.com/dianestephani/laango-backend/internal/repository/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *jobRepository {
	return &jobRepository{
		db: db,
	}
}

func (jr *jobRepository) Create(ctx context.Context, d domain.Job) (domain.Job, error) {
	e := entity.JobFromDomain(d)
	if err := gorm.G[entity.Job](jr.db).Create(ctx, &e); err != nil {
		return domain.Job{}, errors.Wrap(err, "failed to create job")
	}

	return e.ToDomain(), nil
}

func (jr *jobRepository) GetByID(ctx context.Context, id int64) (domain.Job, error) {
	e, err := gorm.G[entity.Job](jr.db).Where("id = ?", id).First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Job{}, errors.Wrapf(constant.NotFoundErr, "job %d", id)
		}
		return domain.Job{}, errors.Wrap(err, "failed to get job")
	}

	return e.ToDomain(), nil
}

func (jr *jobRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Job, int64, error) {
	if status != "" {
		total, err := gorm.G[entity.Job](jr.db).
			Where("status = ?", status).
			Count(ctx, "id")
		if err != nil {
			return nil, 0, errors.Wrap(err, "failed to count jobs")
		}

		rows, err := gorm.G[entity.Job](jr.db).
			Where("status = ?", status).
			Order("date DESC, start_time DESC").
			Limit(limit).
			Offset(offset).
			Find(ctx)
		if err != nil {
			return nil, 0, errors.Wrap(err, "failed to list jobs")
		}

		return toDomainJobs(rows), total, nil
	}

	total, err := gorm.G[entity.Job](jr.db).Count(ctx, "id")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count jobs")
	}

	rows, err := gorm.G[entity.Job](jr.db).
		Order("date DESC, start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list jobs")
	}

	return toDomainJobs(rows), total, nil
}

// Assign performs the acceptance transition as one conditional update so
// two concurrent acceptances cannot both win. Returns false when the job
// was no longer unassigned.
func (jr *jobRepository) Assign(ctx context.Context, jobID, interpreterID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, constant.DBTxTimeout)
	defer cancel()

	rowsAffected, err := gorm.G[entity.Job](jr.db).
		Where("id = ? AND status = ?", jobID, string(domain.JobStatusUnassigned)).
		Updates(ctx, entity.Job{
			Status:                string(domain.JobStatusAssigned),
			AssignedInterpreterID: &interpreterID,
		})
	if err != nil {
		return false, errors.Wrap(err, "failed to assign job")
	}

	return rowsAffected > 0, nil
}

// ListAssigned returns every job currently assigned to the interpreter,
// regardless of status, newest first.
func (jr *jobRepository) ListAssigned(ctx context.Context, interpreterID int64) ([]domain.Job, error) {
	rows, err := gorm.G[entity.Job](jr.db).
		Where("assigned_interpreter_id = ?", interpreterID).
		Order("date DESC, start_time DESC").
		Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assigned jobs")
	}

	return toDomainJobs(rows), nil
}

// SumPayments totals payment over every job assigned to the interpreter.
// Cancelled and completed jobs still count, matching the earnings view.
func (jr *jobRepository) SumPayments(ctx context.Context, interpreterID int64) (int64, error) {
	var total int64
	err := jr.db.WithContext(ctx).
		Model(&entity.Job{}).
		Select("COALESCE(SUM(payment), 0)").
		Where("assigned_interpreter_id = ?", interpreterID).
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum payments")
	}

	return total, nil
}

// ListAvailable returns unassigned jobs an interpreter could claim. Jobs
// requiring certification are hidden from uncertified interpreters.
func (jr *jobRepository) ListAvailable(ctx context.Context, certified bool) ([]domain.Job, error) {
	q := gorm.G[entity.Job](jr.db).Where("status = ?", string(domain.JobStatusUnassigned))
	if !certified {
		q = q.Where("requires_certification = ?", false)
	}

	rows, err := q.Order("date DESC, start_time DESC").Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available jobs")
	}

	return toDomainJobs(rows), nil
}

func toDomainJobs(rows []entity.Job) []domain.Job {
	out := make([]domain.Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}
	return out
}
