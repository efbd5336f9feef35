package job

import (
	"context"
	"time"

	"github.com/dianestephani/laango-backend/internal/api/request"
	"github.com/dianestephani/laango-backend/internal/constant"
	"github.com/dianestephani/laango-backend/internal/domain"

	"github.com/pkg/errors"
)

// Create posts a new job. Status is always unassigned at creation; the
// only way to assigned is through the acceptance transition.
func (js *jobService) Create(ctx context.Context, req request.CreateJobRequest) (domain.Job, error) {
	langs, err := domain.ParseLanguages(req.Languages)
	if err != nil {
		return domain.Job{}, errors.Wrap(constant.ValidationErr, err.Error())
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.Job{}, errors.Wrap(constant.ValidationErr, "date must be formatted 2006-01-02")
	}

	if _, err := time.Parse("15:04", req.Time); err != nil {
		return domain.Job{}, errors.Wrap(constant.ValidationErr, "time must be formatted 15:04")
	}

	return js.jobRepository.Create(ctx, domain.Job{
		NeededLanguages:       langs,
		StreetAddress:         req.StreetAddress,
		City:                  req.City,
		State:                 req.State,
		ZipCode:               req.ZipCode,
		Date:                  date,
		StartTime:             req.Time,
		JobType:               domain.JobType(req.JobType),
		Status:                domain.JobStatusUnassigned,
		RequiresCertification: req.RequiresCertification,
		Payment:               req.Payment,
		MileageIncluded:       req.MileageIncluded,
	})
}

func (js *jobService) GetByID(ctx context.Context, id int64) (domain.Job, error) {
	return js.jobRepository.GetByID(ctx, id)
}

// Detail resolves the assigned interpreter's display name alongside the
// job; the name is empty while the job is unassigned.
func (js *jobService) Detail(ctx context.Context, id int64) (domain.Job, string, error) {
	j, err := js.jobRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Job{}, "", err
	}

	var assignedName string
	if j.AssignedInterpreterID != nil {
		interp, err := js.interpreterRepository.GetByID(ctx, *j.AssignedInterpreterID)
		if err == nil {
			assignedName = interp.FullName()
		}
	}

	return j, assignedName, nil
}

func (js *jobService) List(ctx context.Context, status string, limit, offset int) ([]domain.Job, int64, error) {
	return js.jobRepository.List(ctx, status, limit, offset)
}

// Contacts returns the job's audit trail, newest first.
func (js *jobService) Contacts(ctx context.Context, jobID int64) ([]domain.ContactRecord, error) {
	if _, err := js.jobRepository.GetByID(ctx, jobID); err != nil {
		return nil, err
	}

	return js.contactRepository.ListByJob(ctx, jobID)
}
