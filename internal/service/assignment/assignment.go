package assignment

import (
	"context"

	"github.com/dianestephani/laango-backend/internal/constant"
	"github.com/dianestephani/laango-backend/internal/domain"

	"github.com/pkg/errors"
)

// AcceptJob claims an open job for an interpreter. Eligibility is
// re-checked at the transition, and the status flip is a conditional
// update, so a job can be won exactly once: the loser of a race, or any
// later attempt, gets ConflictErr.
func (as *assignmentService) AcceptJob(ctx context.Context, interpreterID, jobID int64) (domain.Job, error) {
	interp, err := as.interpreterRepository.GetByID(ctx, interpreterID)
	if err != nil {
		return domain.Job{}, err
	}

	job, err := as.jobRepository.GetByID(ctx, jobID)
	if err != nil {
		return domain.Job{}, err
	}

	if job.RequiresCertification && !interp.Certified {
		return domain.Job{}, errors.Wrap(constant.ConflictErr, "job requires certification")
	}
	if len(job.NeededLanguages) > 0 && len(interp.SpokenSubset(job.NeededLanguages)) == 0 {
		return domain.Job{}, errors.Wrap(constant.ConflictErr, "interpreter does not speak a needed language")
	}

	assigned, err := as.jobRepository.Assign(ctx, jobID, interpreterID)
	if err != nil {
		return domain.Job{}, err
	}
	if !assigned {
		return domain.Job{}, errors.Wrapf(constant.ConflictErr, "job %d is no longer unassigned", jobID)
	}

	return as.jobRepository.GetByID(ctx, jobID)
}

// InterpreterJobs returns an interpreter's assigned jobs with projected
// earnings: the payment sum over every assigned job, any status.
func (as *assignmentService) InterpreterJobs(ctx context.Context, interpreterID int64) (domain.Interpreter, []domain.Job, int64, error) {
	interp, err := as.interpreterRepository.GetByID(ctx, interpreterID)
	if err != nil {
		return domain.Interpreter{}, nil, 0, err
	}

	jobs, err := as.jobRepository.ListAssigned(ctx, interpreterID)
	if err != nil {
		return domain.Interpreter{}, nil, 0, err
	}

	earnings, err := as.jobRepository.SumPayments(ctx, interpreterID)
	if err != nil {
		return domain.Interpreter{}, nil, 0, err
	}

	return interp, jobs, earnings, nil
}

// AvailableJobs lists open jobs the interpreter could claim.
func (as *assignmentService) AvailableJobs(ctx context.Context, interpreterID int64) (domain.Interpreter, []domain.Job, error) {
	interp, err := as.interpreterRepository.GetByID(ctx, interpreterID)
	if err != nil {
		return domain.Interpreter{}, nil, err
	}

	jobs, err := as.jobRepository.ListAvailable(ctx, interp.Certified)
	if err != nil {
		return domain.Interpreter{}, nil, err
	}

	return interp, jobs, nil
}
