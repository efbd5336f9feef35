package assignment

import (
	"context"
	"testing"

	"github.com/dianestephani/laango-backend/internal/constant"
	"github.com/dianestephani/laango-backend/internal/domain"

	"github.com/pkg/errors"
)

type fakeInterpreterRepo struct {
	interp domain.Interpreter
	err    error
}

func (f fakeInterpreterRepo) GetByID(_ context.Context, _ int64) (domain.Interpreter, error) {
	return f.interp, f.err
}

type fakeJobRepo struct {
	jobs         map[int64]domain.Job
	assignCalled bool
	available    []domain.Job
	availableArg *bool
	earnings     int64
}

func (f *fakeJobRepo) GetByID(_ context.Context, id int64) (domain.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return domain.Job{}, errors.Wrapf(constant.NotFoundErr, "job %d", id)
	}
	return j, nil
}

func (f *fakeJobRepo) Assign(_ context.Context, jobID, interpreterID int64) (bool, error) {
	f.assignCalled = true
	j, ok := f.jobs[jobID]
	if !ok || j.Status != domain.JobStatusUnassigned {
		return false, nil
	}
	j.Status = domain.JobStatusAssigned
	j.AssignedInterpreterID = &interpreterID
	f.jobs[jobID] = j
	return true, nil
}

func (f *fakeJobRepo) ListAssigned(_ context.Context, interpreterID int64) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range f.jobs {
		if j.AssignedInterpreterID != nil && *j.AssignedInterpreterID == interpreterID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) SumPayments(_ context.Context, _ int64) (int64, error) {
	return f.earnings, nil
}

func (f *fakeJobRepo) ListAvailable(_ context.Context, certified bool) ([]domain.Job, error) {
	f.availableArg = &certified
	return f.available, nil
}

func TestAcceptJob(t *testing.T) {
	interpID := int64(3)
	jobs := &fakeJobRepo{jobs: map[int64]domain.Job{
		5: {ID: 5, Status: domain.JobStatusUnassigned, NeededLanguages: []domain.Language{domain.Spanish}},
	}}
	as := NewAssignmentService(
		fakeInterpreterRepo{interp: domain.Interpreter{ID: interpID, Languages: []domain.Language{domain.Spanish}}},
		jobs,
	)

	got, err := as.AcceptJob(context.Background(), interpID, 5)
	if err != nil {
		t.Fatalf("AcceptJob error: %v", err)
	}
	if got.Status != domain.JobStatusAssigned {
		t.Fatalf("status = %s, want assigned", got.Status)
	}
	if got.AssignedInterpreterID == nil || *got.AssignedInterpreterID != interpID {
		t.Fatalf("assigned interpreter = %v, want %d", got.AssignedInterpreterID, interpID)
	}
}

func TestAcceptJobAlreadyAssigned(t *testing.T) {
	other := int64(9)
	jobs := &fakeJobRepo{jobs: map[int64]domain.Job{
		5: {ID: 5, Status: domain.JobStatusAssigned, AssignedInterpreterID: &other, NeededLanguages: []domain.Language{domain.Spanish}},
	}}
	as := NewAssignmentService(
		fakeInterpreterRepo{interp: domain.Interpreter{ID: 3, Languages: []domain.Language{domain.Spanish}}},
		jobs,
	)

	_, err := as.AcceptJob(context.Background(), 3, 5)
	if !errors.Is(err, constant.ConflictErr) {
		t.Fatalf("expected ConflictErr, got %v", err)
	}
	// the first interpreter keeps the job
	if *jobs.jobs[5].AssignedInterpreterID != other {
		t.Fatal("assignment was overwritten")
	}
}

func TestAcceptJobNotFound(t *testing.T) {
	as := NewAssignmentService(
		fakeInterpreterRepo{interp: domain.Interpreter{ID: 3}},
		&fakeJobRepo{jobs: map[int64]domain.Job{}},
	)

	_, err := as.AcceptJob(context.Background(), 3, 404)
	if !errors.Is(err, constant.NotFoundErr) {
		t.Fatalf("expected NotFoundErr, got %v", err)
	}
}

func TestAcceptJobInterpreterNotFound(t *testing.T) {
	as := NewAssignmentService(
		fakeInterpreterRepo{err: errors.Wrap(constant.NotFoundErr, "interpreter 404")},
		&fakeJobRepo{jobs: map[int64]domain.Job{5: {ID: 5, Status: domain.JobStatusUnassigned}}},
	)

	_, err := as.AcceptJob(context.Background(), 404, 5)
	if !errors.Is(err, constant.NotFoundErr) {
		t.Fatalf("expected NotFoundErr, got %v", err)
	}
}

func TestAcceptJobEligibilityRechecked(t *testing.T) {
	tests := []struct {
		name   string
		interp domain.Interpreter
		job    domain.Job
	}{
		{
			name:   "uncertified for certified job",
			interp: domain.Interpreter{ID: 3, Certified: false, Languages: []domain.Language{domain.Spanish}},
			job:    domain.Job{ID: 5, Status: domain.JobStatusUnassigned, RequiresCertification: true, NeededLanguages: []domain.Language{domain.Spanish}},
		},
		{
			name:   "no shared language",
			interp: domain.Interpreter{ID: 3, Languages: []domain.Language{domain.Mandarin}},
			job:    domain.Job{ID: 5, Status: domain.JobStatusUnassigned, NeededLanguages: []domain.Language{domain.Spanish}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := &fakeJobRepo{jobs: map[int64]domain.Job{tt.job.ID: tt.job}}
			as := NewAssignmentService(fakeInterpreterRepo{interp: tt.interp}, jobs)

			_, err := as.AcceptJob(context.Background(), tt.interp.ID, tt.job.ID)
			if !errors.Is(err, constant.ConflictErr) {
				t.Fatalf("expected ConflictErr, got %v", err)
			}
			if jobs.assignCalled {
				t.Fatal("transition attempted despite failed eligibility")
			}
		})
	}
}

func TestAcceptJobWithoutNeededLanguages(t *testing.T) {
	// a job posted with no languages can still be claimed
	jobs := &fakeJobRepo{jobs: map[int64]domain.Job{
		5: {ID: 5, Status: domain.JobStatusUnassigned},
	}}
	as := NewAssignmentService(fakeInterpreterRepo{interp: domain.Interpreter{ID: 3}}, jobs)

	got, err := as.AcceptJob(context.Background(), 3, 5)
	if err != nil {
		t.Fatalf("AcceptJob error: %v", err)
	}
	if got.Status != domain.JobStatusAssigned {
		t.Fatalf("status = %s, want assigned", got.Status)
	}
}

func TestInterpreterJobsProjectedEarnings(t *testing.T) {
	interpID := int64(3)
	jobs := &fakeJobRepo{
		jobs: map[int64]domain.Job{
			1: {ID: 1, Status: domain.JobStatusAssigned, AssignedInterpreterID: &interpID, Payment: 100},
			2: {ID: 2, Status: domain.JobStatusCancelled, AssignedInterpreterID: &interpID, Payment: 350},
		},
		earnings: 450,
	}
	as := NewAssignmentService(fakeInterpreterRepo{interp: domain.Interpreter{ID: interpID}}, jobs)

	_, assigned, earnings, err := as.InterpreterJobs(context.Background(), interpID)
	if err != nil {
		t.Fatalf("InterpreterJobs error: %v", err)
	}
	if len(assigned) != 2 {
		t.Fatalf("assigned jobs = %d, want 2", len(assigned))
	}
	// cancelled jobs still count toward projected earnings
	if earnings != 450 {
		t.Fatalf("earnings = %d, want 450", earnings)
	}
}

func TestAvailableJobsPassesCertification(t *testing.T) {
	tests := []struct {
		name      string
		certified bool
	}{
		{name: "certified sees all", certified: true},
		{name: "uncertified filtered", certified: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := &fakeJobRepo{jobs: map[int64]domain.Job{}}
			as := NewAssignmentService(
				fakeInterpreterRepo{interp: domain.Interpreter{ID: 3, Certified: tt.certified}},
				jobs,
			)

			if _, _, err := as.AvailableJobs(context.Background(), 3); err != nil {
				t.Fatalf("AvailableJobs error: %v", err)
			}
			if jobs.availableArg == nil || *jobs.availableArg != tt.certified {
				t.Fatalf("certified arg = %v, want %v", jobs.availableArg, tt.certified)
			}
		})
	}
}
