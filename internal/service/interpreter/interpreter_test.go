package interpreter

import (
	"context"
	"testing"

	"github.com/dianestephani/laango-backend/internal/api/request"
	"github.com/dianestephani/laango-backend/internal/constant"
	"github.com/dianestephani/laango-backend/internal/domain"

	"github.com/pkg/errors"
)

type fakeRepo struct {
	stored  domain.Interpreter
	getErr  error
	updated *domain.Interpreter
}

func (f *fakeRepo) Create(_ context.Context, d domain.Interpreter) (domain.Interpreter, error) {
	d.ID = 1
	return d, nil
}

func (f *fakeRepo) Update(_ context.Context, d domain.Interpreter) (domain.Interpreter, error) {
	f.updated = &d
	return d, nil
}

func (f *fakeRepo) GetByID(_ context.Context, _ int64) (domain.Interpreter, error) {
	return f.stored, f.getErr
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]domain.Interpreter, int64, error) {
	return nil, 0, nil
}

func TestCreateParsesLanguages(t *testing.T) {
	is := NewInterpreterService(&fakeRepo{})

	created, err := is.Create(context.Background(), request.CreateInterpreterRequest{
		FirstName:    "Ana",
		LastName:     "Alvarez",
		PhoneNumber:  "555-0001",
		EmailAddress: "ana@example.com",
		Languages:    []string{"spanish", "spanish", "amharic"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if len(created.Languages) != 2 {
		t.Fatalf("languages = %v, want deduplicated pair", created.Languages)
	}
}

func TestCreateRejectsUnknownLanguage(t *testing.T) {
	is := NewInterpreterService(&fakeRepo{})

	_, err := is.Create(context.Background(), request.CreateInterpreterRequest{
		FirstName: "Ana",
		LastName:  "Alvarez",
		Languages: []string{"klingon"},
	})
	if !errors.Is(err, constant.ValidationErr) {
		t.Fatalf("expected ValidationErr, got %v", err)
	}
}

func TestUpdateMissingInterpreter(t *testing.T) {
	is := NewInterpreterService(&fakeRepo{getErr: errors.Wrap(constant.NotFoundErr, "interpreter 9")})

	_, err := is.Update(context.Background(), 9, request.UpdateInterpreterRequest{})
	if !errors.Is(err, constant.NotFoundErr) {
		t.Fatalf("expected NotFoundErr, got %v", err)
	}
}

func TestUpdateOverwritesProfile(t *testing.T) {
	repo := &fakeRepo{stored: domain.Interpreter{
		ID:        9,
		FirstName: "Old",
		Certified: true,
		Languages: []domain.Language{domain.Mandarin},
	}}
	is := NewInterpreterService(repo)

	_, err := is.Update(context.Background(), 9, request.UpdateInterpreterRequest{
		FirstName:    "Ana",
		LastName:     "Alvarez",
		PhoneNumber:  "555-0001",
		EmailAddress: "ana@example.com",
		Certified:    false,
		Languages:    []string{"russian"},
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if repo.updated.Certified {
		t.Fatal("certification flag was not cleared")
	}
	if len(repo.updated.Languages) != 1 || repo.updated.Languages[0] != domain.Russian {
		t.Fatalf("languages = %v, want [russian]", repo.updated.Languages)
	}
	if repo.updated.ID != 9 {
		t.Fatalf("id = %d, want 9", repo.updated.ID)
	}
}
