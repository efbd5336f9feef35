package matcher

import (
	"context"
	"testing"

	"github.com/dianestephani/laango-backend/internal/constant"
	"github.com/dianestephani/laango-backend/internal/domain"

	"github.com/pkg/errors"
)

type fakeJobRepo struct {
	job domain.Job
	err error
}

func (f fakeJobRepo) GetByID(_ context.Context, _ int64) (domain.Job, error) {
	return f.job, f.err
}

type fakeInterpreterRepo struct {
	interpreters []domain.Interpreter
}

func (f fakeInterpreterRepo) GetAll(_ context.Context) ([]domain.Interpreter, error) {
	return f.interpreters, nil
}

func interp(id int64, first, last string, certified bool, langs ...domain.Language) domain.Interpreter {
	return domain.Interpreter{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Certified: certified,
		Languages: langs,
	}
}

func TestFindEligibleNoLanguagesNeeded(t *testing.T) {
	ms := NewMatcherService(
		fakeJobRepo{job: domain.Job{ID: 1}},
		fakeInterpreterRepo{interpreters: []domain.Interpreter{
			interp(1, "Ana", "Alvarez", true, domain.Spanish),
		}},
		nil,
	)

	result, err := ms.FindEligibleInterpreters(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindEligibleInterpreters error: %v", err)
	}
	if !result.NoLanguagesNeeded {
		t.Fatal("expected NoLanguagesNeeded")
	}
	if len(result.Matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(result.Matches))
	}
}

func TestFindEligibleCertificationFilter(t *testing.T) {
	// job requires Spanish plus certification; A speaks Spanish but is
	// uncertified, B speaks Spanish and Russian and is certified
	job := domain.Job{
		ID:                    7,
		NeededLanguages:       []domain.Language{domain.Spanish},
		RequiresCertification: true,
	}
	a := interp(1, "Ana", "Alvarez", false, domain.Spanish)
	b := interp(2, "Boris", "Bukov", true, domain.Spanish, domain.Russian)

	ms := NewMatcherService(
		fakeJobRepo{job: job},
		fakeInterpreterRepo{interpreters: []domain.Interpreter{a, b}},
		nil,
	)

	result, err := ms.FindEligibleInterpreters(context.Background(), 7)
	if err != nil {
		t.Fatalf("FindEligibleInterpreters error: %v", err)
	}
	if len(result.Matches) != 1 {
		t.Fatalf("expected exactly 1 match, got %d", len(result.Matches))
	}
	if result.Matches[0].Interpreter.ID != b.ID {
		t.Fatalf("expected interpreter %d, got %d", b.ID, result.Matches[0].Interpreter.ID)
	}
	if len(result.Matches[0].MatchedLanguages) != 1 || result.Matches[0].MatchedLanguages[0] != domain.Spanish {
		t.Fatalf("matched languages = %v, want [spanish]", result.Matches[0].MatchedLanguages)
	}
}

func TestFindEligibleAnyLanguageMatch(t *testing.T) {
	tests := []struct {
		name     string
		needed   []domain.Language
		spoken   []domain.Language
		eligible bool
		matched  int
	}{
		{name: "speaks one of two", needed: []domain.Language{domain.Farsi, domain.Somali}, spoken: []domain.Language{domain.Somali}, eligible: true, matched: 1},
		{name: "speaks both", needed: []domain.Language{domain.Farsi, domain.Somali}, spoken: []domain.Language{domain.Farsi, domain.Somali}, eligible: true, matched: 2},
		{name: "speaks none needed", needed: []domain.Language{domain.Farsi}, spoken: []domain.Language{domain.Mandarin}, eligible: false},
		{name: "speaks nothing", needed: []domain.Language{domain.Farsi}, spoken: nil, eligible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := NewMatcherService(
				fakeJobRepo{job: domain.Job{ID: 1, NeededLanguages: tt.needed}},
				fakeInterpreterRepo{interpreters: []domain.Interpreter{
					interp(1, "Ana", "Alvarez", false, tt.spoken...),
				}},
				nil,
			)

			result, err := ms.FindEligibleInterpreters(context.Background(), 1)
			if err != nil {
				t.Fatalf("FindEligibleInterpreters error: %v", err)
			}
			if tt.eligible != (len(result.Matches) == 1) {
				t.Fatalf("eligible = %v, want %v", len(result.Matches) == 1, tt.eligible)
			}
			if tt.eligible && len(result.Matches[0].MatchedLanguages) != tt.matched {
				t.Fatalf("matched %d languages, want %d", len(result.Matches[0].MatchedLanguages), tt.matched)
			}
		})
	}
}

func TestFindEligibleOrdering(t *testing.T) {
	job := domain.Job{ID: 1, NeededLanguages: []domain.Language{domain.Spanish}}
	ms := NewMatcherService(
		fakeJobRepo{job: job},
		fakeInterpreterRepo{interpreters: []domain.Interpreter{
			interp(1, "Zoe", "Young", false, domain.Spanish),
			interp(2, "Ana", "Young", false, domain.Spanish),
			interp(3, "Mia", "Adams", false, domain.Spanish),
		}},
		nil,
	)

	result, err := ms.FindEligibleInterpreters(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindEligibleInterpreters error: %v", err)
	}

	var got []int64
	for _, m := range result.Matches {
		got = append(got, m.Interpreter.ID)
	}
	want := []int64{3, 2, 1} // Adams, then Young Ana, then Young Zoe
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestFindEligibleJobNotFound(t *testing.T) {
	ms := NewMatcherService(
		fakeJobRepo{err: errors.Wrap(constant.NotFoundErr, "job 9")},
		fakeInterpreterRepo{},
		nil,
	)

	_, err := ms.FindEligibleInterpreters(context.Background(), 9)
	if !errors.Is(err, constant.NotFoundErr) {
		t.Fatalf("expected NotFoundErr, got %v", err)
	}
}

func TestRankHookApplied(t *testing.T) {
	job := domain.Job{ID: 1, NeededLanguages: []domain.Language{domain.Spanish}}
	reverse := func(matches []domain.Match) []domain.Match {
		for i, j := 0, len(matches)-1; i < j; i, j = i+1, j-1 {
			matches[i], matches[j] = matches[j], matches[i]
		}
		return matches
	}
	ms := NewMatcherService(
		fakeJobRepo{job: job},
		fakeInterpreterRepo{interpreters: []domain.Interpreter{
			interp(1, "Mia", "Adams", false, domain.Spanish),
			interp(2, "Zoe", "Young", false, domain.Spanish),
		}},
		reverse,
	)

	result, err := ms.FindEligibleInterpreters(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindEligibleInterpreters error: %v", err)
	}
	if result.Matches[0].Interpreter.ID != 2 {
		t.Fatalf("rank hook not applied, first match = %d", result.Matches[0].Interpreter.ID)
	}
}
