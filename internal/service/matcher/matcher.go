package matcher

import (
	"context"
	"sort"

	"github.com/dianestephani/laango-backend/internal/domain"
)

// FindEligibleInterpreters computes who can take a job: an interpreter is
// eligible when they speak at least one of the job's needed languages
// (any match, not all) and, if the job requires certification, they hold
// it. Read-only; ordered by (last name, first name) ascending.
func (ms *matcherService) FindEligibleInterpreters(ctx context.Context, jobID int64) (domain.MatchResult, error) {
	job, err := ms.jobRepository.GetByID(ctx, jobID)
	if err != nil {
		return domain.MatchResult{}, err
	}

	if len(job.NeededLanguages) == 0 {
		return domain.MatchResult{NoLanguagesNeeded: true, Matches: []domain.Match{}}, nil
	}

	interpreters, err := ms.interpreterRepository.GetAll(ctx)
	if err != nil {
		return domain.MatchResult{}, err
	}

	matches := make([]domain.Match, 0)
	for _, interp := range interpreters {
		if job.RequiresCertification && !interp.Certified {
			continue
		}

		matched := interp.SpokenSubset(job.NeededLanguages)
		if len(matched) == 0 {
			continue
		}

		matches = append(matches, domain.Match{
			Interpreter:      interp,
			MatchedLanguages: matched,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i].Interpreter, matches[j].Interpreter
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		return a.FirstName < b.FirstName
	})

	return domain.MatchResult{Matches: ms.rank(matches)}, nil
}
