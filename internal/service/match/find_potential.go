package match

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/saned/saned-backend/internal/domain"
	"github.com/saned/saned-backend/internal/service/match/scoring"
)

// FindPotentialMatches scores subjectID against every other user and
// persists the top results. A pair that already has a match keeps its stored
// score, highlight and preference; only new pairs are inserted.
// Results are returned in ranking order with Candidate populated.
func (s *Service) FindPotentialMatches(ctx context.Context, subjectID uuid.UUID) (_ []domain.Match, err error) {
	defer s.observe("find_potential", time.Now(), &err)

	if subjectID == uuid.Nil {
		return nil, domain.NewValidationError("subject_id", "required")
	}

	subject, err := s.users.GetByID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}

	pool, err := s.users.ListExcluding(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	s.metrics.CandidatesScored(len(pool))

	results := scoring.ComputeMatches(subject, pool)
	if len(results) == 0 {
		return []domain.Match{}, nil
	}

	now := s.now()
	matches := make([]domain.Match, len(results))
	created := make([]bool, len(results))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range results {
		g.Go(func() error {
			m := domain.NewMatch(subjectID, r, now)
			if err := m.Validate(); err != nil {
				return err
			}

			stored, ok, err := s.matches.InsertIfAbsent(gctx, m)
			if err != nil {
				return fmt.Errorf("store match for candidate %s: %w", m.CandidateID, err)
			}

			stored.Candidate = r.Candidate
			matches[i] = *stored
			created[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	newCount := 0
	for _, ok := range created {
		if ok {
			newCount++
			s.metrics.MatchCreated()
		}
	}

	s.log.InfoContext(ctx, "potential matches computed",
		slog.String("subject_id", subjectID.String()),
		slog.Int("pool_size", len(pool)),
		slog.Int("returned", len(matches)),
		slog.Int("created", newCount),
	)

	return matches, nil
}
