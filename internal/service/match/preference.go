package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/saned/saned-backend/internal/domain"
)

// SetPreference records the subject's like or dislike for a candidate.
// When the pair has no match yet, a default one is created with the
// preference already applied. Repeating the same call is a no-op in effect.
func (s *Service) SetPreference(ctx context.Context, input SetPreferenceInput) (_ *domain.Match, err error) {
	defer s.observe("set_preference", time.Now(), &err)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result *domain.Match
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		m, candidate, err := s.matchForPreference(ctx, input)
		if err != nil {
			return err
		}

		m.Preference = input.Preference
		if err := m.Validate(); err != nil {
			return err
		}

		stored, err := s.matches.UpsertPreference(ctx, m)
		if err != nil {
			return fmt.Errorf("upsert preference: %w", err)
		}
		stored.Candidate = candidate
		result = stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.PreferenceSet(input.Preference)
	s.log.InfoContext(ctx, "match preference set",
		slog.String("subject_id", input.SubjectID.String()),
		slog.String("candidate_id", input.CandidateID.String()),
		slog.String("preference", input.Preference.String()),
	)

	return result, nil
}

// matchForPreference returns the existing match for the pair, or a default
// one when both users exist but no match was ever computed.
func (s *Service) matchForPreference(ctx context.Context, input SetPreferenceInput) (domain.Match, *domain.User, error) {
	existing, err := s.matches.GetByPair(ctx, input.SubjectID, input.CandidateID)
	if err == nil {
		return *existing, existing.Candidate, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Match{}, nil, fmt.Errorf("get match: %w", err)
	}

	if _, err := s.users.GetByID(ctx, input.SubjectID); err != nil {
		return domain.Match{}, nil, fmt.Errorf("get subject: %w", err)
	}
	candidate, err := s.users.GetByID(ctx, input.CandidateID)
	if err != nil {
		return domain.Match{}, nil, fmt.Errorf("get candidate: %w", err)
	}

	m := domain.NewDefaultMatch(input.SubjectID, input.CandidateID, input.Preference, s.now())
	return m, candidate, nil
}
