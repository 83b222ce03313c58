package match

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/saned/saned-backend/internal/domain"
)

// GetMatchHistory returns every match of the subject, newest first, each
// with its candidate. All preferences are included.
func (s *Service) GetMatchHistory(ctx context.Context, subjectID uuid.UUID) (_ []domain.Match, err error) {
	defer s.observe("history", time.Now(), &err)

	if subjectID == uuid.Nil {
		return nil, domain.NewValidationError("subject_id", "required")
	}

	if _, err := s.users.GetByID(ctx, subjectID); err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}

	matches, err := s.matches.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// GetMatch returns the stored match of a single pair with its candidate.
func (s *Service) GetMatch(ctx context.Context, subjectID, candidateID uuid.UUID) (_ *domain.Match, err error) {
	defer s.observe("get", time.Now(), &err)

	if subjectID == uuid.Nil || candidateID == uuid.Nil {
		return nil, domain.NewValidationError("candidate_id", "required")
	}

	m, err := s.matches.GetByPair(ctx, subjectID, candidateID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	return m, nil
}
