// Package match implements the match store: it scores a subject against the
// user directory, persists the best results and records the subject's
// preference for each candidate.
package match

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/saned/saned-backend/internal/domain"
)

type userDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListExcluding(ctx context.Context, id uuid.UUID) ([]domain.User, error)
}

type matchRepo interface {
	GetByPair(ctx context.Context, subjectID, candidateID uuid.UUID) (*domain.Match, error)
	InsertIfAbsent(ctx context.Context, m domain.Match) (*domain.Match, bool, error)
	UpsertPreference(ctx context.Context, m domain.Match) (*domain.Match, error)
	ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Match, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	ObserveOperation(operation string, start time.Time, err error)
	CandidatesScored(n int)
	MatchCreated()
	PreferenceSet(p domain.MatchPreference)
}

// Service provides match store operations.
type Service struct {
	users   userDirectory
	matches matchRepo
	tx      txManager
	metrics recorder
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Match service.
func NewService(
	log *slog.Logger,
	users userDirectory,
	matches matchRepo,
	tx txManager,
	metrics recorder,
) *Service {
	return &Service{
		users:   users,
		matches: matches,
		tx:      tx,
		metrics: metrics,
		log:     log.With("service", "match"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// observe is deferred by every operation with a pointer to its named error.
func (s *Service) observe(operation string, start time.Time, err *error) {
	s.metrics.ObserveOperation(operation, start, *err)
}
