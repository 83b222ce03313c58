package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saned/saned-backend/internal/adapter/postgres"
	matchrepo "github.com/saned/saned-backend/internal/adapter/postgres/match"
	userrepo "github.com/saned/saned-backend/internal/adapter/postgres/user"
	"github.com/saned/saned-backend/internal/app"
	"github.com/saned/saned-backend/internal/config"
	"github.com/saned/saned-backend/internal/domain"
	"github.com/saned/saned-backend/internal/metrics"
	"github.com/saned/saned-backend/internal/service/match"
)

type matchService interface {
	FindPotentialMatches(ctx context.Context, subjectID uuid.UUID) ([]domain.Match, error)
	GetMatchHistory(ctx context.Context, subjectID uuid.UUID) ([]domain.Match, error)
	GetMatch(ctx context.Context, subjectID, candidateID uuid.UUID) (*domain.Match, error)
	SetPreference(ctx context.Context, input match.SetPreferenceInput) (*domain.Match, error)
}

type userWriter interface {
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// store bundles what the data commands need. close releases the pool.
type store struct {
	matches matchService
	users   userWriter
	tx      txRunner
	close   func()
}

// openStore loads configuration and connects to PostgreSQL.
func openStore(ctx context.Context) (*store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return newStore(pool, logger), nil
}

func newStore(pool *pgxpool.Pool, logger *slog.Logger) *store {
	users := userrepo.New(pool)
	txm := postgres.NewTxManager(pool)
	svc := match.NewService(logger, users, matchrepo.New(pool), txm, metrics.NewRecorder())

	return &store{
		matches: svc,
		users:   users,
		tx:      txm,
		close:   pool.Close,
	}
}
