package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/saned/saned-backend/internal/adapter/postgres"
	matchrepo "github.com/saned/saned-backend/internal/adapter/postgres/match"
	userrepo "github.com/saned/saned-backend/internal/adapter/postgres/user"
	"github.com/saned/saned-backend/internal/auth"
	"github.com/saned/saned-backend/internal/config"
	"github.com/saned/saned-backend/internal/metrics"
	"github.com/saned/saned-backend/internal/service/match"
	"github.com/saned/saned-backend/internal/transport/middleware"
	"github.com/saned/saned-backend/internal/transport/rest"
)

// startupTimeout bounds migrations and the initial database connection.
const startupTimeout = 30 * time.Second

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires the match service behind the REST API and serves until
// ctx is cancelled, then shuts the HTTP server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("addr", cfg.Server.Addr()),
		slog.String("log_level", cfg.Log.Level),
	)

	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	if cfg.Database.MigrateOnStart {
		if err := migrate(startCtx, logger, cfg.Database.DSN); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(startCtx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	matches := matchrepo.New(pool)
	txm := postgres.NewTxManager(pool)
	matchService := match.NewService(logger, users, matches, txm, metrics.NewRecorder())

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := NewRouter(RouterDeps{
		Logger:             logger,
		CORS:               cfg.CORS,
		Metrics:            cfg.Metrics,
		Health:             rest.NewHealthHandler(Version, map[string]rest.Pinger{"database": pool}),
		Matches:            rest.NewMatchHandler(matchService, logger),
		Auth:               middleware.Auth(jwtManager),
		RateLimiter:        limiter,
		PotentialPerMinute: cfg.Server.PotentialRateLimit,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// serve runs srv until ctx is done, then drains in-flight requests within
// shutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

func migrate(ctx context.Context, logger *slog.Logger, dsn string) error {
	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer m.Close()

	results, err := m.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	for _, r := range results {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}
