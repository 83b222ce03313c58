package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saned/saned-backend/internal/config"
	"github.com/saned/saned-backend/internal/transport/middleware"
	"github.com/saned/saned-backend/internal/transport/rest"
)

// RouterDeps are the handlers and policies the HTTP surface is built from.
type RouterDeps struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	Metrics     config.MetricsConfig
	Health      *rest.HealthHandler
	Matches     *rest.MatchHandler
	Auth        middleware.Middleware
	RateLimiter *middleware.RateLimiter
	// PotentialPerMinute is passed to RateLimiter.Limit for the potential
	// matches endpoint.
	PotentialPerMinute int
}

// NewRouter registers every route and wraps the API in the middleware chain:
// RequestID, Recovery, CORS, Auth, Logger. Probes and metrics stay outside
// the chain.
func NewRouter(d RouterDeps) http.Handler {
	api := http.NewServeMux()

	potential := http.Handler(http.HandlerFunc(d.Matches.Potential))
	if d.RateLimiter != nil {
		potential = d.RateLimiter.Limit(d.PotentialPerMinute)(potential)
	}

	api.Handle("GET /api/matches/potential", middleware.RequireSubject(potential))
	api.Handle("GET /api/matches/history", middleware.RequireSubject(http.HandlerFunc(d.Matches.History)))
	api.Handle("GET /api/matches/{candidateId}", middleware.RequireSubject(http.HandlerFunc(d.Matches.Get)))
	api.Handle("PUT /api/matches/{candidateId}/preference", middleware.RequireSubject(http.HandlerFunc(d.Matches.SetPreference)))

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
		d.Auth,
		middleware.Logger(d.Logger),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	if d.Metrics.Enabled {
		mux.Handle("GET "+d.Metrics.Path, promhttp.Handler())
	}
	mux.Handle("/api/", chain(api))

	return mux
}
