package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

// pingTimeout bounds each component check.
const pingTimeout = 3 * time.Second

// Pinger is a dependency whose reachability decides readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	version    string
	components map[string]Pinger
	now        func() time.Time
}

// NewHealthHandler creates a HealthHandler. components maps a component name
// (e.g. "database") to its pinger.
func NewHealthHandler(version string, components map[string]Pinger) *HealthHandler {
	return &HealthHandler{version: version, components: components, now: time.Now}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready is the readiness probe: 200 when every component answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.check(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: h.now()})
}

// Health reports every component with its latency plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.check(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (string, map[string]CompStatus) {
	names := make([]string, 0, len(h.components))
	for name := range h.components {
		names = append(names, name)
	}
	sort.Strings(names)

	overall := "ok"
	result := make(map[string]CompStatus, len(names))
	for _, name := range names {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		start := time.Now()
		err := h.components[name].Ping(pctx)
		latency := time.Since(start)
		cancel()

		if err != nil {
			overall = "down"
			result[name] = CompStatus{Status: "down", Error: err.Error()}
			continue
		}
		result[name] = CompStatus{Status: "ok", Latency: latency.String()}
	}
	return overall, result
}

func httpStatus(status string) int {
	if status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
