package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/saned/saned-backend/internal/domain"
	"github.com/saned/saned-backend/internal/service/match"
	"github.com/saned/saned-backend/pkg/ctxutil"
)

// maxPreferenceBody caps the PUT preference payload.
const maxPreferenceBody = 1 << 10

// matchService defines the minimal interface needed by MatchHandler.
type matchService interface {
	FindPotentialMatches(ctx context.Context, subjectID uuid.UUID) ([]domain.Match, error)
	GetMatchHistory(ctx context.Context, subjectID uuid.UUID) ([]domain.Match, error)
	GetMatch(ctx context.Context, subjectID, candidateID uuid.UUID) (*domain.Match, error)
	SetPreference(ctx context.Context, input match.SetPreferenceInput) (*domain.Match, error)
}

// MatchHandler serves the match REST endpoints for the authenticated subject.
type MatchHandler struct {
	svc matchService
	log *slog.Logger
}

// NewMatchHandler creates a MatchHandler.
func NewMatchHandler(svc matchService, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{svc: svc, log: logger.With("handler", "match")}
}

type preferenceRequest struct {
	Preference string `json:"preference"`
}

type matchResponse struct {
	ID          string             `json:"id"`
	SubjectID   string             `json:"subjectId"`
	CandidateID string             `json:"candidateId"`
	Score       float64            `json:"matchScore"`
	SharedTags  []string           `json:"sharedTags"`
	Highlight   string             `json:"highlight"`
	Preference  string             `json:"preference"`
	CreatedAt   time.Time          `json:"createdAt"`
	Candidate   *candidateResponse `json:"candidate,omitempty"`
}

type candidateResponse struct {
	ID           string   `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Role         string   `json:"role"`
	Organization string   `json:"organization"`
	Location     string   `json:"location"`
	Tags         []string `json:"tags"`
	Interests    []string `json:"interests"`
}

// Potential handles GET /api/matches/potential.
func (h *MatchHandler) Potential(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	matches, err := h.svc.FindPotentialMatches(r.Context(), subjectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponses(matches))
}

// History handles GET /api/matches/history.
func (h *MatchHandler) History(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	matches, err := h.svc.GetMatchHistory(r.Context(), subjectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponses(matches))
}

// Get handles GET /api/matches/{candidateId}.
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	candidateID, err := uuid.Parse(r.PathValue("candidateId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	m, err := h.svc.GetMatch(r.Context(), subjectID, candidateID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponse(*m))
}

// SetPreference handles PUT /api/matches/{candidateId}/preference.
func (h *MatchHandler) SetPreference(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	candidateID, err := uuid.Parse(r.PathValue("candidateId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	var req preferenceRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPreferenceBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.svc.SetPreference(r.Context(), match.SetPreferenceInput{
		SubjectID:   subjectID,
		CandidateID: candidateID,
		Preference:  domain.MatchPreference(req.Preference),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponse(*m))
}

func toMatchResponses(matches []domain.Match) []matchResponse {
	out := make([]matchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, toMatchResponse(m))
	}
	return out
}

func toMatchResponse(m domain.Match) matchResponse {
	resp := matchResponse{
		ID:          m.ID.String(),
		SubjectID:   m.SubjectID.String(),
		CandidateID: m.CandidateID.String(),
		Score:       m.Score,
		SharedTags:  emptyIfNil(m.SharedTags),
		Highlight:   m.Highlight,
		Preference:  m.Preference.String(),
		CreatedAt:   m.CreatedAt,
	}
	if c := m.Candidate; c != nil {
		resp.Candidate = &candidateResponse{
			ID:           c.ID.String(),
			FirstName:    c.FirstName,
			LastName:     c.LastName,
			Role:         c.Role.String(),
			Organization: c.Organization,
			Location:     c.Location,
			Tags:         emptyIfNil(c.Tags),
			Interests:    emptyIfNil(c.Interests),
		}
	}
	return resp
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
