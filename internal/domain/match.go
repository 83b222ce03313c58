package domain

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Defaults for a match created from an explicit preference on a pair the
// scoring engine never produced.
const (
	DefaultMatchScore     = 50
	DefaultMatchHighlight = "You showed interest in this profile"
)

// MatchResult is a transient scoring output for one candidate.
type MatchResult struct {
	Candidate  *User
	Score      int
	SharedTags []string
	Highlight  string
}

// Match is the durable record of a (subject, candidate) pairing.
// Exactly one Match exists per pair.
type Match struct {
	ID          uuid.UUID
	SubjectID   uuid.UUID
	CandidateID uuid.UUID
	Score       float64
	SharedTags  []string
	Highlight   string
	Preference  MatchPreference
	CreatedAt   time.Time

	// Candidate is populated by reads that join the user directory.
	Candidate *User
}

// NewMatch builds a pending Match from a scoring result.
func NewMatch(subjectID uuid.UUID, r MatchResult, now time.Time) Match {
	tags := r.SharedTags
	if tags == nil {
		tags = []string{}
	}
	m := Match{
		ID:         uuid.New(),
		SubjectID:  subjectID,
		Score:      float64(r.Score),
		SharedTags: tags,
		Highlight:  r.Highlight,
		Preference: MatchPreferencePending,
		CreatedAt:  now,
		Candidate:  r.Candidate,
	}
	if r.Candidate != nil {
		m.CandidateID = r.Candidate.ID
	}
	return m
}

// NewDefaultMatch builds the placeholder Match recorded when a subject
// expresses a preference for a pair that has no computed match yet.
func NewDefaultMatch(subjectID, candidateID uuid.UUID, pref MatchPreference, now time.Time) Match {
	return Match{
		ID:          uuid.New(),
		SubjectID:   subjectID,
		CandidateID: candidateID,
		Score:       DefaultMatchScore,
		SharedTags:  []string{},
		Highlight:   DefaultMatchHighlight,
		Preference:  pref,
		CreatedAt:   now,
	}
}

// Validate checks the record invariants before it is persisted.
func (m Match) Validate() error {
	var errs []FieldError

	if m.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if m.SubjectID == uuid.Nil {
		errs = append(errs, FieldError{Field: "subject_id", Message: "required"})
	}
	if m.CandidateID == uuid.Nil {
		errs = append(errs, FieldError{Field: "candidate_id", Message: "required"})
	}
	if m.SubjectID != uuid.Nil && m.SubjectID == m.CandidateID {
		errs = append(errs, FieldError{Field: "candidate_id", Message: "must differ from subject"})
	}
	if m.Score < 0 || m.Score > 100 || m.Score != math.Trunc(m.Score) {
		errs = append(errs, FieldError{Field: "match_score", Message: "must be an integer between 0 and 100"})
	}
	if strings.TrimSpace(m.Highlight) == "" {
		errs = append(errs, FieldError{Field: "highlight", Message: "required"})
	}
	if !m.Preference.IsValid() {
		errs = append(errs, FieldError{Field: "preference", Message: "must be pending, like or dislike"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
