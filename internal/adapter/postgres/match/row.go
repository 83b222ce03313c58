package match

import (
	"time"

	"github.com/google/uuid"

	"github.com/saned/saned-backend/internal/domain"
)

// Row is the scan target for a matches row.
type Row struct {
	ID          uuid.UUID `db:"id"`
	SubjectID   uuid.UUID `db:"subject_id"`
	CandidateID uuid.UUID `db:"candidate_id"`
	Score       float64   `db:"match_score"`
	SharedTags  []string  `db:"shared_tags"`
	Highlight   string    `db:"highlight"`
	Preference  string    `db:"preference"`
	CreatedAt   time.Time `db:"created_at"`
}

// ToDomain converts the row. SharedTags is never nil on output.
func (r Row) ToDomain() domain.Match {
	tags := r.SharedTags
	if tags == nil {
		tags = []string{}
	}
	return domain.Match{
		ID:          r.ID,
		SubjectID:   r.SubjectID,
		CandidateID: r.CandidateID,
		Score:       r.Score,
		SharedTags:  tags,
		Highlight:   r.Highlight,
		Preference:  domain.MatchPreference(r.Preference),
		CreatedAt:   r.CreatedAt,
	}
}

// CandidateRow is a match joined with its candidate's profile.
type CandidateRow struct {
	Row
	CandidateFirstName    string    `db:"candidate_first_name"`
	CandidateLastName     string    `db:"candidate_last_name"`
	CandidateEmail        string    `db:"candidate_email"`
	CandidateRole         string    `db:"candidate_role"`
	CandidateOrganization string    `db:"candidate_organization"`
	CandidateLocation     string    `db:"candidate_location"`
	CandidateTags         []string  `db:"candidate_tags"`
	CandidateInterests    []string  `db:"candidate_interests"`
	CandidateCreatedAt    time.Time `db:"candidate_created_at"`
	CandidateUpdatedAt    time.Time `db:"candidate_updated_at"`
}

// ToDomain converts the joined row, populating Match.Candidate.
func (r CandidateRow) ToDomain() domain.Match {
	m := r.Row.ToDomain()
	m.Candidate = &domain.User{
		ID:           r.CandidateID,
		FirstName:    r.CandidateFirstName,
		LastName:     r.CandidateLastName,
		Email:        r.CandidateEmail,
		Role:         domain.UserRole(r.CandidateRole),
		Organization: r.CandidateOrganization,
		Location:     r.CandidateLocation,
		Tags:         r.CandidateTags,
		Interests:    r.CandidateInterests,
		CreatedAt:    r.CandidateCreatedAt,
		UpdatedAt:    r.CandidateUpdatedAt,
	}
	return m
}
