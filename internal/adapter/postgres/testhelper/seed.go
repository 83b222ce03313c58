package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saned/saned-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UserOption customizes a seeded user before it is inserted.
type UserOption func(*domain.User)

// WithRole sets the seeded user's role.
func WithRole(r domain.UserRole) UserOption {
	return func(u *domain.User) { u.Role = r }
}

// WithLocation sets the seeded user's location.
func WithLocation(loc string) UserOption {
	return func(u *domain.User) { u.Location = loc }
}

// WithTags sets the seeded user's tags. Called with no arguments it stores
// an empty, non-NULL tag list.
func WithTags(tags ...string) UserOption {
	if tags == nil {
		tags = []string{}
	}
	return func(u *domain.User) { u.Tags = tags }
}

// WithFirstName sets the seeded user's first name.
func WithFirstName(name string) UserOption {
	return func(u *domain.User) { u.FirstName = name }
}

// SeedUser inserts a startup user with default values.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, opts ...UserOption) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		FirstName:    "Test",
		LastName:     "User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		Role:         domain.UserRoleStartup,
		Organization: "Org " + suffix,
		Location:     "Riyadh",
		Tags:         []string{"ai"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(&user)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, first_name, last_name, email, role, organization, location, tags, interests, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		user.ID, user.FirstName, user.LastName, user.Email, string(user.Role),
		user.Organization, user.Location, user.Tags, user.Interests, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedMatch inserts a pending match between subject and candidate.
func SeedMatch(t *testing.T, pool *pgxpool.Pool, subjectID, candidateID uuid.UUID, score float64) domain.Match {
	t.Helper()
	ctx := context.Background()

	m := domain.Match{
		ID:          uuid.New(),
		SubjectID:   subjectID,
		CandidateID: candidateID,
		Score:       score,
		SharedTags:  []string{},
		Highlight:   "Seeded match " + uniqueSuffix(),
		Preference:  domain.MatchPreferencePending,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO matches (id, subject_id, candidate_id, match_score, shared_tags, highlight, preference, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.SubjectID, m.CandidateID, m.Score, m.SharedTags, m.Highlight, string(m.Preference), m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMatch insert match: %v", err)
	}

	return m
}
