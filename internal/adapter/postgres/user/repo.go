// Package user implements the user directory using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/saned/saned-backend/internal/adapter/postgres"
	"github.com/saned/saned-backend/internal/domain"
)

const table = "users"

// Columns lists the users columns in scan order. Exported for repositories
// that join the directory.
var Columns = []string{
	"id", "first_name", "last_name", "email", "role", "organization",
	"location", "tags", "interests", "created_at", "updated_at",
}

// Repo provides read access to the user directory plus an upsert used for
// operator seeding.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(Columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row Row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.ToDomain()
	return &u, nil
}

// ListExcluding returns every user except the one with the given ID,
// oldest first. Ties on created_at are broken by id so the order is stable.
func (r *Repo) ListExcluding(ctx context.Context, id uuid.UUID) ([]domain.User, error) {
	query, args, err := postgres.Builder().
		Select(Columns...).
		From(table).
		Where(squirrel.NotEq{"id": id}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []Row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.ToDomain()
	}
	return users, nil
}

// Upsert inserts u, or overwrites the profile fields of an existing user with
// the same ID. created_at is preserved on update.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(Columns...).
		Values(
			u.ID, u.FirstName, u.LastName, u.Email, string(u.Role), u.Organization,
			u.Location, u.Tags, u.Interests, createdAt, now,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			role = EXCLUDED.role,
			organization = EXCLUDED.organization,
			location = EXCLUDED.location,
			tags = EXCLUDED.tags,
			interests = EXCLUDED.interests,
			updated_at = EXCLUDED.updated_at`).
		Suffix("RETURNING " + strings.Join(Columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row Row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	out := row.ToDomain()
	return &out, nil
}
