// Package match implements the match record repository using PostgreSQL.
package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/saned/saned-backend/internal/adapter/postgres"
	"github.com/saned/saned-backend/internal/domain"
)

const table = "matches"

// Columns lists the matches columns in scan order.
var Columns = []string{
	"id", "subject_id", "candidate_id", "match_score",
	"shared_tags", "highlight", "preference", "created_at",
}

// joinedColumns selects a match plus its candidate from "matches m JOIN users u".
var joinedColumns = func() []string {
	cols := make([]string, 0, len(Columns)+10)
	for _, c := range Columns {
		cols = append(cols, "m."+c)
	}
	for _, c := range []string{
		"first_name", "last_name", "email", "role", "organization",
		"location", "tags", "interests", "created_at", "updated_at",
	} {
		cols = append(cols, "u."+c+" AS candidate_"+c)
	}
	return cols
}()

var returning = "RETURNING " + strings.Join(Columns, ", ")

// Repo persists match records. One row exists per (subject, candidate) pair,
// enforced by the matches_pair_key unique constraint.
type Repo struct {
	db postgres.Querier
}

// New creates a new match repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func pairKey(subjectID, candidateID uuid.UUID) string {
	return subjectID.String() + "/" + candidateID.String()
}

func selectJoined() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(joinedColumns...).
		From(table + " m").
		Join("users u ON u.id = m.candidate_id")
}

// GetByPair returns the match for (subjectID, candidateID) with its candidate.
func (r *Repo) GetByPair(ctx context.Context, subjectID, candidateID uuid.UUID) (*domain.Match, error) {
	query, args, err := selectJoined().
		Where(squirrel.Eq{"m.subject_id": subjectID, "m.candidate_id": candidateID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row CandidateRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "match", pairKey(subjectID, candidateID))
	}

	m := row.ToDomain()
	return &m, nil
}

// InsertIfAbsent stores m unless a match for the same pair already exists.
// It returns the stored row and whether it was created by this call; an
// existing row is returned unchanged.
func (r *Repo) InsertIfAbsent(ctx context.Context, m domain.Match) (*domain.Match, bool, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(Columns...).
		Values(m.ID, m.SubjectID, m.CandidateID, m.Score, nonNil(m.SharedTags), m.Highlight, string(m.Preference), m.CreatedAt).
		Suffix("ON CONFLICT (subject_id, candidate_id) DO NOTHING").
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	key := pairKey(m.SubjectID, m.CandidateID)

	var row Row
	err = pgxscan.Get(ctx, q, &row, query, args...)
	switch {
	case err == nil:
		out := row.ToDomain()
		return &out, true, nil
	case !postgres.IsNoRows(err):
		return nil, false, postgres.MapError(err, "match", key)
	}

	// Conflict: read the row that won.
	query, args, err = postgres.Builder().
		Select(Columns...).
		From(table).
		Where(squirrel.Eq{"subject_id": m.SubjectID, "candidate_id": m.CandidateID}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, false, postgres.MapError(err, "match", key)
	}

	out := row.ToDomain()
	return &out, false, nil
}

// UpsertPreference inserts m, or sets only the preference of the existing
// match for the same pair. Score, tags, highlight and created_at of an
// existing row are left untouched.
func (r *Repo) UpsertPreference(ctx context.Context, m domain.Match) (*domain.Match, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(Columns...).
		Values(m.ID, m.SubjectID, m.CandidateID, m.Score, nonNil(m.SharedTags), m.Highlight, string(m.Preference), m.CreatedAt).
		Suffix("ON CONFLICT (subject_id, candidate_id) DO UPDATE SET preference = EXCLUDED.preference").
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row Row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "match", pairKey(m.SubjectID, m.CandidateID))
	}

	out := row.ToDomain()
	return &out, nil
}

// ListBySubject returns every match of subjectID joined with its candidate,
// newest first.
func (r *Repo) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Match, error) {
	query, args, err := selectJoined().
		Where(squirrel.Eq{"m.subject_id": subjectID}).
		OrderBy("m.created_at DESC", "m.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []CandidateRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "match history", subjectID)
	}

	matches := make([]domain.Match, len(rows))
	for i, row := range rows {
		matches[i] = row.ToDomain()
	}
	return matches, nil
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
