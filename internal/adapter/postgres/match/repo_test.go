package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/saned/saned-backend/internal/domain"
)

var joinedNames = append(append([]string{}, Columns...),
	"candidate_first_name", "candidate_last_name", "candidate_email", "candidate_role",
	"candidate_organization", "candidate_location", "candidate_tags", "candidate_interests",
	"candidate_created_at", "candidate_updated_at",
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func newMatch(subjectID, candidateID uuid.UUID) domain.Match {
	return domain.Match{
		ID:          uuid.New(),
		SubjectID:   subjectID,
		CandidateID: candidateID,
		Score:       83,
		SharedTags:  []string{"ai", "fintech"},
		Highlight:   "Both startups with shared interests in ai and fintech.",
		Preference:  domain.MatchPreferencePending,
		CreatedAt:   time.Now(),
	}
}

// insertArgs are the values InsertIfAbsent and UpsertPreference bind, in
// column order.
func insertArgs(m domain.Match) []any {
	return []any{m.ID, m.SubjectID, m.CandidateID, m.Score, m.SharedTags, m.Highlight, string(m.Preference), m.CreatedAt}
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func addMatchRow(rows *pgxmock.Rows, m domain.Match) *pgxmock.Rows {
	return rows.AddRow(m.ID, m.SubjectID, m.CandidateID, m.Score, m.SharedTags, m.Highlight, string(m.Preference), m.CreatedAt)
}

func TestRepo_InsertIfAbsent(t *testing.T) {
	subjectID, candidateID := uuid.New(), uuid.New()

	tests := []struct {
		name        string
		setup       func(mock pgxmock.PgxPoolIface, m domain.Match)
		wantCreated bool
		wantScore   float64
		wantErr     error
	}{
		{
			name: "inserted",
			setup: func(mock pgxmock.PgxPoolIface, m domain.Match) {
				mock.ExpectQuery(`INSERT INTO matches .+ ON CONFLICT \(subject_id, candidate_id\) DO NOTHING RETURNING`).
					WithArgs(insertArgs(m)...).
					WillReturnRows(addMatchRow(pgxmock.NewRows(Columns), m))
			},
			wantCreated: true,
			wantScore:   83,
		},
		{
			name: "existing row is returned unchanged",
			setup: func(mock pgxmock.PgxPoolIface, m domain.Match) {
				mock.ExpectQuery(`INSERT INTO matches .+ DO NOTHING`).
					WithArgs(anyArgs(len(Columns))...).
					WillReturnRows(pgxmock.NewRows(Columns))

				existing := m
				existing.ID = uuid.New()
				existing.Score = 40
				existing.Preference = domain.MatchPreferenceLike
				mock.ExpectQuery(`SELECT .+ FROM matches WHERE`).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnRows(addMatchRow(pgxmock.NewRows(Columns), existing))
			},
			wantCreated: false,
			wantScore:   40,
		},
		{
			name: "foreign key violation",
			setup: func(mock pgxmock.PgxPoolIface, m domain.Match) {
				mock.ExpectQuery(`INSERT INTO matches`).
					WithArgs(anyArgs(len(Columns))...).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "database error is wrapped",
			setup: func(mock pgxmock.PgxPoolIface, m domain.Match) {
				mock.ExpectQuery(`INSERT INTO matches`).
					WithArgs(anyArgs(len(Columns))...).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: errAny,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := New(mock)
			m := newMatch(subjectID, candidateID)
			tt.setup(mock, m)

			got, created, err := repo.InsertIfAbsent(context.Background(), m)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("InsertIfAbsent() expected error")
				}
				if tt.wantErr != errAny && !errors.Is(err, tt.wantErr) {
					t.Fatalf("InsertIfAbsent() error = %v, want %v", err, tt.wantErr)
				}
				if err := mock.ExpectationsWereMet(); err != nil {
					t.Errorf("unmet expectations: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("InsertIfAbsent() unexpected error: %v", err)
			}
			if created != tt.wantCreated {
				t.Errorf("InsertIfAbsent() created = %v, want %v", created, tt.wantCreated)
			}
			if got.Score != tt.wantScore {
				t.Errorf("InsertIfAbsent() score = %v, want %v", got.Score, tt.wantScore)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

var errAny = errors.New("any error")

func TestRepo_UpsertPreference(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	m := domain.NewDefaultMatch(uuid.New(), uuid.New(), domain.MatchPreferenceLike, time.Now())
	mock.ExpectQuery(`INSERT INTO matches .+ ON CONFLICT \(subject_id, candidate_id\) DO UPDATE SET preference = EXCLUDED.preference RETURNING`).
		WithArgs(insertArgs(m)...).
		WillReturnRows(addMatchRow(pgxmock.NewRows(Columns), m))

	got, err := repo.UpsertPreference(context.Background(), m)
	if err != nil {
		t.Fatalf("UpsertPreference() error: %v", err)
	}
	if got.Preference != domain.MatchPreferenceLike {
		t.Errorf("UpsertPreference() preference = %q, want like", got.Preference)
	}
	if got.Score != domain.DefaultMatchScore {
		t.Errorf("UpsertPreference() score = %v, want %d", got.Score, domain.DefaultMatchScore)
	}
	if got.SharedTags == nil || len(got.SharedTags) != 0 {
		t.Errorf("UpsertPreference() shared tags = %v, want empty", got.SharedTags)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_GetByPair(t *testing.T) {
	subjectID, candidateID := uuid.New(), uuid.New()
	now := time.Now()

	t.Run("found with candidate", func(t *testing.T) {
		mock := newMock(t)
		repo := New(mock)

		m := newMatch(subjectID, candidateID)
		rows := pgxmock.NewRows(joinedNames).AddRow(
			m.ID, m.SubjectID, m.CandidateID, m.Score, m.SharedTags, m.Highlight, string(m.Preference), m.CreatedAt,
			"Lina", "Haddad", "lina@example.com", "startup", "Acme", "Riyadh",
			[]string{"ai", "fintech", "health"}, []string(nil), now, now,
		)
		mock.ExpectQuery(`SELECT .+ FROM matches m JOIN users u ON u.id = m.candidate_id WHERE`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(rows)

		got, err := repo.GetByPair(context.Background(), subjectID, candidateID)
		if err != nil {
			t.Fatalf("GetByPair() error: %v", err)
		}
		if got.Candidate == nil {
			t.Fatal("GetByPair() candidate is nil")
		}
		if got.Candidate.ID != candidateID || got.Candidate.FirstName != "Lina" {
			t.Errorf("GetByPair() candidate = %+v", got.Candidate)
		}
		if got.Candidate.Role != domain.UserRoleStartup {
			t.Errorf("GetByPair() candidate role = %q", got.Candidate.Role)
		}
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		repo := New(mock)

		mock.ExpectQuery(`SELECT`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows(joinedNames))

		_, err := repo.GetByPair(context.Background(), subjectID, candidateID)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("GetByPair() error = %v, want ErrNotFound", err)
		}
	})
}

func TestRepo_ListBySubject(t *testing.T) {
	subjectID := uuid.New()
	now := time.Now()

	mock := newMock(t)
	repo := New(mock)

	newer := newMatch(subjectID, uuid.New())
	newer.CreatedAt = now
	older := newMatch(subjectID, uuid.New())
	older.CreatedAt = now.Add(-time.Hour)
	older.SharedTags = nil

	rows := pgxmock.NewRows(joinedNames)
	for _, m := range []domain.Match{newer, older} {
		rows.AddRow(
			m.ID, m.SubjectID, m.CandidateID, m.Score, m.SharedTags, m.Highlight, string(m.Preference), m.CreatedAt,
			"C", "", "c-"+m.ID.String()+"@example.com", "investor", "", "", []string(nil), []string(nil), now, now,
		)
	}
	mock.ExpectQuery(`SELECT .+ FROM matches m JOIN users u .+ WHERE m.subject_id = \$1 ORDER BY m.created_at DESC`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(rows)

	got, err := repo.ListBySubject(context.Background(), subjectID)
	if err != nil {
		t.Fatalf("ListBySubject() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListBySubject() len = %d, want 2", len(got))
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Error("ListBySubject() does not preserve query order")
	}
	if got[1].SharedTags == nil {
		t.Error("ListBySubject() shared tags should never be nil")
	}
	for _, m := range got {
		if m.Candidate == nil || m.Candidate.ID != m.CandidateID {
			t.Errorf("ListBySubject() candidate not populated for %v", m.ID)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_ListBySubject_Empty(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	mock.ExpectQuery(`SELECT`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(joinedNames))

	got, err := repo.ListBySubject(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ListBySubject() error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ListBySubject() len = %d, want 0", len(got))
	}
}
