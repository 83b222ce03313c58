package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pressly/goose/v3"

	"github.com/saned/saned-backend/internal/app"
	"github.com/saned/saned-backend/internal/domain"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// render writes v to w in the requested format.
func render(w io.Writer, format string, v any) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toJSON(v))
	}
	return renderTable(w, v)
}

func renderTable(w io.Writer, v any) error {
	switch v := v.(type) {
	case []domain.Match:
		if len(v) == 0 {
			fmt.Fprintln(w, "No matches found.")
			return nil
		}
		return writeTable(w, []string{"CANDIDATE", "NAME", "ROLE", "SCORE", "SHARED", "PREFERENCE", "HIGHLIGHT"}, matchRows(v))
	case *domain.Match:
		return writeTable(w, []string{"CANDIDATE", "NAME", "ROLE", "SCORE", "SHARED", "PREFERENCE", "HIGHLIGHT"}, matchRows([]domain.Match{*v}))
	case []*goose.MigrationStatus:
		rows := make([][]string, 0, len(v))
		for _, s := range v {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			rows = append(rows, []string{strconv.FormatInt(s.Source.Version, 10), s.Source.Path, applied})
		}
		return writeTable(w, []string{"VERSION", "FILE", "APPLIED"}, rows)
	case []*goose.MigrationResult:
		if len(v) == 0 {
			fmt.Fprintln(w, "No pending migrations.")
			return nil
		}
		rows := make([][]string, 0, len(v))
		for _, r := range v {
			rows = append(rows, []string{strconv.FormatInt(r.Source.Version, 10), r.Source.Path, r.Duration.Round(time.Millisecond).String()})
		}
		return writeTable(w, []string{"VERSION", "FILE", "DURATION"}, rows)
	case importSummary:
		fmt.Fprintf(w, "Imported %d users.\n", v.Imported)
		return nil
	case app.BuildInfo:
		fmt.Fprintf(w, "sanedctl %s\n", v)
		return nil
	case issuedToken:
		fmt.Fprintf(w, "Token:   %s\n", v.Token)
		fmt.Fprintf(w, "Subject: %s\n", v.UserID)
		fmt.Fprintf(w, "Expires: %s\n", v.ExpiresAt.Format(time.RFC3339))
		return nil
	default:
		return fmt.Errorf("unsupported data type for table output: %T", v)
	}
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	table.Header(cells...)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("table rows: %w", err)
	}
	return table.Render()
}

func matchRows(matches []domain.Match) [][]string {
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		name, role := "", ""
		if m.Candidate != nil {
			name = m.Candidate.FullName()
			role = m.Candidate.Role.String()
		}
		rows = append(rows, []string{
			m.CandidateID.String(),
			name,
			role,
			strconv.FormatFloat(m.Score, 'f', 0, 64),
			strings.Join(m.SharedTags, ", "),
			m.Preference.String(),
			m.Highlight,
		})
	}
	return rows
}

// matchJSON is the JSON shape of a match on the command line.
type matchJSON struct {
	ID          string    `json:"id"`
	SubjectID   string    `json:"subject_id"`
	CandidateID string    `json:"candidate_id"`
	Candidate   string    `json:"candidate,omitempty"`
	Score       float64   `json:"match_score"`
	SharedTags  []string  `json:"shared_tags"`
	Highlight   string    `json:"highlight"`
	Preference  string    `json:"preference"`
	CreatedAt   time.Time `json:"created_at"`
}

func toJSON(v any) any {
	switch v := v.(type) {
	case []domain.Match:
		out := make([]matchJSON, 0, len(v))
		for _, m := range v {
			out = append(out, toMatchJSON(m))
		}
		return out
	case *domain.Match:
		return toMatchJSON(*v)
	default:
		return v
	}
}

func toMatchJSON(m domain.Match) matchJSON {
	out := matchJSON{
		ID:          m.ID.String(),
		SubjectID:   m.SubjectID.String(),
		CandidateID: m.CandidateID.String(),
		Score:       m.Score,
		SharedTags:  m.SharedTags,
		Highlight:   m.Highlight,
		Preference:  m.Preference.String(),
		CreatedAt:   m.CreatedAt,
	}
	if out.SharedTags == nil {
		out.SharedTags = []string{}
	}
	if m.Candidate != nil {
		out.Candidate = m.Candidate.FullName()
	}
	return out
}
