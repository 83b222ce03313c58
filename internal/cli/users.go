package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/saned/saned-backend/internal/domain"
)

// userRecord is one entry of a users import file.
type userRecord struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Organization string    `json:"organization"`
	Location     string    `json:"location"`
	// Tags stays nil when the key is absent or null.
	Tags      []string `json:"tags"`
	Interests []string `json:"interests"`
}

type importSummary struct {
	Imported int `json:"imported"`
}

func newUsersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage the user directory",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file.json>",
		Short: "Insert or update users from a JSON array",
		Long: `Insert or update users from a JSON array of profiles.

Each entry needs id, email and role. Omit "tags" (or set it to null) for
profiles that never set tags; matching then falls back to "interests".
The whole file is imported in one transaction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer f.Close()

			users, err := parseUsers(f)
			if err != nil {
				return err
			}

			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			summary, err := importUsers(cmd.Context(), s, users)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, summary)
		},
	})
	return cmd
}

// parseUsers decodes and validates an import file. Every invalid entry is
// reported, not only the first.
func parseUsers(r io.Reader) ([]domain.User, error) {
	var records []userRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode import file: %w", err)
	}

	users := make([]domain.User, 0, len(records))
	var problems []string
	for i, rec := range records {
		u := domain.User{
			ID:           rec.ID,
			FirstName:    domain.NormalizeText(rec.FirstName),
			LastName:     domain.NormalizeText(rec.LastName),
			Email:        domain.NormalizeEmail(rec.Email),
			Role:         domain.ParseUserRole(rec.Role),
			Organization: domain.NormalizeText(rec.Organization),
			Location:     domain.NormalizeText(rec.Location),
			Tags:         domain.NormalizeTags(rec.Tags),
			Interests:    domain.NormalizeTags(rec.Interests),
		}
		if err := u.Validate(); err != nil {
			problems = append(problems, fmt.Sprintf("entry %d: %v", i, err))
			continue
		}
		users = append(users, u)
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}
	return users, nil
}

func importUsers(ctx context.Context, s *store, users []domain.User) (importSummary, error) {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for i := range users {
			if _, err := s.users.Upsert(ctx, &users[i]); err != nil {
				return fmt.Errorf("upsert user %s: %w", users[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return importSummary{}, err
	}
	return importSummary{Imported: len(users)}, nil
}
