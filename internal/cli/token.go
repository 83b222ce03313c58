package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/saned/saned-backend/internal/auth"
	"github.com/saned/saned-backend/internal/config"
	"github.com/saned/saned-backend/internal/domain"
)

type issuedToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var user, role string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Development access tokens",
	}

	issue := &cobra.Command{
		Use:   "issue",
		Short: "Sign an access token for a user with the configured secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID("user", user)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.Auth.AccessTokenTTL
			}

			issued, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl).
				GenerateAccessToken(userID, domain.UserRole(role))
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, issuedToken{
				Token:     issued.Token,
				UserID:    userID.String(),
				ExpiresAt: issued.ExpiresAt,
			})
		},
	}
	issue.Flags().StringVar(&user, "user", "", "subject user ID (required)")
	issue.Flags().StringVar(&role, "role", "", "role claim (startup, individual, organization, investor)")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	_ = issue.MarkFlagRequired("user")

	cmd.AddCommand(issue)
	return cmd
}
