package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/saned/saned-backend/internal/domain"
	"github.com/saned/saned-backend/internal/service/match"
)

func newMatchesCmd(opts *rootOptions) *cobra.Command {
	var subject, candidate, preference string

	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Compute and inspect matches for a subject",
		Long: `Compute and inspect matches for a subject.

Examples:
  sanedctl matches find --subject=<id>                   # Score the pool, store the top results
  sanedctl matches history --subject=<id> -o json        # Every stored match, newest first
  sanedctl matches get --subject=<id> --candidate=<id>
  sanedctl matches prefer --subject=<id> --candidate=<id> --preference=like`,
	}
	cmd.PersistentFlags().StringVar(&subject, "subject", "", "subject user ID (required)")
	_ = cmd.MarkPersistentFlagRequired("subject")

	find := &cobra.Command{
		Use:   "find",
		Short: "Compute and persist potential matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subjectID, err := parseID("subject", subject)
			if err != nil {
				return err
			}
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			matches, err := s.matches.FindPotentialMatches(cmd.Context(), subjectID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, matches)
		},
	}

	history := &cobra.Command{
		Use:   "history",
		Short: "List stored matches, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subjectID, err := parseID("subject", subject)
			if err != nil {
				return err
			}
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			matches, err := s.matches.GetMatchHistory(cmd.Context(), subjectID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, matches)
		},
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Show one stored match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subjectID, err := parseID("subject", subject)
			if err != nil {
				return err
			}
			candidateID, err := parseID("candidate", candidate)
			if err != nil {
				return err
			}
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			m, err := s.matches.GetMatch(cmd.Context(), subjectID, candidateID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, m)
		},
	}
	get.Flags().StringVar(&candidate, "candidate", "", "candidate user ID (required)")
	_ = get.MarkFlagRequired("candidate")

	prefer := &cobra.Command{
		Use:   "prefer",
		Short: "Record a like or dislike",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subjectID, err := parseID("subject", subject)
			if err != nil {
				return err
			}
			candidateID, err := parseID("candidate", candidate)
			if err != nil {
				return err
			}
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			m, err := s.matches.SetPreference(cmd.Context(), match.SetPreferenceInput{
				SubjectID:   subjectID,
				CandidateID: candidateID,
				Preference:  domain.MatchPreference(preference),
			})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, m)
		},
	}
	prefer.Flags().StringVar(&candidate, "candidate", "", "candidate user ID (required)")
	prefer.Flags().StringVar(&preference, "preference", "", "like or dislike (required)")
	_ = prefer.MarkFlagRequired("candidate")
	_ = prefer.MarkFlagRequired("preference")

	cmd.AddCommand(find, history, get, prefer)
	return cmd
}

func parseID(flag, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("--%s: invalid user ID %q", flag, raw)
	}
	return id, nil
}
