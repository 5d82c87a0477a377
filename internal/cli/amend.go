package cli

import (
	"github.com/spf13/cobra"

	"github.com/petr-tik/jj-spr/internal/actions"
)

// newAmendCmd creates the amend command
func newAmendCmd() *cobra.Command {
	var opts actions.Options

	cmd := &cobra.Command{
		Use:   "amend",
		Short: "Replace local commit messages with their pull request contents",
		Long: `Replace the message of each selected commit with the title and description
of its pull request, so edits made on GitHub flow back into the local stack.
Commits without a pull request are left alone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := newRunContext(cmd.Context())
			if err != nil {
				return err
			}
			return actions.Amend(cmd.Context(), opts, run.Stack, run.GH, run.Cfg, run.Splog)
		},
	}

	revisionFlags(cmd, &opts)

	return cmd
}
