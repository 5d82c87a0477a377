package cli

import (
	"github.com/spf13/cobra"

	"github.com/petr-tik/jj-spr/internal/actions"
)

// newDiffCmd creates the diff command
func newDiffCmd() *cobra.Command {
	var opts actions.DiffOptions

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Create or update a pull request for each selected commit",
		Long: `Create or update a pull request for each selected commit. Each commit's
snapshot is force-pushed to its head branch, stacked PRs target the head
branch of the commit below, and every PR description gets a regenerated
stack-position banner.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := newRunContext(cmd.Context())
			if err != nil {
				return err
			}
			return actions.Diff(cmd.Context(), opts, run.Stack, run.GH, run.Store, run.Cfg, run.Splog)
		},
	}

	revisionFlags(cmd, &opts.Options)
	cmd.Flags().BoolVar(&opts.Draft, "draft", false, "create new pull requests as drafts")

	return cmd
}
