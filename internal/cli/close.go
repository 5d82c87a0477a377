package cli

import (
	"github.com/spf13/cobra"

	"github.com/petr-tik/jj-spr/internal/actions"
)

// newCloseCmd creates the close command
func newCloseCmd() *cobra.Command {
	var opts actions.Options

	cmd := &cobra.Command{
		Use:   "close",
		Short: "Close the pull request of each selected commit",
		Long: `Close the pull request of each selected commit, delete its retired head and
base branches, and strip the pull-request reference from the local commit
message. Stops at the first failure.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := newRunContext(cmd.Context())
			if err != nil {
				return err
			}
			return actions.Close(cmd.Context(), opts, run.Stack, run.GH, run.Store, run.Cfg, run.Splog)
		},
	}

	revisionFlags(cmd, &opts)

	return cmd
}
