package cli

import (
	"github.com/spf13/cobra"

	"github.com/petr-tik/jj-spr/internal/actions"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the open pull requests managed by this tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := newRunContext(cmd.Context())
			if err != nil {
				return err
			}
			return actions.List(cmd.Context(), run.GH, run.Cfg, run.Splog)
		},
	}
}
