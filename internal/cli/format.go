package cli

import (
	"github.com/spf13/cobra"

	"github.com/petr-tik/jj-spr/internal/actions"
)

// newFormatCmd creates the format command
func newFormatCmd() *cobra.Command {
	var opts actions.Options

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Normalize commit messages into canonical section order",
		Long: `Validate each selected commit message and rewrite it in canonical section
order. Purely local; no pull requests are touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := newRunContextLocal(cmd.Context())
			if err != nil {
				return err
			}
			return actions.Format(cmd.Context(), opts, run.Stack, run.Cfg, run.Splog)
		},
	}

	revisionFlags(cmd, &opts)

	return cmd
}
