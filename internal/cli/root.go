// Package cli wires the commands to the synchronization actions.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "jj-spr",
		Short:   "Submit and update GitHub pull requests from local jj commits",
		Version: version,
		Long: `jj-spr publishes a stack of local Jujutsu commits as GitHub pull requests,
one PR per commit, keeping the dependency links and commit messages in sync
in both directions.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newAmendCmd())
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newCloseCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}
