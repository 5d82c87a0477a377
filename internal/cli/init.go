package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/petr-tik/jj-spr/internal/config"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Interactively write the repository configuration",
		Long: `Ask for the GitHub repository, remote, master branch and branch prefix, and
store the answers in the repository's jj configuration. Existing values are
offered as defaults, so re-running init only changes what you edit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath, err := os.Getwd()
			if err != nil {
				return err
			}
			return runInit(cmd, config.NewLoader(repoPath))
		},
	}
}

func runInit(cmd *cobra.Command, loader *config.Loader) error {
	ctx := cmd.Context()

	repository, err := prompt(&survey.Input{
		Message: "GitHub repository (owner/name):",
		Default: loader.Get(ctx, config.KeyRepository),
	}, survey.WithValidator(validateOwnerRepo))
	if err != nil {
		return err
	}

	remoteName, err := prompt(&survey.Input{
		Message: "Git remote:",
		Default: withFallback(loader.Get(ctx, config.KeyRemoteName), config.DefaultRemoteName),
	})
	if err != nil {
		return err
	}

	masterBranch, err := prompt(&survey.Input{
		Message: "Master branch:",
		Default: withFallback(loader.Get(ctx, config.KeyMasterBranch), config.DefaultMasterBranch),
	})
	if err != nil {
		return err
	}

	branchPrefix, err := prompt(&survey.Input{
		Message: "Branch prefix for generated branches:",
		Default: withFallback(loader.Get(ctx, config.KeyBranchPrefix), config.DefaultBranchPrefix),
	})
	if err != nil {
		return err
	}

	requireApproval := false
	if err := survey.AskOne(&survey.Confirm{
		Message: "Require PR approval before landing?",
		Default: loader.GetBool(ctx, config.KeyRequireApproval, false),
	}, &requireApproval); err != nil {
		return err
	}

	settings := map[string]string{
		config.KeyRepository:      repository,
		config.KeyRemoteName:      remoteName,
		config.KeyMasterBranch:    masterBranch,
		config.KeyBranchPrefix:    branchPrefix,
		config.KeyRequireApproval: strconv.FormatBool(requireApproval),
	}
	for key, value := range settings {
		if err := loader.Set(ctx, key, value); err != nil {
			return fmt.Errorf("writing %s: %w", key, err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Configuration saved.")
	return nil
}

func prompt(input *survey.Input, opts ...survey.AskOpt) (string, error) {
	var answer string
	opts = append(opts, survey.WithValidator(survey.Required))
	if err := survey.AskOne(input, &answer, opts...); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func withFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func validateOwnerRepo(answer interface{}) error {
	text, _ := answer.(string)
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("expected owner/name, got %q", text)
	}
	return nil
}
