package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petr-tik/jj-spr/internal/actions"
	"github.com/petr-tik/jj-spr/internal/config"
	"github.com/petr-tik/jj-spr/internal/git"
	"github.com/petr-tik/jj-spr/internal/github"
	"github.com/petr-tik/jj-spr/internal/jj"
	"github.com/petr-tik/jj-spr/internal/output"
)

// runContext bundles everything a command needs once configuration is loaded.
type runContext struct {
	Cfg   *config.Config
	GH    github.Client
	Stack *jj.Jujutsu
	Store *git.Repo
	Splog *output.Splog
}

// newRunContext loads configuration from the repository at the working
// directory and connects the GitHub client.
func newRunContext(ctx context.Context) (*runContext, error) {
	repoPath, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(ctx, repoPath)
	if err != nil {
		return nil, err
	}

	token, err := config.GetAuthToken(ctx, config.NewLoader(repoPath))
	if err != nil {
		return nil, fmt.Errorf("no GitHub auth token: %w", err)
	}

	return &runContext{
		Cfg: cfg,
		GH: github.NewGitHubClient(ctx, token.Token,
			cfg.Owner, cfg.Repo, cfg.RemoteName, cfg.MasterRef.Name()),
		Stack: jj.New(repoPath),
		Store: git.Open(repoPath),
		Splog: output.NewSplog(),
	}, nil
}

// newRunContextLocal builds the context for commands that never touch the
// GitHub API, so running them needs no auth token.
func newRunContextLocal(ctx context.Context) (*runContext, error) {
	repoPath, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(ctx, repoPath)
	if err != nil {
		return nil, err
	}

	return &runContext{
		Cfg:   cfg,
		Stack: jj.New(repoPath),
		Splog: output.NewSplog(),
	}, nil
}

// revisionFlags registers the revision-selection flags shared by the
// stack-walking commands.
func revisionFlags(cmd *cobra.Command, opts *actions.Options) {
	cmd.Flags().StringVarP(&opts.Revision, "revision", "r", "",
		"revision or base..target range to operate on (default @-)")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false,
		"operate on the whole stack up to the selected revision")
	cmd.Flags().StringVar(&opts.Base, "base", "",
		"base revision for --all (default trunk())")
}
