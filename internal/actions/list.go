package actions

import (
	"context"

	"github.com/petr-tik/jj-spr/internal/config"
	"github.com/petr-tik/jj-spr/internal/github"
	"github.com/petr-tik/jj-spr/internal/output"
)

// List prints the repository's open pull requests whose head branch carries
// the configured prefix, i.e. the ones this tool manages.
func List(ctx context.Context, gh github.Client, cfg *config.Config, splog *output.Splog) error {
	pullRequests, err := gh.ListOpenPullRequests(ctx, cfg.BranchPrefix)
	if err != nil {
		return err
	}

	if len(pullRequests) == 0 {
		splog.Info("No open pull requests")
		return nil
	}

	for _, pullRequest := range pullRequests {
		splog.Output("📜", "#%d %s", pullRequest.Number, pullRequest.Title)
		splog.Dim("   %s", cfg.PullRequestURL(pullRequest.Number))
	}
	return nil
}
