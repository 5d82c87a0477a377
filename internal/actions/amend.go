package actions

import (
	"context"

	"github.com/petr-tik/jj-spr/internal/config"
	"github.com/petr-tik/jj-spr/internal/errors"
	"github.com/petr-tik/jj-spr/internal/github"
	"github.com/petr-tik/jj-spr/internal/output"
)

// Amend replaces the local message of every PR-bearing commit in the working
// set with its pull request's sections. Remote fetches run concurrently, one
// per commit, and are joined in stack order so merging is deterministic.
// Failures accumulate: the run continues through the full list and ends with
// one batched rewrite covering every commit.
func Amend(ctx context.Context, opts Options, provider StackProvider, gh github.Client, cfg *config.Config, splog *output.Splog) error {
	commits, err := resolveStack(ctx, opts, provider, cfg)
	if err != nil {
		return err
	}
	if emptyStack(splog, commits) {
		return nil
	}

	fetches := spawnFetches(ctx, gh, commits)

	var result error
	failure := false
	for i, commit := range commits {
		splog.CommitTitle(commit.Title())

		if fetches[i] != nil {
			res := <-fetches[i]
			if res.err != nil {
				splog.Error("%v", res.err)
				errors.Accumulate(&result, res.err)
				continue
			}
			commit.Message = res.pr.Sections.Clone()
			commit.MessageChanged = true
		}

		if err := commit.Message.Validate(); err != nil {
			splog.Error("%v", err)
			failure = true
		}
	}

	errors.Accumulate(&result, provider.RewriteCommitMessages(ctx, commits))

	if failure {
		errors.Accumulate(&result, errors.ErrValidationFailed)
	}
	return result
}
