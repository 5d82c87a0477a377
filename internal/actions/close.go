package actions

import (
	"context"
	"fmt"

	"github.com/petr-tik/jj-spr/internal/config"
	"github.com/petr-tik/jj-spr/internal/errors"
	"github.com/petr-tik/jj-spr/internal/github"
	"github.com/petr-tik/jj-spr/internal/jj"
	"github.com/petr-tik/jj-spr/internal/message"
	"github.com/petr-tik/jj-spr/internal/output"
)

// Close closes the pull request of each commit in the working set, in stack
// order, stopping at the first failure. Messages already modified before the
// stop are still persisted through the final batched rewrite.
func Close(ctx context.Context, opts Options, provider StackProvider, gh github.Client, store BranchStore, cfg *config.Config, splog *output.Splog) error {
	commits, err := resolveStack(ctx, opts, provider, cfg)
	if err != nil {
		return err
	}
	if emptyStack(splog, commits) {
		return nil
	}

	var result error
	for _, commit := range commits {
		if result != nil {
			break
		}
		splog.CommitTitle(commit.Title())
		result = closeSingle(ctx, gh, store, cfg, commit, splog)
	}

	// Persist whatever was modified before a stop; partial progress is
	// saved, not discarded.
	errors.Accumulate(&result, provider.RewriteCommitMessages(ctx, commits))

	return result
}

func closeSingle(ctx context.Context, gh github.Client, store BranchStore, cfg *config.Config, commit *jj.PreparedCommit, splog *output.Splog) error {
	if commit.PullRequestNumber == nil {
		return fmt.Errorf("%w", errors.ErrNotAPullRequest)
	}
	number := *commit.PullRequestNumber
	splog.Output("#️⃣", "Pull Request #%d", number)

	pullRequest, err := gh.GetPullRequest(ctx, number)
	if err != nil {
		return err
	}
	if pullRequest.State != github.PullRequestOpen {
		return fmt.Errorf("%w", errors.ErrAlreadyClosed)
	}

	splog.Output("📖", "Getting started...")

	closed := github.PullRequestClosed
	if err := gh.UpdatePullRequest(ctx, number, github.PullRequestUpdate{State: &closed}); err != nil {
		splog.Error("GitHub Pull Request close failed")
		return err
	}
	splog.Output("📕", "Closed!")

	// Strip the sections that are meaningless once the PR is closed. Takes
	// effect at the final batched rewrite.
	commit.Message.Remove(message.SectionPullRequest)
	commit.Message.Remove(message.SectionReviewedBy)
	commit.MessageChanged = true

	deleteRetiredBranches(ctx, store, cfg, pullRequest, splog)

	return nil
}

// deleteRetiredBranches removes the PR's head branch and, when it was not
// based on master, its base branch. Both deletions are started, then both
// awaited. Failures are swallowed: GitHub may be configured to delete the
// branch automatically, in which case it is gone already.
func deleteRetiredBranches(ctx context.Context, store BranchStore, cfg *config.Config, pullRequest *github.PullRequest, splog *output.Splog) {
	var waits []func() error

	waitHead, err := store.DeleteRemoteBranch(ctx, cfg.RemoteName, pullRequest.Head.Name())
	if err != nil {
		splog.Debug("starting delete of head branch %s: %v", pullRequest.Head.Name(), err)
	} else {
		waits = append(waits, waitHead)
	}

	if !pullRequest.Base.IsMasterBranch() {
		waitBase, err := store.DeleteRemoteBranch(ctx, cfg.RemoteName, pullRequest.Base.Name())
		if err != nil {
			splog.Debug("starting delete of base branch %s: %v", pullRequest.Base.Name(), err)
		} else {
			waits = append(waits, waitBase)
		}
	}

	for _, wait := range waits {
		if err := wait(); err != nil {
			splog.Debug("remote branch delete: %v", err)
		}
	}
}
