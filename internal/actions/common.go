// Package actions implements the per-command synchronization logic: resolving
// the working set, merging remote pull-request state into local commit
// messages, and deciding which commits to persist.
package actions

import (
	"context"

	"github.com/petr-tik/jj-spr/internal/config"
	"github.com/petr-tik/jj-spr/internal/git"
	"github.com/petr-tik/jj-spr/internal/github"
	"github.com/petr-tik/jj-spr/internal/jj"
	"github.com/petr-tik/jj-spr/internal/output"
	"github.com/petr-tik/jj-spr/internal/revision"
)

// StackProvider resolves revisions into prepared commits and persists
// rewritten messages. Implemented by jj.Jujutsu; faked in tests.
type StackProvider interface {
	GetPreparedCommit(ctx context.Context, cfg *config.Config, revision string) (*jj.PreparedCommit, error)
	GetPreparedCommits(ctx context.Context, cfg *config.Config, base, target string, inclusive bool) ([]*jj.PreparedCommit, error)

	// RewriteCommitMessages is the single batched persistence call per run.
	// It must be a no-op for commits whose MessageChanged flag is unset and
	// must preserve their change identifiers exactly.
	RewriteCommitMessages(ctx context.Context, commits []*jj.PreparedCommit) error
}

var _ StackProvider = (*jj.Jujutsu)(nil)

// BranchStore performs the git-side remote branch mutations.
type BranchStore interface {
	ExistingRefNames() (map[string]struct{}, error)
	PushCommit(ctx context.Context, remote, commitID, branchName string) error
	DeleteRemoteBranch(ctx context.Context, remote, branchName string) (wait func() error, err error)
}

var _ BranchStore = (*git.Repo)(nil)

// Options are the revision-selection flags shared by every command.
type Options struct {
	// Revision is the -r/--revision expression; empty means the default.
	Revision string
	// All selects the whole stack from --base (or trunk) to the revision.
	All bool
	// Base overrides the base revision in --all mode.
	Base string
}

// resolveStack turns the selection flags into the ordered working set.
func resolveStack(ctx context.Context, opts Options, provider StackProvider, cfg *config.Config) ([]*jj.PreparedCommit, error) {
	r, err := revision.Resolve(opts.Revision, opts.All, opts.Base)
	if err != nil {
		return nil, err
	}

	if r.IsRange {
		return provider.GetPreparedCommits(ctx, cfg, r.Base, r.Target, r.Inclusive)
	}

	commit, err := provider.GetPreparedCommit(ctx, cfg, r.Target)
	if err != nil {
		return nil, err
	}
	return []*jj.PreparedCommit{commit}, nil
}

// emptyStack reports the friendly no-op for an empty working set.
func emptyStack(splog *output.Splog, commits []*jj.PreparedCommit) bool {
	if len(commits) > 0 {
		return false
	}
	splog.Output("👋", "No commits found - nothing to do. Good bye!")
	return true
}

// fetchResult carries one concurrent pull-request lookup.
type fetchResult struct {
	pr  *github.PullRequest
	err error
}

// spawnFetches starts one lookup goroutine per PR-bearing commit, in stack
// order. The returned slice is indexed like commits; entries for commits
// without a PR are nil. Each goroutine owns its own lookup and communicates
// through its channel only, so results can be joined in stack order without
// shared-state mutation.
func spawnFetches(ctx context.Context, gh github.Client, commits []*jj.PreparedCommit) []chan fetchResult {
	results := make([]chan fetchResult, len(commits))
	for i, commit := range commits {
		if commit.PullRequestNumber == nil {
			continue
		}
		ch := make(chan fetchResult, 1)
		results[i] = ch
		number := *commit.PullRequestNumber
		go func() {
			pr, err := gh.GetPullRequest(ctx, number)
			ch <- fetchResult{pr: pr, err: err}
		}()
	}
	return results
}
