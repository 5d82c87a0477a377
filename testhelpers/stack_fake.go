package testhelpers

import (
	"context"
	"fmt"

	"github.com/petr-tik/jj-spr/internal/config"
	"github.com/petr-tik/jj-spr/internal/jj"
)

// FakeStack is an in-memory StackProvider holding a fixed working set. Every
// RewriteCommitMessages call records which change IDs were dirty at the time,
// then clears the flags the way the real provider does after persisting.
type FakeStack struct {
	Commits []*jj.PreparedCommit

	// RewriteCalls holds, per persistence call, the dirty change IDs.
	RewriteCalls [][]string

	// RewriteErr, when set, is returned by RewriteCommitMessages.
	RewriteErr error
}

// GetPreparedCommit returns the last commit of the working set, matching the
// default single-revision selection.
func (f *FakeStack) GetPreparedCommit(ctx context.Context, cfg *config.Config, revision string) (*jj.PreparedCommit, error) {
	if len(f.Commits) == 0 {
		return nil, fmt.Errorf("revision %q resolved to 0 commits, expected exactly one", revision)
	}
	return f.Commits[len(f.Commits)-1], nil
}

// GetPreparedCommits returns the whole working set, parents first.
func (f *FakeStack) GetPreparedCommits(ctx context.Context, cfg *config.Config, base, target string, inclusive bool) ([]*jj.PreparedCommit, error) {
	return f.Commits, nil
}

// RewriteCommitMessages records the dirty change IDs and clears their flags.
func (f *FakeStack) RewriteCommitMessages(ctx context.Context, commits []*jj.PreparedCommit) error {
	if f.RewriteErr != nil {
		return f.RewriteErr
	}
	var dirty []string
	for _, commit := range commits {
		if commit.MessageChanged {
			dirty = append(dirty, commit.ChangeID)
			commit.RawDescription = commit.Message.Serialize()
			commit.MessageChanged = false
		}
	}
	f.RewriteCalls = append(f.RewriteCalls, dirty)
	return nil
}
