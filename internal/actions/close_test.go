package actions_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petr-tik/jj-spr/internal/actions"
	"github.com/petr-tik/jj-spr/internal/errors"
	"github.com/petr-tik/jj-spr/internal/github"
	"github.com/petr-tik/jj-spr/internal/jj"
	"github.com/petr-tik/jj-spr/internal/message"
	"github.com/petr-tik/jj-spr/internal/output"
	"github.com/petr-tik/jj-spr/testhelpers"
)

func TestCloseClosesStackAndDeletesBranches(t *testing.T) {
	cfg := testhelpers.NewTestConfig()
	splog := output.NewSplogWriter(&bytes.Buffer{})

	gh := testhelpers.NewFakeGitHub(cfg)
	bottom := gh.AddPullRequest("Feature A", "Summary A", "spr/alice/feature-a", "main")
	top := gh.AddPullRequest("Feature B", "Summary B", "spr/alice/feature-b", "spr/alice/feature-a")

	first := testhelpers.NewCommitWithPR("aaa", "Feature A", bottom, cfg)
	second := testhelpers.NewCommitWithPR("bbb", "Feature B", top, cfg)
	stack := &testhelpers.FakeStack{Commits: []*jj.PreparedCommit{first, second}}
	store := testhelpers.NewFakeBranchStore()

	err := actions.Close(context.Background(), actions.Options{All: true}, stack, gh, store, cfg, splog)
	require.NoError(t, err)

	assert.Equal(t, github.PullRequestClosed, gh.PullRequest(bottom).State)
	assert.Equal(t, github.PullRequestClosed, gh.PullRequest(top).State)

	// Head branches always go; a base branch only when it is not master.
	assert.Equal(t, []string{"spr/alice/feature-a", "spr/alice/feature-b", "spr/alice/feature-a"}, store.Deleted)

	// The PR reference is scrubbed from both messages in one batched write.
	assert.Empty(t, first.Message.Get(message.SectionPullRequest))
	assert.Empty(t, second.Message.Get(message.SectionPullRequest))
	require.Len(t, stack.RewriteCalls, 1)
	assert.Equal(t, []string{"aaa", "bbb"}, stack.RewriteCalls[0])
}

func TestCloseStopsAtFirstFailureButKeepsProgress(t *testing.T) {
	cfg := testhelpers.NewTestConfig()
	splog := output.NewSplogWriter(&bytes.Buffer{})

	gh := testhelpers.NewFakeGitHub(cfg)
	bottom := gh.AddPullRequest("Feature A", "Summary A", "spr/alice/feature-a", "main")
	top := gh.AddPullRequest("Feature B", "Summary B", "spr/alice/feature-b", "spr/alice/feature-a")
	gh.ClosePullRequest(top)

	first := testhelpers.NewCommitWithPR("aaa", "Feature A", bottom, cfg)
	second := testhelpers.NewCommitWithPR("bbb", "Feature B", top, cfg)
	third := testhelpers.NewCommit("ccc", "Feature C\n\nSummary C\n")
	stack := &testhelpers.FakeStack{Commits: []*jj.PreparedCommit{first, second, third}}
	store := testhelpers.NewFakeBranchStore()

	err := actions.Close(context.Background(), actions.Options{All: true}, stack, gh, store, cfg, splog)
	require.ErrorIs(t, err, errors.ErrAlreadyClosed)

	// The first close happened and is persisted; the second stopped the run.
	assert.Equal(t, github.PullRequestClosed, gh.PullRequest(bottom).State)
	assert.Equal(t, cfg.PullRequestURL(top), second.Message.Get(message.SectionPullRequest))
	require.Len(t, stack.RewriteCalls, 1)
	assert.Equal(t, []string{"aaa"}, stack.RewriteCalls[0])
}

func TestCloseRejectsCommitWithoutPullRequest(t *testing.T) {
	cfg := testhelpers.NewTestConfig()
	splog := output.NewSplogWriter(&bytes.Buffer{})

	gh := testhelpers.NewFakeGitHub(cfg)
	local := testhelpers.NewCommit("aaa", "Feature A\n\nSummary A\n")
	stack := &testhelpers.FakeStack{Commits: []*jj.PreparedCommit{local}}
	store := testhelpers.NewFakeBranchStore()

	err := actions.Close(context.Background(), actions.Options{All: true}, stack, gh, store, cfg, splog)
	require.ErrorIs(t, err, errors.ErrNotAPullRequest)
	assert.Empty(t, store.Deleted)
}
