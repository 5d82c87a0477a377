package jj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petr-tik/jj-spr/internal/config"
	"github.com/petr-tik/jj-spr/internal/message"
)

func TestParseLog_SingleCommit(t *testing.T) {
	cfg := config.New("acme", "codez", "origin", "main", "spr/", false)

	out := "qpvuntsmwlqt\n" +
		"a1b2c3d4\n" +
		"e5f6a7b8\n" +
		"Add user authentication\n\nSome summary.\n" +
		"--jj-spr-commit--\n"

	commits, err := parseLog(out, cfg)
	require.NoError(t, err)
	require.Len(t, commits, 1)

	commit := commits[0]
	assert.Equal(t, "qpvuntsmwlqt", commit.ChangeID)
	assert.Equal(t, "a1b2c3d4", commit.CommitID)
	assert.Equal(t, "e5f6a7b8", commit.ParentCommitID)
	assert.Equal(t, "Add user authentication", commit.Title())
	assert.Equal(t, "Some summary.", commit.Message.Get(message.SectionSummary))
	assert.Nil(t, commit.PullRequestNumber)
	assert.False(t, commit.MessageChanged)
}

func TestParseLog_MultipleCommitsKeepOrder(t *testing.T) {
	cfg := config.New("acme", "codez", "origin", "main", "spr/", false)

	out := "change1\ncommit1\nparent1\nFirst commit\n--jj-spr-commit--\n" +
		"change2\ncommit2\ncommit1\nSecond commit\n--jj-spr-commit--\n" +
		"change3\ncommit3\ncommit2\nThird commit\n--jj-spr-commit--\n"

	commits, err := parseLog(out, cfg)
	require.NoError(t, err)
	require.Len(t, commits, 3)

	assert.Equal(t, "First commit", commits[0].Title())
	assert.Equal(t, "Second commit", commits[1].Title())
	assert.Equal(t, "Third commit", commits[2].Title())
	assert.Equal(t, "commit1", commits[1].ParentCommitID)
}

func TestParseLog_MergeCommitUsesFirstParent(t *testing.T) {
	out := "change1\ncommit1\nparentA,parentB\nMerge work\n--jj-spr-commit--\n"

	commits, err := parseLog(out, nil)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "parentA", commits[0].ParentCommitID)
}

func TestParseLog_PullRequestSection(t *testing.T) {
	cfg := config.New("acme", "codez", "origin", "main", "spr/", false)

	out := "change1\ncommit1\nparent1\n" +
		"A submitted change\n\nPull Request: https://github.com/acme/codez/pull/77\n" +
		"--jj-spr-commit--\n"

	commits, err := parseLog(out, cfg)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	require.NotNil(t, commits[0].PullRequestNumber)
	assert.Equal(t, 77, *commits[0].PullRequestNumber)
}

func TestParseLog_EmptyOutput(t *testing.T) {
	commits, err := parseLog("", nil)
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestParseLog_Malformed(t *testing.T) {
	_, err := parseLog("just-one-line\n--jj-spr-commit--\n", nil)
	assert.Error(t, err)
}
