package stackinfo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petr-tik/jj-spr/internal/message"
	"github.com/petr-tik/jj-spr/internal/stackinfo"
)

func entry(prNumber int, title string) stackinfo.CommitEntry {
	return stackinfo.CommitEntry{
		PullRequestNumber: &prNumber,
		Message:           message.Sections{message.SectionTitle: title},
	}
}

func entryWithoutPR(title string) stackinfo.CommitEntry {
	return stackinfo.CommitEntry{
		Message: message.Sections{message.SectionTitle: title},
	}
}

func TestDetectPosition_SingleCommit(t *testing.T) {
	commits := []stackinfo.CommitEntry{entry(1, "Test PR")}

	assert.Nil(t, stackinfo.DetectPosition(0, commits),
		"a single PR needs no dependency banner")
}

func TestDetectPosition_FirstOfTwo(t *testing.T) {
	commits := []stackinfo.CommitEntry{
		entry(1, "First PR"),
		entry(2, "Second PR"),
	}

	position := stackinfo.DetectPosition(0, commits)
	require.NotNil(t, position)
	assert.Equal(t, 1, position.Current)
	assert.Equal(t, 2, position.Total)
	assert.Nil(t, position.ParentPR)
	assert.Equal(t, []int{2}, position.ChildPRs)
}

func TestDetectPosition_SecondOfTwo(t *testing.T) {
	commits := []stackinfo.CommitEntry{
		entry(1, "First PR"),
		entry(2, "Second PR"),
	}

	position := stackinfo.DetectPosition(1, commits)
	require.NotNil(t, position)
	assert.Equal(t, 2, position.Current)
	assert.Equal(t, 2, position.Total)
	require.NotNil(t, position.ParentPR)
	assert.Equal(t, 1, *position.ParentPR)
	assert.Empty(t, position.ChildPRs)
}

func TestDetectPosition_MiddleOfThree(t *testing.T) {
	commits := []stackinfo.CommitEntry{
		entry(1, "First PR"),
		entry(2, "Second PR"),
		entry(3, "Third PR"),
	}

	position := stackinfo.DetectPosition(1, commits)
	require.NotNil(t, position)
	assert.Equal(t, 2, position.Current)
	assert.Equal(t, 3, position.Total)
	require.NotNil(t, position.ParentPR)
	assert.Equal(t, 1, *position.ParentPR)
	assert.Equal(t, []int{3}, position.ChildPRs)
}

func TestDetectPosition_GapDoesNotLink(t *testing.T) {
	commits := []stackinfo.CommitEntry{
		entry(1, "First PR"),
		entryWithoutPR("Not submitted yet"),
		entry(2, "Third PR"),
	}

	// The first commit sees only one other PR.
	position := stackinfo.DetectPosition(0, commits)
	require.NotNil(t, position)
	assert.Equal(t, 1, position.Current)
	assert.Equal(t, 2, position.Total)
	assert.Nil(t, position.ParentPR)
	assert.Equal(t, []int{2}, position.ChildPRs)

	// The middle commit has no PR, so no stack position.
	assert.Nil(t, stackinfo.DetectPosition(1, commits))

	// The third commit sees the first as parent, skipping the gap.
	position = stackinfo.DetectPosition(2, commits)
	require.NotNil(t, position)
	assert.Equal(t, 2, position.Current)
	assert.Equal(t, 2, position.Total)
	require.NotNil(t, position.ParentPR)
	assert.Equal(t, 1, *position.ParentPR)
	assert.Empty(t, position.ChildPRs)
}

func TestBuildText_Format(t *testing.T) {
	commits := []stackinfo.CommitEntry{
		entry(120, "Add authentication module"),
		entry(121, "Add user session handling"),
		entry(122, "Add user profile endpoints"),
	}

	position := stackinfo.DetectPosition(1, commits)
	require.NotNil(t, position)

	text := stackinfo.BuildText(position, stackinfo.Repo{Owner: "acme", Name: "codez"}, commits)

	assert.Contains(t, text, "Stack Position: 2 of 3")
	assert.Contains(t, text, "⬆️ **Depends on:** acme/codez#120 - Add authentication module")
	assert.Contains(t, text, "⬇️ **Required for:** acme/codez#122 - Add user profile endpoints")
	assert.Contains(t, text, "**Full Stack:**")
	assert.Contains(t, text, "2. acme/codez#121 - Add user session handling (this PR)")
	assert.True(t, strings.HasPrefix(text, "---"))
	assert.True(t, strings.HasSuffix(text, "---"))
}

func TestBuildText_IsIdempotentlyRegenerated(t *testing.T) {
	commits := []stackinfo.CommitEntry{
		entry(1, "First PR"),
		entry(2, "Second PR"),
	}

	position := stackinfo.DetectPosition(0, commits)
	require.NotNil(t, position)

	repo := stackinfo.Repo{Owner: "acme", Name: "codez"}
	assert.Equal(t,
		stackinfo.BuildText(position, repo, commits),
		stackinfo.BuildText(position, repo, commits))
}
