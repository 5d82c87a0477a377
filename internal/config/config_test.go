package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petr-tik/jj-spr/internal/config"
)

func configFactory() *config.Config {
	return config.New("acme", "codez", "origin", "master", "spr/foo/", false)
}

func refSet(refs ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		set[ref] = struct{}{}
	}
	return set
}

func TestPullRequestURL(t *testing.T) {
	cfg := configFactory()

	assert.Equal(t, "https://github.com/acme/codez/pull/123", cfg.PullRequestURL(123))
}

func TestParsePullRequestField_Empty(t *testing.T) {
	cfg := configFactory()

	assert.Nil(t, cfg.ParsePullRequestField(""))
	assert.Nil(t, cfg.ParsePullRequestField("   "))
	assert.Nil(t, cfg.ParsePullRequestField("\n"))
}

func TestParsePullRequestField_Number(t *testing.T) {
	cfg := configFactory()

	for _, text := range []string{"123", "   123 ", "#123", " # 123"} {
		number := cfg.ParsePullRequestField(text)
		require.NotNil(t, number, "expected %q to parse", text)
		assert.Equal(t, 123, *number)
	}
}

func TestParsePullRequestField_URL(t *testing.T) {
	cfg := configFactory()

	for _, text := range []string{
		"https://github.com/acme/codez/pull/123",
		"  https://github.com/acme/codez/pull/123  ",
		"https://github.com/acme/codez/pull/123/",
		"https://github.com/acme/codez/pull/123?x=a",
		"https://github.com/acme/codez/pull/123/foo",
		"https://github.com/acme/codez/pull/123#abc",
	} {
		number := cfg.ParsePullRequestField(text)
		require.NotNil(t, number, "expected %q to parse", text)
		assert.Equal(t, 123, *number)
	}

	// URLs pointing at a different repository carry no usable reference.
	assert.Nil(t, cfg.ParsePullRequestField("https://github.com/other/repo/pull/123"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "add-user-authentication", config.Slugify("Add user authentication"))
	assert.Equal(t, "fix-bug-42", config.Slugify("  Fix bug #42!  "))
	assert.Equal(t, "a-b-c", config.Slugify("a---b___c"))
}

func TestNewBranchName_NoCollision(t *testing.T) {
	cfg := configFactory()

	name := cfg.NewBranchName(refSet(), "foo")
	assert.Equal(t, "spr/foo/foo", name)
}

func TestNewBranchName_Collision(t *testing.T) {
	cfg := configFactory()
	existing := refSet("refs/remotes/origin/spr/foo/foo")

	assert.Equal(t, "spr/foo/foo-1", cfg.NewBranchName(existing, "foo"))

	existing["refs/remotes/origin/spr/foo/foo-1"] = struct{}{}
	assert.Equal(t, "spr/foo/foo-2", cfg.NewBranchName(existing, "foo"))
}

func TestNewBranchName_DistinctTitlesNeverCollide(t *testing.T) {
	cfg := configFactory()
	existing := refSet()

	first := cfg.NewBranchName(existing, "first change")
	existing["refs/remotes/origin/"+first] = struct{}{}
	second := cfg.NewBranchName(existing, "second change")

	assert.NotEqual(t, first, second)
}

func TestBaseBranchName_IncorporatesMasterBranch(t *testing.T) {
	cfg := configFactory()

	name := cfg.BaseBranchName(refSet(), "foo")
	assert.Equal(t, "spr/foo/master.foo", name)
}

func TestNewGitHubBranch(t *testing.T) {
	cfg := configFactory()

	branch := cfg.NewGitHubBranch("spr/foo/thing")
	assert.Equal(t, "spr/foo/thing", branch.Name())
	assert.Equal(t, "refs/heads/spr/foo/thing", branch.LocalRef())
	assert.Equal(t, "refs/remotes/origin/spr/foo/thing", branch.RemoteRef())
	assert.False(t, branch.IsMasterBranch())

	master := cfg.NewGitHubBranch("master")
	assert.True(t, master.IsMasterBranch())
}

func TestNewGitHubBranchFromRef(t *testing.T) {
	cfg := configFactory()

	branch, err := cfg.NewGitHubBranchFromRef("refs/remotes/origin/spr/foo/thing")
	require.NoError(t, err)
	assert.Equal(t, "spr/foo/thing", branch.Name())

	branch, err = cfg.NewGitHubBranchFromRef("refs/heads/master")
	require.NoError(t, err)
	assert.True(t, branch.IsMasterBranch())

	_, err = cfg.NewGitHubBranchFromRef("refs/tags/v1.0.0")
	assert.Error(t, err)
}
