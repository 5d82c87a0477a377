// Package config holds the immutable per-run configuration and the branch
// naming rules derived from it.
package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/petr-tik/jj-spr/internal/github"
)

// Config is constructed once per command invocation and never mutated.
type Config struct {
	// Owner is the GitHub repository owner.
	Owner string
	// Repo is the GitHub repository name.
	Repo string
	// RemoteName is the git remote the repository is pushed to.
	RemoteName string
	// MasterRef is the branch pull requests ultimately land on.
	MasterRef github.Branch
	// BranchPrefix is prepended to every generated branch name.
	BranchPrefix string
	// RequireApproval makes reviewer approval mandatory before landing.
	RequireApproval bool
}

// New builds a Config.
func New(owner, repo, remoteName, masterBranch, branchPrefix string, requireApproval bool) *Config {
	return &Config{
		Owner:           owner,
		Repo:            repo,
		RemoteName:      remoteName,
		MasterRef:       github.NewBranch(masterBranch, remoteName, masterBranch),
		BranchPrefix:    branchPrefix,
		RequireApproval: requireApproval,
	}
}

// PullRequestURL returns the web URL of a pull request in this repository.
func (c *Config) PullRequestURL(number int) string {
	return fmt.Sprintf("https://github.com/%s/%s/pull/%d", c.Owner, c.Repo, number)
}

var (
	prNumberRegex = regexp.MustCompile(`^\s*#?\s*(\d+)\s*$`)
	prURLRegex    = regexp.MustCompile(`^\s*https?://github\.com/([\w\-.]+)/([\w\-.]+)/pull/(\d+)([/?#].*)?\s*$`)
)

// ParsePullRequestField extracts a PR number from the Pull Request message
// section. It accepts a bare number, a "#123" form, or a full URL pointing at
// this repository. Returns nil when the text carries no usable reference.
func (c *Config) ParsePullRequestField(text string) *int {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if m := prNumberRegex.FindStringSubmatch(text); m != nil {
		number, err := strconv.Atoi(m[1])
		if err == nil {
			return &number
		}
	}

	if m := prURLRegex.FindStringSubmatch(text); m != nil {
		if m[1] != c.Owner || m[2] != c.Repo {
			return nil
		}
		number, err := strconv.Atoi(m[3])
		if err == nil {
			return &number
		}
	}

	return nil
}

// NewGitHubBranch builds a Branch for a bare branch name under this config.
func (c *Config) NewGitHubBranch(branchName string) github.Branch {
	return github.NewBranch(branchName, c.RemoteName, c.MasterRef.Name())
}

// NewGitHubBranchFromRef builds a Branch from a fully qualified ref.
func (c *Config) NewGitHubBranchFromRef(ref string) (github.Branch, error) {
	return github.NewBranchFromRef(ref, c.RemoteName, c.MasterRef.Name())
}
