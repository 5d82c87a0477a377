package config

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugReplaceRegex  = regexp.MustCompile(`[^a-z0-9]+`)
	slugCollapseRegex = regexp.MustCompile(`-+`)
)

// Slugify turns a commit title into branch-name material: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugReplaceRegex.ReplaceAllString(slug, "-")
	slug = slugCollapseRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// NewBranchName derives a head branch name for a pull request from its title,
// avoiding every name in existingRefNames (a set of fully qualified
// refs/remotes/ names).
func (c *Config) NewBranchName(existingRefNames map[string]struct{}, title string) string {
	return c.findUnusedBranchName(existingRefNames, Slugify(title))
}

// BaseBranchName derives a branch name for an intermediate stacking base. The
// master branch name is folded into the slug to mark the branch as a base.
func (c *Config) BaseBranchName(existingRefNames map[string]struct{}, title string) string {
	slug := fmt.Sprintf("%s.%s", c.MasterRef.Name(), Slugify(title))
	return c.findUnusedBranchName(existingRefNames, slug)
}

// findUnusedBranchName probes candidate names against the existing remote
// refs, appending an incrementing numeric suffix until an unused name is
// found. Always terminates: the suffix space is unbounded and the ref set is
// finite.
func (c *Config) findUnusedBranchName(existingRefNames map[string]struct{}, slug string) string {
	branchName := c.BranchPrefix + slug
	suffix := 0

	for {
		remoteRef := fmt.Sprintf("refs/remotes/%s/%s", c.RemoteName, branchName)
		if _, exists := existingRefNames[remoteRef]; !exists {
			return branchName
		}
		suffix++
		branchName = fmt.Sprintf("%s%s-%d", c.BranchPrefix, slug, suffix)
	}
}
