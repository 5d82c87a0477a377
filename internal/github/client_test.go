package github_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petr-tik/jj-spr/internal/github"
	"github.com/petr-tik/jj-spr/internal/message"
)

func TestSectionsFromPullRequest(t *testing.T) {
	body := "The summary paragraph.\n\nTest Plan: go test ./...\n"
	sections := github.SectionsFromPullRequest(
		"Add retries", body, "https://github.com/acme/codez/pull/9")

	assert.Equal(t, "Add retries", sections.Get(message.SectionTitle))
	assert.Equal(t, "The summary paragraph.", sections.Get(message.SectionSummary))
	assert.Equal(t, "go test ./...", sections.Get(message.SectionTestPlan))
	assert.Equal(t, "https://github.com/acme/codez/pull/9",
		sections.Get(message.SectionPullRequest))
}

func TestSectionsFromPullRequest_StripsStackBanner(t *testing.T) {
	body := "The summary.\n\n---\n**Stack Position: 1 of 2**\n\n" +
		"⬇️ **Required for:** acme/codez#10\n\n---"

	sections := github.SectionsFromPullRequest(
		"A title", body, "https://github.com/acme/codez/pull/9")

	assert.Equal(t, "The summary.", sections.Get(message.SectionSummary))
	assert.NotContains(t, sections.Get(message.SectionSummary), "Stack Position")
}

func TestBranchForms(t *testing.T) {
	branch := github.NewBranch("spr/add-retries", "origin", "main")

	assert.Equal(t, "spr/add-retries", branch.Name())
	assert.Equal(t, "refs/heads/spr/add-retries", branch.LocalRef())
	assert.Equal(t, "refs/remotes/origin/spr/add-retries", branch.RemoteRef())
	assert.False(t, branch.IsMasterBranch())
}
