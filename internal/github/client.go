// Package github provides the pull-request client used by the synchronizer.
// Domain types are decoupled from the go-github library so actions can be
// tested against an in-memory implementation.
package github

import (
	"context"

	"github.com/petr-tik/jj-spr/internal/message"
	"github.com/petr-tik/jj-spr/internal/stackinfo"
)

// PullRequestState is the lifecycle state of a pull request.
type PullRequestState int

const (
	// PullRequestOpen is an open pull request.
	PullRequestOpen PullRequestState = iota
	// PullRequestClosed is a closed, unmerged pull request.
	PullRequestClosed
	// PullRequestMerged is a merged pull request.
	PullRequestMerged
)

// PullRequest is the remote review state of one commit.
type PullRequest struct {
	Number   int
	State    PullRequestState
	Title    string
	Body     string
	Base     Branch
	Head     Branch
	Sections message.Sections
}

// PullRequestUpdate is a partial update; nil fields are left untouched.
type PullRequestUpdate struct {
	Title *string
	Body  *string
	Base  *string
	State *PullRequestState
}

// PullRequestRequest describes a pull request to create.
type PullRequestRequest struct {
	Title string
	Body  string
	Head  string
	Base  string
	Draft bool
}

// Client is the remote API surface the synchronizer consumes.
type Client interface {
	// GetPullRequest fetches one pull request by number.
	GetPullRequest(ctx context.Context, number int) (*PullRequest, error)

	// CreatePullRequest opens a new pull request.
	CreatePullRequest(ctx context.Context, req PullRequestRequest) (*PullRequest, error)

	// UpdatePullRequest applies a partial update to an existing pull request.
	UpdatePullRequest(ctx context.Context, number int, update PullRequestUpdate) error

	// ListOpenPullRequests lists the repository's open pull requests whose
	// head branch carries the given prefix.
	ListOpenPullRequests(ctx context.Context, branchPrefix string) ([]*PullRequest, error)
}

// SectionsFromPullRequest folds a remote PR's title and body into message
// sections. Any stack banner in the body is stripped first; leading
// unheadered body text becomes the Summary; the Pull Request section is set
// to the PR's URL.
func SectionsFromPullRequest(title, body, url string) message.Sections {
	sections := message.ParseWithDefault(stackinfo.StripBanner(body), message.SectionSummary)
	sections.Set(message.SectionTitle, title)
	sections.Set(message.SectionPullRequest, url)
	return sections
}
