package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// GitHubClient implements Client against the GitHub REST API.
type GitHubClient struct {
	client       *github.Client
	owner        string
	repo         string
	remoteName   string
	masterBranch string
}

var _ Client = (*GitHubClient)(nil)

// NewGitHubClient creates an authenticated client for one repository.
func NewGitHubClient(ctx context.Context, token, owner, repo, remoteName, masterBranch string) *GitHubClient {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, ts)

	return &GitHubClient{
		client:       github.NewClient(httpClient),
		owner:        owner,
		repo:         repo,
		remoteName:   remoteName,
		masterBranch: masterBranch,
	}
}

// GetPullRequest fetches one pull request by number.
func (c *GitHubClient) GetPullRequest(ctx context.Context, number int) (*PullRequest, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get pull request #%d: %w", number, err)
	}
	return c.toPullRequest(pr), nil
}

// CreatePullRequest opens a new pull request.
func (c *GitHubClient) CreatePullRequest(ctx context.Context, req PullRequestRequest) (*PullRequest, error) {
	newPR := &github.NewPullRequest{
		Title: github.String(req.Title),
		Head:  github.String(req.Head),
		Base:  github.String(req.Base),
		Draft: github.Bool(req.Draft),
	}
	if req.Body != "" {
		newPR.Body = github.String(req.Body)
	}

	created, _, err := c.client.PullRequests.Create(ctx, c.owner, c.repo, newPR)
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}
	return c.toPullRequest(created), nil
}

// UpdatePullRequest applies a partial update to an existing pull request.
func (c *GitHubClient) UpdatePullRequest(ctx context.Context, number int, update PullRequestUpdate) error {
	edit := &github.PullRequest{}

	if update.Title != nil {
		edit.Title = update.Title
	}
	if update.Body != nil {
		edit.Body = update.Body
	}
	if update.Base != nil {
		edit.Base = &github.PullRequestBranch{Ref: update.Base}
	}
	if update.State != nil {
		switch *update.State {
		case PullRequestOpen:
			edit.State = github.String("open")
		case PullRequestClosed:
			edit.State = github.String("closed")
		}
	}

	_, _, err := c.client.PullRequests.Edit(ctx, c.owner, c.repo, number, edit)
	if err != nil {
		return fmt.Errorf("failed to update pull request #%d: %w", number, err)
	}
	return nil
}

// ListOpenPullRequests lists open pull requests whose head branch carries the
// given prefix.
func (c *GitHubClient) ListOpenPullRequests(ctx context.Context, branchPrefix string) ([]*PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var result []*PullRequest
	for {
		prs, resp, err := c.client.PullRequests.List(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests: %w", err)
		}
		for _, pr := range prs {
			domain := c.toPullRequest(pr)
			if branchPrefix == "" || strings.HasPrefix(domain.Head.Name(), branchPrefix) {
				result = append(result, domain)
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return result, nil
}

func (c *GitHubClient) toPullRequest(pr *github.PullRequest) *PullRequest {
	state := PullRequestOpen
	switch {
	case pr.GetMerged() || pr.MergedAt != nil:
		state = PullRequestMerged
	case pr.GetState() == "closed":
		state = PullRequestClosed
	}

	number := pr.GetNumber()
	url := fmt.Sprintf("https://github.com/%s/%s/pull/%d", c.owner, c.repo, number)

	return &PullRequest{
		Number:   number,
		State:    state,
		Title:    pr.GetTitle(),
		Body:     pr.GetBody(),
		Base:     NewBranch(pr.GetBase().GetRef(), c.remoteName, c.masterBranch),
		Head:     NewBranch(pr.GetHead().GetRef(), c.remoteName, c.masterBranch),
		Sections: SectionsFromPullRequest(pr.GetTitle(), pr.GetBody(), url),
	}
}
