package testhelpers

import (
	"context"
	"fmt"
	"sync"

	"github.com/petr-tik/jj-spr/internal/config"
	"github.com/petr-tik/jj-spr/internal/github"
)

// FakeGitHub is an in-memory github.Client. It hands out sequential PR
// numbers on create and records every update so tests can assert on the
// exact remote mutations an action performed. Safe for the concurrent
// fetches the actions spawn.
type FakeGitHub struct {
	mu sync.Mutex

	cfg          *config.Config
	pullRequests map[int]*github.PullRequest
	nextNumber   int

	// Created and Updated record mutations in the order they happened.
	Created []github.PullRequestRequest
	Updated []RecordedUpdate

	// Errors maps a PR number to an error returned by every call touching it.
	Errors map[int]error
}

// RecordedUpdate is one UpdatePullRequest call.
type RecordedUpdate struct {
	Number int
	Update github.PullRequestUpdate
}

// NewFakeGitHub creates an empty fake client.
func NewFakeGitHub(cfg *config.Config) *FakeGitHub {
	return &FakeGitHub{
		cfg:          cfg,
		pullRequests: make(map[int]*github.PullRequest),
		nextNumber:   1,
		Errors:       make(map[int]error),
	}
}

// AddPullRequest seeds an open pull request and returns its number.
func (f *FakeGitHub) AddPullRequest(title, body, head, base string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	number := f.nextNumber
	f.nextNumber++
	f.pullRequests[number] = f.build(number, title, body, head, base)
	return number
}

// ClosePullRequest marks a seeded pull request closed.
func (f *FakeGitHub) ClosePullRequest(number int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pullRequests[number].State = github.PullRequestClosed
}

// PullRequest returns the current state of a seeded pull request.
func (f *FakeGitHub) PullRequest(number int) github.PullRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.pullRequests[number]
}

// GetPullRequest implements github.Client.
func (f *FakeGitHub) GetPullRequest(ctx context.Context, number int) (*github.PullRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.Errors[number]; err != nil {
		return nil, err
	}
	pr, ok := f.pullRequests[number]
	if !ok {
		return nil, fmt.Errorf("pull request #%d not found", number)
	}
	copied := *pr
	copied.Sections = pr.Sections.Clone()
	return &copied, nil
}

// CreatePullRequest implements github.Client.
func (f *FakeGitHub) CreatePullRequest(ctx context.Context, req github.PullRequestRequest) (*github.PullRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	number := f.nextNumber
	f.nextNumber++
	f.pullRequests[number] = f.build(number, req.Title, req.Body, req.Head, req.Base)
	f.Created = append(f.Created, req)

	copied := *f.pullRequests[number]
	return &copied, nil
}

// UpdatePullRequest implements github.Client.
func (f *FakeGitHub) UpdatePullRequest(ctx context.Context, number int, update github.PullRequestUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.Errors[number]; err != nil {
		return err
	}
	pr, ok := f.pullRequests[number]
	if !ok {
		return fmt.Errorf("pull request #%d not found", number)
	}

	if update.Title != nil {
		pr.Title = *update.Title
	}
	if update.Body != nil {
		pr.Body = *update.Body
	}
	if update.Base != nil {
		pr.Base = f.branch(*update.Base)
	}
	if update.State != nil {
		pr.State = *update.State
	}
	f.Updated = append(f.Updated, RecordedUpdate{Number: number, Update: update})
	return nil
}

// ListOpenPullRequests implements github.Client.
func (f *FakeGitHub) ListOpenPullRequests(ctx context.Context, branchPrefix string) ([]*github.PullRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var open []*github.PullRequest
	for number := 1; number < f.nextNumber; number++ {
		pr, ok := f.pullRequests[number]
		if !ok || pr.State != github.PullRequestOpen {
			continue
		}
		if len(pr.Head.Name()) < len(branchPrefix) || pr.Head.Name()[:len(branchPrefix)] != branchPrefix {
			continue
		}
		copied := *pr
		open = append(open, &copied)
	}
	return open, nil
}

func (f *FakeGitHub) build(number int, title, body, head, base string) *github.PullRequest {
	return &github.PullRequest{
		Number:   number,
		State:    github.PullRequestOpen,
		Title:    title,
		Body:     body,
		Head:     f.branch(head),
		Base:     f.branch(base),
		Sections: github.SectionsFromPullRequest(title, body, f.cfg.PullRequestURL(number)),
	}
}

func (f *FakeGitHub) branch(name string) github.Branch {
	return github.NewBranch(name, f.cfg.RemoteName, f.cfg.MasterRef.Name())
}
