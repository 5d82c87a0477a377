package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/petr-tik/jj-spr/internal/config"
	"github.com/petr-tik/jj-spr/internal/errors"
	"github.com/petr-tik/jj-spr/internal/github"
	"github.com/petr-tik/jj-spr/internal/jj"
	"github.com/petr-tik/jj-spr/internal/message"
	"github.com/petr-tik/jj-spr/internal/output"
	"github.com/petr-tik/jj-spr/internal/stackinfo"
)

// DiffOptions configures the diff (publish) command.
type DiffOptions struct {
	Options

	// Draft creates new pull requests in draft state.
	Draft bool
}

// Diff publishes the working set: each commit gets a pull request created or
// updated, its snapshot pushed to a head branch, and its position banner
// regenerated. Existing PRs are fetched concurrently up front; all remote
// mutations run in stack order. Commits whose message gained a Pull Request
// section are persisted through the final batched rewrite; untouched
// ancestors keep their change identifiers.
func Diff(ctx context.Context, opts DiffOptions, provider StackProvider, gh github.Client, store BranchStore, cfg *config.Config, splog *output.Splog) error {
	commits, err := resolveStack(ctx, opts.Options, provider, cfg)
	if err != nil {
		return err
	}
	if emptyStack(splog, commits) {
		return nil
	}

	fetches := spawnFetches(ctx, gh, commits)

	refNames, err := store.ExistingRefNames()
	if err != nil {
		return err
	}

	// headBranches[i] is the head branch name of commit i's PR, once known.
	headBranches := make([]string, len(commits))
	baseBranches := make([]string, len(commits))

	var result error
	for i, commit := range commits {
		splog.CommitTitle(commit.Title())

		if err := commit.Message.Validate(); err != nil {
			splog.Error("%v", err)
			errors.Accumulate(&result, errors.ErrValidationFailed)
			continue
		}

		base, err := determineBaseBranch(ctx, store, cfg, commits, headBranches, refNames, i)
		if err != nil {
			errors.Accumulate(&result, err)
			continue
		}
		baseBranches[i] = base

		if fetches[i] != nil {
			err = updateExisting(ctx, gh, store, cfg, commit, <-fetches[i], headBranches, i, splog)
		} else {
			err = createNew(ctx, opts, gh, store, cfg, commit, base, refNames, headBranches, i, splog)
		}
		if err != nil {
			splog.Error("%v", err)
			errors.Accumulate(&result, err)
		}
	}

	refreshStackBanners(ctx, gh, cfg, commits, baseBranches, splog, &result)

	errors.Accumulate(&result, provider.RewriteCommitMessages(ctx, commits))

	return result
}

// determineBaseBranch picks the branch a commit's PR targets. The first
// commit (and any commit whose stack parent is unpublished and sitting on
// master) targets master directly. A commit stacked on a published commit
// targets that commit's head branch. A commit stacked on an unpublished,
// non-master parent gets an intermediate base branch holding the parent
// snapshot, so its PR shows only its own diff.
func determineBaseBranch(ctx context.Context, store BranchStore, cfg *config.Config, commits []*jj.PreparedCommit, headBranches []string, refNames map[string]struct{}, index int) (string, error) {
	if index == 0 {
		return cfg.MasterRef.Name(), nil
	}

	if headBranches[index-1] != "" {
		return headBranches[index-1], nil
	}

	parent := commits[index-1]
	baseBranch := cfg.BaseBranchName(refNames, commits[index].Title())
	refNames["refs/remotes/"+cfg.RemoteName+"/"+baseBranch] = struct{}{}

	if err := store.PushCommit(ctx, cfg.RemoteName, parent.CommitID, baseBranch); err != nil {
		return "", fmt.Errorf("pushing base branch %s: %w", baseBranch, err)
	}
	return baseBranch, nil
}

func createNew(ctx context.Context, opts DiffOptions, gh github.Client, store BranchStore, cfg *config.Config, commit *jj.PreparedCommit, base string, refNames map[string]struct{}, headBranches []string, index int, splog *output.Splog) error {
	headBranch := cfg.NewBranchName(refNames, commit.Title())
	refNames["refs/remotes/"+cfg.RemoteName+"/"+headBranch] = struct{}{}

	if err := store.PushCommit(ctx, cfg.RemoteName, commit.CommitID, headBranch); err != nil {
		return err
	}

	pullRequest, err := gh.CreatePullRequest(ctx, github.PullRequestRequest{
		Title: commit.Title(),
		Body:  renderPullRequestBody(commit.Message, ""),
		Head:  headBranch,
		Base:  base,
		Draft: opts.Draft,
	})
	if err != nil {
		return err
	}

	headBranches[index] = headBranch
	commit.PullRequestNumber = &pullRequest.Number
	commit.Message.Set(message.SectionPullRequest, cfg.PullRequestURL(pullRequest.Number))
	commit.MessageChanged = true

	splog.Output("✅", "Created Pull Request: %s", cfg.PullRequestURL(pullRequest.Number))
	return nil
}

func updateExisting(ctx context.Context, gh github.Client, store BranchStore, cfg *config.Config, commit *jj.PreparedCommit, res fetchResult, headBranches []string, index int, splog *output.Splog) error {
	if res.err != nil {
		return res.err
	}
	pullRequest := res.pr
	if pullRequest.State != github.PullRequestOpen {
		return fmt.Errorf("pull request #%d is not open", pullRequest.Number)
	}

	headBranches[index] = pullRequest.Head.Name()

	if err := store.PushCommit(ctx, cfg.RemoteName, commit.CommitID, pullRequest.Head.Name()); err != nil {
		return err
	}

	splog.Output("🔄", "Updated Pull Request: %s", cfg.PullRequestURL(pullRequest.Number))
	return nil
}

// refreshStackBanners regenerates every published PR's title, body, banner
// and base after the whole working set is known. The banner is rebuilt from
// scratch each run rather than patched.
func refreshStackBanners(ctx context.Context, gh github.Client, cfg *config.Config, commits []*jj.PreparedCommit, baseBranches []string, splog *output.Splog, result *error) {
	entries := make([]stackinfo.CommitEntry, len(commits))
	for i, commit := range commits {
		entries[i] = stackinfo.CommitEntry{
			PullRequestNumber: commit.PullRequestNumber,
			Message:           commit.Message,
		}
	}
	repo := stackinfo.Repo{Owner: cfg.Owner, Name: cfg.Repo}

	for i, commit := range commits {
		if commit.PullRequestNumber == nil {
			continue
		}

		banner := ""
		if position := stackinfo.DetectPosition(i, entries); position != nil {
			banner = stackinfo.BuildText(position, repo, entries)
		}

		title := commit.Title()
		body := renderPullRequestBody(commit.Message, banner)
		update := github.PullRequestUpdate{Title: &title, Body: &body}
		if baseBranches[i] != "" {
			update.Base = &baseBranches[i]
		}

		if err := gh.UpdatePullRequest(ctx, *commit.PullRequestNumber, update); err != nil {
			splog.Error("%v", err)
			errors.Accumulate(result, err)
		}
	}
}

// renderPullRequestBody builds a PR description from the message sections
// (minus the title and the PR self-reference) plus the stack banner.
func renderPullRequestBody(sections message.Sections, banner string) string {
	body := sections.Clone()
	body.Remove(message.SectionTitle)
	body.Remove(message.SectionPullRequest)

	text := strings.TrimRight(body.Serialize(), "\n")
	if banner == "" {
		return text
	}
	if text == "" {
		return banner
	}
	return text + "\n\n" + banner
}
