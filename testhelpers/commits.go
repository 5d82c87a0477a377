package testhelpers

import (
	"fmt"

	"github.com/petr-tik/jj-spr/internal/config"
	"github.com/petr-tik/jj-spr/internal/jj"
	"github.com/petr-tik/jj-spr/internal/message"
)

// NewCommit builds a PreparedCommit with the given change ID and description
// text, the way the jj log parser would have produced it.
func NewCommit(changeID, description string) *jj.PreparedCommit {
	return &jj.PreparedCommit{
		ChangeID:       changeID,
		CommitID:       changeID + "-commit",
		RawDescription: description,
		Message:        message.Parse(description),
	}
}

// NewCommitWithPR builds a PreparedCommit whose message carries a Pull
// Request section referring to the given number.
func NewCommitWithPR(changeID, title string, number int, cfg *config.Config) *jj.PreparedCommit {
	description := fmt.Sprintf("%s\n\nPull Request: %s\n", title, cfg.PullRequestURL(number))
	commit := NewCommit(changeID, description)
	commit.PullRequestNumber = &number
	return commit
}
