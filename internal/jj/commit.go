package jj

import (
	"github.com/petr-tik/jj-spr/internal/message"
)

// PreparedCommit is a snapshot of one local revision under processing. The
// synchronizer mutates Message and MessageChanged in memory; nothing reaches
// the repository until RewriteCommitMessages runs.
type PreparedCommit struct {
	// ChangeID is the stable identifier that survives rewrites.
	ChangeID string

	// CommitID is the content-addressed identifier; it changes on any rewrite.
	CommitID string

	// ParentCommitID is the first parent's commit identifier.
	ParentCommitID string

	// RawDescription is the commit's description exactly as stored.
	RawDescription string

	// Message holds the parsed commit message sections.
	Message message.Sections

	// MessageChanged marks the commit for persistence. Only commits with
	// this flag set are ever rewritten; all others keep their change ID
	// untouched.
	MessageChanged bool

	// PullRequestNumber is the PR already associated with this commit via
	// its Pull Request message section, if any.
	PullRequestNumber *int
}

// Title returns the commit's title section.
func (c *PreparedCommit) Title() string {
	return c.Message.Get(message.SectionTitle)
}
