package actions

import (
	"context"

	"github.com/petr-tik/jj-spr/internal/config"
	"github.com/petr-tik/jj-spr/internal/errors"
	"github.com/petr-tik/jj-spr/internal/output"
)

// Format validates every commit message in the working set and rewrites the
// ones whose canonical serialization differs from what is stored. No remote
// interaction. A validation failure marks the run failed but does not block
// writing the other commits.
func Format(ctx context.Context, opts Options, provider StackProvider, cfg *config.Config, splog *output.Splog) error {
	commits, err := resolveStack(ctx, opts, provider, cfg)
	if err != nil {
		return err
	}
	if emptyStack(splog, commits) {
		return nil
	}

	failure := false
	for _, commit := range commits {
		splog.CommitTitle(commit.Title())

		if err := commit.Message.Validate(); err != nil {
			splog.Error("%v", err)
			failure = true
		}

		if commit.Message.Serialize() != commit.RawDescription {
			commit.MessageChanged = true
		}
	}

	if err := provider.RewriteCommitMessages(ctx, commits); err != nil {
		return err
	}

	if failure {
		return errors.ErrValidationFailed
	}
	return nil
}
