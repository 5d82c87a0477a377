package jj

import (
	"context"
	"fmt"
	"strings"

	"github.com/petr-tik/jj-spr/internal/config"
	"github.com/petr-tik/jj-spr/internal/message"
)

// recordSeparator terminates each commit record in the log template output.
const recordSeparator = "--jj-spr-commit--"

// logTemplate emits one record per commit: change ID, commit ID, parent
// commit IDs, then the free-form description up to the record separator.
const logTemplate = `change_id ++ "\n" ++ commit_id ++ "\n" ++ ` +
	`parents.map(|c| c.commit_id()).join(",") ++ "\n" ++ ` +
	`description ++ "` + recordSeparator + `\n"`

// Jujutsu is the commit stack provider backed by the jj binary.
type Jujutsu struct {
	runner *CommandRunner
}

// New creates a Jujutsu provider rooted at repoPath.
func New(repoPath string) *Jujutsu {
	return &Jujutsu{runner: NewCommandRunner(repoPath)}
}

// GetPreparedCommit resolves a single revision into a PreparedCommit.
func (j *Jujutsu) GetPreparedCommit(ctx context.Context, cfg *config.Config, revision string) (*PreparedCommit, error) {
	commits, err := j.log(ctx, cfg, revision)
	if err != nil {
		return nil, err
	}
	if len(commits) != 1 {
		return nil, fmt.Errorf("revision %q resolved to %d commits, expected exactly one",
			revision, len(commits))
	}
	return commits[0], nil
}

// GetPreparedCommits resolves a base/target range into an ordered list of
// PreparedCommits, parents first.
func (j *Jujutsu) GetPreparedCommits(ctx context.Context, cfg *config.Config, base, target string, inclusive bool) ([]*PreparedCommit, error) {
	operator := ".."
	if inclusive {
		operator = "::"
	}
	return j.log(ctx, cfg, base+operator+target)
}

// RewriteCommitMessages persists the messages of every commit whose
// MessageChanged flag is set, in one batched pass. Commits with the flag
// unset are skipped entirely so their change identifiers are preserved.
func (j *Jujutsu) RewriteCommitMessages(ctx context.Context, commits []*PreparedCommit) error {
	for _, commit := range commits {
		if !commit.MessageChanged {
			continue
		}
		text := commit.Message.Serialize()
		if _, err := j.runner.RunWithInput(ctx, text,
			"describe", "-r", commit.ChangeID, "--stdin"); err != nil {
			return fmt.Errorf("rewriting message of change %s: %w", commit.ChangeID, err)
		}
		commit.MessageChanged = false
	}
	return nil
}

func (j *Jujutsu) log(ctx context.Context, cfg *config.Config, revset string) ([]*PreparedCommit, error) {
	out, err := j.runner.RunRaw(ctx,
		"log", "--no-graph", "--reversed", "-r", revset, "-T", logTemplate)
	if err != nil {
		return nil, err
	}
	return parseLog(out, cfg)
}

// parseLog splits template output into PreparedCommits and resolves each
// commit's PR number from its Pull Request message section.
func parseLog(out string, cfg *config.Config) ([]*PreparedCommit, error) {
	var commits []*PreparedCommit

	for _, record := range strings.Split(out, recordSeparator+"\n") {
		if strings.TrimSpace(record) == "" {
			continue
		}

		parts := strings.SplitN(record, "\n", 4)
		if len(parts) < 3 {
			return nil, fmt.Errorf("malformed jj log record: %q", record)
		}
		description := ""
		if len(parts) == 4 {
			description = parts[3]
		}

		parentCommitID := parts[2]
		if i := strings.IndexByte(parentCommitID, ','); i >= 0 {
			parentCommitID = parentCommitID[:i]
		}

		sections := message.Parse(description)
		commit := &PreparedCommit{
			ChangeID:       strings.TrimSpace(parts[0]),
			CommitID:       strings.TrimSpace(parts[1]),
			ParentCommitID: strings.TrimSpace(parentCommitID),
			RawDescription: description,
			Message:        sections,
		}
		if cfg != nil {
			commit.PullRequestNumber = cfg.ParsePullRequestField(
				sections.Get(message.SectionPullRequest))
		}
		commits = append(commits, commit)
	}

	return commits, nil
}
