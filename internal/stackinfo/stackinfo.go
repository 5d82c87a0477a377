// Package stackinfo computes a commit's position within a stack of pull
// requests and renders the markdown banner embedded in PR descriptions.
package stackinfo

import (
	"fmt"
	"strings"

	"github.com/petr-tik/jj-spr/internal/message"
)

// CommitEntry pairs a commit's optional PR number with its message sections.
// The synchronizer passes the full working set in stack order.
type CommitEntry struct {
	PullRequestNumber *int
	Message           message.Sections
}

// Position describes where a PR sits in its stack.
type Position struct {
	// Current is the 1-indexed position among PR-bearing commits.
	Current int
	// Total is the number of PR-bearing commits in the stack.
	Total int
	// ParentPR is the nearest preceding PR-bearing commit's PR number.
	ParentPR *int
	// ChildPRs lists every subsequent PR-bearing commit's PR number.
	ChildPRs []int
}

// Repo identifies the repository PR links are rendered against.
type Repo struct {
	Owner string
	Name  string
}

// DetectPosition computes the stack position of the commit at currentIndex.
// It returns nil when fewer than two commits carry PR numbers: a single-PR
// stack needs no dependency banner. Commits without a PR number do not count
// toward the total and never appear as parent or child.
func DetectPosition(currentIndex int, commits []CommitEntry) *Position {
	type indexed struct {
		index int
		pr    int
	}

	var withPRs []indexed
	for i, commit := range commits {
		if commit.PullRequestNumber != nil {
			withPRs = append(withPRs, indexed{index: i, pr: *commit.PullRequestNumber})
		}
	}

	if len(withPRs) <= 1 {
		return nil
	}

	stackIndex := -1
	for i, entry := range withPRs {
		if entry.index == currentIndex {
			stackIndex = i
			break
		}
	}
	if stackIndex == -1 {
		return nil
	}

	position := &Position{
		Current: stackIndex + 1,
		Total:   len(withPRs),
	}
	if stackIndex > 0 {
		parent := withPRs[stackIndex-1].pr
		position.ParentPR = &parent
	}
	for _, entry := range withPRs[stackIndex+1:] {
		position.ChildPRs = append(position.ChildPRs, entry.pr)
	}
	return position
}

// BuildText renders the stack banner: a horizontal rule, the position line,
// optional "Depends on" and "Required for" lines, a numbered full-stack
// listing marking the current entry, and a closing rule. Each run regenerates
// the block wholesale so it is idempotently replaceable.
func BuildText(position *Position, repo Repo, commits []CommitEntry) string {
	var text strings.Builder

	text.WriteString("---\n")
	fmt.Fprintf(&text, "**Stack Position: %d of %d**\n\n", position.Current, position.Total)

	if position.ParentPR != nil {
		fmt.Fprintf(&text, "⬆️ **Depends on:** %s/%s#%d%s\n",
			repo.Owner, repo.Name, *position.ParentPR, titleSuffix(commits, *position.ParentPR))
	}

	if len(position.ChildPRs) > 0 {
		text.WriteString("⬇️ **Required for:**")
		for _, childPR := range position.ChildPRs {
			fmt.Fprintf(&text, " %s/%s#%d%s",
				repo.Owner, repo.Name, childPR, titleSuffix(commits, childPR))
		}
		text.WriteString("\n")
	}

	if position.Total > 1 {
		text.WriteString("\n**Full Stack:**\n")

		num := 0
		for _, commit := range commits {
			if commit.PullRequestNumber == nil {
				continue
			}
			num++
			indicator := ""
			if num == position.Current {
				indicator = " (this PR)"
			}
			title := ""
			if t := commit.Message.Get(message.SectionTitle); t != "" {
				title = " - " + t
			}
			fmt.Fprintf(&text, "%d. %s/%s#%d%s%s\n",
				num, repo.Owner, repo.Name, *commit.PullRequestNumber, title, indicator)
		}
	}

	text.WriteString("\n---")

	return text.String()
}

// titleSuffix looks up the title of the commit holding the given PR number,
// formatted for appending to a PR link.
func titleSuffix(commits []CommitEntry, prNumber int) string {
	for _, commit := range commits {
		if commit.PullRequestNumber != nil && *commit.PullRequestNumber == prNumber {
			if title := commit.Message.Get(message.SectionTitle); title != "" {
				return " - " + title
			}
			return ""
		}
	}
	return ""
}
