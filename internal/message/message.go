// Package message implements the structured commit-message format used to
// carry review metadata inside commit text. A message is an ordered set of
// sections: a bare title line, an optional bare summary block, and headered
// trailing sections such as "Test Plan:" or "Pull Request:".
package message

import (
	"strings"

	"github.com/petr-tik/jj-spr/internal/errors"
)

// Section identifies one of the fixed commit-message sections.
type Section int

// The fixed section vocabulary, in canonical serialization order.
const (
	SectionTitle Section = iota
	SectionSummary
	SectionTestPlan
	SectionReviewers
	SectionReviewedBy
	SectionPullRequest
)

// canonicalOrder fixes iteration and serialization order regardless of the
// order sections were parsed or set in.
var canonicalOrder = []Section{
	SectionTitle,
	SectionSummary,
	SectionTestPlan,
	SectionReviewers,
	SectionReviewedBy,
	SectionPullRequest,
}

// String returns the section's canonical header name.
func (s Section) String() string {
	switch s {
	case SectionTitle:
		return "Title"
	case SectionSummary:
		return "Summary"
	case SectionTestPlan:
		return "Test Plan"
	case SectionReviewers:
		return "Reviewers"
	case SectionReviewedBy:
		return "Reviewed-By"
	case SectionPullRequest:
		return "Pull Request"
	}
	return "Unknown"
}

// headerAliases maps lowercase header names to sections. Parsing is
// case-insensitive and accepts the singular "reviewer" alias.
var headerAliases = map[string]Section{
	"summary":      SectionSummary,
	"test plan":    SectionTestPlan,
	"reviewer":     SectionReviewers,
	"reviewers":    SectionReviewers,
	"reviewed-by":  SectionReviewedBy,
	"pull request": SectionPullRequest,
}

// Sections is a mapping from section kind to text content. Iteration follows
// canonical section order, not insertion order.
type Sections map[Section]string

// Parse splits raw commit text into sections. Leading unheadered text is
// assigned per the default-section rule: the first line becomes the Title and
// any further text before the first recognized header becomes the Summary.
func Parse(text string) Sections {
	return ParseWithDefault(text, SectionTitle)
}

// ParseWithDefault parses text, assigning leading unheadered content to the
// given default section.
func ParseWithDefault(text string, defaultSection Section) Sections {
	buffers := map[Section][]string{}
	current := defaultSection

	for _, line := range strings.Split(text, "\n") {
		if section, rest, ok := matchHeader(line); ok {
			current = section
			if strings.TrimSpace(rest) != "" {
				buffers[current] = append(buffers[current], strings.TrimSpace(rest))
			}
			continue
		}

		// The title is a single line; any following leading text belongs
		// to the summary.
		if current == SectionTitle && len(buffers[SectionTitle]) > 0 {
			current = SectionSummary
		}

		buffers[current] = append(buffers[current], line)
	}

	sections := Sections{}
	for section, lines := range buffers {
		content := strings.TrimSpace(strings.Join(lines, "\n"))
		if content != "" {
			sections[section] = content
		}
	}
	return sections
}

// matchHeader reports whether a line starts a recognized section, returning
// the section and any content following the colon on the same line.
func matchHeader(line string) (Section, string, bool) {
	name, rest, found := strings.Cut(line, ":")
	if !found {
		return 0, "", false
	}
	section, ok := headerAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, "", false
	}
	return section, rest, true
}

// Serialize renders the sections in canonical order. The title and summary
// are emitted bare; all other sections carry their header. Serializing a
// parsed map and re-parsing it yields an equal map.
func (s Sections) Serialize() string {
	var blocks []string

	for _, section := range canonicalOrder {
		content, ok := s[section]
		if !ok || content == "" {
			continue
		}
		switch section {
		case SectionTitle, SectionSummary:
			blocks = append(blocks, content)
		default:
			blocks = append(blocks, section.String()+": "+content)
		}
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

// Validate checks presence rules. A message without a non-empty title is
// rejected.
func (s Sections) Validate() error {
	if strings.TrimSpace(s[SectionTitle]) == "" {
		return errors.NewMissingSectionError(SectionTitle.String())
	}
	return nil
}

// Get returns the content of a section, or the empty string.
func (s Sections) Get(section Section) string {
	return s[section]
}

// Set stores content for a section, deleting it when content is empty.
func (s Sections) Set(section Section, content string) {
	if content == "" {
		delete(s, section)
		return
	}
	s[section] = content
}

// Remove deletes a section. Removal is a pure map operation; nothing is
// persisted until the owning commit is rewritten.
func (s Sections) Remove(section Section) {
	delete(s, section)
}

// Clone returns an independent copy of the section map.
func (s Sections) Clone() Sections {
	clone := make(Sections, len(s))
	for section, content := range s {
		clone[section] = content
	}
	return clone
}
