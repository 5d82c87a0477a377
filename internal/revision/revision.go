// Package revision resolves user-supplied revision expressions into a single
// target revision or a base/target range.
package revision

import (
	"strings"

	"github.com/petr-tik/jj-spr/internal/errors"
)

const (
	// DefaultRevision is used when no revision is specified. It refers to the
	// parent of the working copy: the workflow operates on finished work, not
	// on the revision currently being edited.
	DefaultRevision = "@-"

	// DefaultBase is the base revision used in --all mode when no base is given.
	DefaultBase = "trunk()"

	exclusiveOperator = ".."
	inclusiveOperator = "::"
)

// Range is the result of resolving a revision expression.
type Range struct {
	// IsRange is true when a base..target (or base::target) span was selected.
	IsRange bool

	// Base is the base revision of the range; empty in single-revision mode.
	Base string

	// Target is the revision the command operates on (or up to, for ranges).
	Target string

	// Inclusive is true when the :: operator was used, meaning the base
	// revision itself is part of the working set.
	Inclusive bool
}

// Resolve parses a revision expression together with the --all and --base
// flags. Explicit range syntax in the revision always overrides allFlag.
func Resolve(revisionExpr string, allFlag bool, baseExpr string) (Range, error) {
	revision := revisionExpr
	if revision == "" {
		revision = DefaultRevision
	}

	switch {
	case strings.Contains(revision, exclusiveOperator):
		return splitRange(revision, exclusiveOperator, false)

	case strings.Contains(revision, inclusiveOperator):
		return splitRange(revision, inclusiveOperator, true)

	case allFlag:
		base := baseExpr
		if base == "" {
			base = DefaultBase
		}
		return Range{IsRange: true, Base: base, Target: revision}, nil

	default:
		return Range{Target: revision}, nil
	}
}

func splitRange(revision, operator string, inclusive bool) (Range, error) {
	parts := strings.Split(revision, operator)
	if len(parts) != 2 {
		return Range{}, errors.NewInvalidRangeFormatError(revision, operator)
	}
	return Range{
		IsRange:   true,
		Base:      parts[0],
		Target:    parts[1],
		Inclusive: inclusive,
	}, nil
}
