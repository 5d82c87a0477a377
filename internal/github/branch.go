package github

import (
	"fmt"
	"strings"
)

// Branch is a GitHub branch seen from the local repository. It distinguishes
// the plain branch name (what GitHub sees) from the local and remote-tracking
// ref forms, and knows whether it is the master branch.
type Branch struct {
	name      string
	localRef  string
	remoteRef string
	isMaster  bool
}

// NewBranch builds a Branch from a bare branch name.
func NewBranch(name, remote, masterBranch string) Branch {
	return Branch{
		name:      name,
		localRef:  "refs/heads/" + name,
		remoteRef: fmt.Sprintf("refs/remotes/%s/%s", remote, name),
		isMaster:  name == masterBranch,
	}
}

// NewBranchFromRef builds a Branch from a fully qualified ref, accepting
// local (refs/heads/...) and remote-qualified (refs/remotes/<remote>/...)
// forms.
func NewBranchFromRef(ref, remote, masterBranch string) (Branch, error) {
	if name, ok := strings.CutPrefix(ref, "refs/heads/"); ok {
		return NewBranch(name, remote, masterBranch), nil
	}
	if rest, ok := strings.CutPrefix(ref, "refs/remotes/"+remote+"/"); ok {
		return NewBranch(rest, remote, masterBranch), nil
	}
	return Branch{}, fmt.Errorf("cannot parse %q as a branch ref for remote %q", ref, remote)
}

// Name returns the branch name as it appears on GitHub.
func (b Branch) Name() string {
	return b.name
}

// LocalRef returns the refs/heads/ form.
func (b Branch) LocalRef() string {
	return b.localRef
}

// RemoteRef returns the refs/remotes/<remote>/ form.
func (b Branch) RemoteRef() string {
	return b.remoteRef
}

// IsMasterBranch reports whether this is the configured master branch.
func (b Branch) IsMasterBranch() bool {
	return b.isMaster
}
