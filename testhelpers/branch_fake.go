package testhelpers

import (
	"context"
	"fmt"
)

// PushRecord is one recorded push of a commit snapshot to a remote branch.
type PushRecord struct {
	Remote   string
	CommitID string
	Branch   string
}

// FakeBranchStore is an in-memory BranchStore. Pushes register the branch's
// remote-tracking ref so a later ExistingRefNames (or branch-name probe)
// sees it, mirroring how a real push updates the tracking ref.
type FakeBranchStore struct {
	Refs    map[string]struct{}
	Pushed  []PushRecord
	Deleted []string

	// PushErr, when set, fails every PushCommit call.
	PushErr error
}

// NewFakeBranchStore creates a store seeded with the given remote ref names.
func NewFakeBranchStore(refs ...string) *FakeBranchStore {
	store := &FakeBranchStore{Refs: make(map[string]struct{})}
	for _, ref := range refs {
		store.Refs[ref] = struct{}{}
	}
	return store
}

// ExistingRefNames implements BranchStore.
func (f *FakeBranchStore) ExistingRefNames() (map[string]struct{}, error) {
	copied := make(map[string]struct{}, len(f.Refs))
	for ref := range f.Refs {
		copied[ref] = struct{}{}
	}
	return copied, nil
}

// PushCommit implements BranchStore.
func (f *FakeBranchStore) PushCommit(ctx context.Context, remote, commitID, branchName string) error {
	if f.PushErr != nil {
		return f.PushErr
	}
	f.Pushed = append(f.Pushed, PushRecord{Remote: remote, CommitID: commitID, Branch: branchName})
	f.Refs[fmt.Sprintf("refs/remotes/%s/%s", remote, branchName)] = struct{}{}
	return nil
}

// DeleteRemoteBranch implements BranchStore.
func (f *FakeBranchStore) DeleteRemoteBranch(ctx context.Context, remote, branchName string) (func() error, error) {
	return func() error {
		f.Deleted = append(f.Deleted, branchName)
		return nil
	}, nil
}
