// Package git performs the remote branch mutations the workflow needs: force
// pushes of commit snapshots to head branches and best-effort deletion of
// retired branches. Local ref enumeration goes through go-git; pushes shell
// out to git so the user's credential helpers and hooks configuration apply.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"

	sprerrors "github.com/petr-tik/jj-spr/internal/errors"
)

// DefaultCommandTimeout bounds every git invocation.
const DefaultCommandTimeout = 5 * time.Minute

// Repo wraps one local repository for remote branch operations.
type Repo struct {
	workingDir string
}

// Open creates a Repo rooted at dir.
func Open(dir string) *Repo {
	return &Repo{workingDir: dir}
}

// ExistingRefNames returns the set of fully qualified ref names known to the
// local repository. The branch namer probes candidate names against this set.
func (r *Repo) ExistingRefNames() (map[string]struct{}, error) {
	repo, err := gogit.PlainOpenWithOptions(r.workingDir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}

	refs, err := repo.References()
	if err != nil {
		return nil, err
	}
	defer refs.Close()

	names := map[string]struct{}{}
	for {
		ref, err := refs.Next()
		if err != nil {
			break
		}
		names[ref.Name().String()] = struct{}{}
	}
	return names, nil
}

// PushCommit force-pushes a commit to a branch on the remote, creating or
// moving refs/heads/<branch> there.
func (r *Repo) PushCommit(ctx context.Context, remote, commitID, branchName string) error {
	refspec := commitID + ":refs/heads/" + branchName
	_, err := r.run(ctx, "push", "--no-verify", "--force", "--", remote, refspec)
	return err
}

// DeleteRemoteBranch asynchronously deletes a branch on the remote. The
// returned wait function joins the push process and reports its error; the
// caller decides whether failure matters (GitHub may have auto-deleted the
// branch already).
func (r *Repo) DeleteRemoteBranch(ctx context.Context, remote, branchName string) (wait func() error, err error) {
	cmd := exec.CommandContext(ctx, "git",
		"push", "--no-verify", "--delete", "--", remote, branchName)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd.Wait, nil
}

func (r *Repo) run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", sprerrors.NewCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
