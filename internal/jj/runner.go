// Package jj wraps the Jujutsu command-line tool. It resolves revisions into
// prepared commit snapshots and writes commit messages back, and is the only
// component that touches the local repository.
package jj

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	sprerrors "github.com/petr-tik/jj-spr/internal/errors"
)

// DefaultCommandTimeout bounds every jj invocation.
const DefaultCommandTimeout = 2 * time.Minute

// CommandRunner executes jj commands in a fixed working directory.
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a CommandRunner rooted at dir. An empty dir means
// the process working directory.
func NewCommandRunner(dir string) *CommandRunner {
	return &CommandRunner{workingDir: dir}
}

// Run executes a jj command and returns trimmed stdout.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.run(ctx, "", true, args...)
}

// RunRaw executes a jj command and returns stdout without trimming. Used
// where trailing newlines are significant, such as log templates.
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.run(ctx, "", false, args...)
}

// RunWithInput executes a jj command feeding input on stdin.
func (r *CommandRunner) RunWithInput(ctx context.Context, input string, args ...string) (string, error) {
	return r.run(ctx, input, true, args...)
}

func (r *CommandRunner) run(ctx context.Context, input string, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "jj", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", sprerrors.NewCommandError("jj", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}
