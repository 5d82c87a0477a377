// Package errors provides sentinel errors and custom error types for jj-spr.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotAPullRequest indicates that a commit does not refer to a pull request
	ErrNotAPullRequest = errors.New("commit does not refer to a pull request")

	// ErrAlreadyClosed indicates that a pull request is already closed
	ErrAlreadyClosed = errors.New("pull request is already closed")

	// ErrInvalidRangeFormat indicates a malformed revision range expression
	ErrInvalidRangeFormat = errors.New("invalid revision range format")

	// ErrValidationFailed indicates that one or more commit messages failed validation
	ErrValidationFailed = errors.New("commit message validation failed")

	// ErrMissingRequiredSection indicates a required message section is absent or empty
	ErrMissingRequiredSection = errors.New("missing required message section")
)

// InvalidRangeFormatError reports a revision expression that is not a valid
// two-operand range.
type InvalidRangeFormatError struct {
	Expression string
	Operator   string
}

func (e *InvalidRangeFormatError) Error() string {
	return fmt.Sprintf("invalid revision range format: %s. Use 'base%starget' format",
		e.Expression, e.Operator)
}

// Is returns true if the target error is ErrInvalidRangeFormat
func (e *InvalidRangeFormatError) Is(target error) bool {
	return target == ErrInvalidRangeFormat
}

// NewInvalidRangeFormatError creates a new InvalidRangeFormatError
func NewInvalidRangeFormatError(expression, operator string) *InvalidRangeFormatError {
	return &InvalidRangeFormatError{Expression: expression, Operator: operator}
}

// MissingSectionError reports a commit message missing a required section.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("commit message is missing the %s section", e.Section)
}

// Is returns true if the target error is ErrMissingRequiredSection or
// ErrValidationFailed
func (e *MissingSectionError) Is(target error) bool {
	return target == ErrMissingRequiredSection || target == ErrValidationFailed
}

// NewMissingSectionError creates a new MissingSectionError
func NewMissingSectionError(section string) *MissingSectionError {
	return &MissingSectionError{Section: section}
}

// CommandError represents an error from an external command execution
// (jj or git).
type CommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s command failed", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(": %s %s", e.Command, strings.Join(e.Args, " "))
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// Accumulate folds err into result, keeping the first error encountered.
// Used by commands that must keep processing a batch after an individual
// failure.
func Accumulate(result *error, err error) {
	if *result == nil {
		*result = err
	}
}
