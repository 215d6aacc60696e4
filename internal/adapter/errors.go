package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRemoteUnreachable is returned when the remote cannot be contacted:
	// transport errors, timeouts, failed fetches and 5xx responses.
	ErrRemoteUnreachable = errors.New("remote unreachable")
	// ErrCommandFailed is returned when a local repository command fails.
	ErrCommandFailed = errors.New("repository command failed")
	// ErrConflict is returned for 409 and 412 responses.
	ErrConflict = errors.New("remote changed concurrently")
	// ErrNotFound is returned when a remote file does not exist.
	ErrNotFound = errors.New("remote file not found")
	// ErrBadRequest is returned for 400 responses.
	ErrBadRequest = errors.New("bad request")
	// ErrForbidden is returned for 401 and 403 responses.
	ErrForbidden = errors.New("access to remote denied")
	// ErrInvalidDocument is returned when the remote record is not valid JSON.
	ErrInvalidDocument = errors.New("remote record is malformed")
	// ErrNothingStaged is returned by Push when no candidate was staged.
	ErrNothingStaged = errors.New("no staged candidate to push")
)

// CommandError carries the diagnostics of a failed external command.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s: %v", strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", strings.Join(e.Args, " "), e.Err, msg)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
