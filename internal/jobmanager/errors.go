package jobmanager

import (
	"errors"
	"fmt"
)

var (
	ErrJobNotFound = errors.New("job not found")

	// ErrIncompleteJob is returned when the execution path ends without ever
	// resolving an exit code or a terminating signal for the process.
	ErrIncompleteJob = errors.New("job finished without an exit code or signal")
)

// InvalidStateError is returned when attempting an invalid Job state
// transition, e.g. starting a Job that has already been started.
type InvalidStateError struct {
	from State
	to   State
}

func (e InvalidStateError) Error() string {
	return fmt.Sprintf("cannot go from %s to %s", e.from, e.to)
}

func NewInvalidStateError(from, to State) InvalidStateError {
	return InvalidStateError{from, to}
}

// SpawnError is returned when the OS refuses to create the process, e.g. the
// executable doesn't exist or isn't executable.
type SpawnError struct {
	Program string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn %q: %v", e.Program, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// StreamSetupError is returned when the stdout or stderr pipe for the
// process cannot be obtained.
type StreamSetupError struct {
	Stream string
	Err    error
}

func (e *StreamSetupError) Error() string {
	return fmt.Sprintf("failed to set up %s stream: %v", e.Stream, e.Err)
}

func (e *StreamSetupError) Unwrap() error {
	return e.Err
}

// ChannelError is returned when the receiving side of an internal delivery
// channel went away (context cancelled) while a pid or output chunk was
// waiting to be sent. It aborts the relevant relay loop.
type ChannelError struct {
	Stage string
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("receiver gone while delivering %s", e.Stage)
}

// JoinError is returned when the background execution path could not be
// completed cleanly, i.e. it panicked instead of returning.
type JoinError struct {
	Value any
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("execution goroutine panicked: %v", e.Value)
}

// UnsupportedOperationError is returned when an Operation other than OpStart
// is passed to Job.Run.
type UnsupportedOperationError struct {
	Op Operation
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("operation %s cannot be run on a job", e.Op)
}
