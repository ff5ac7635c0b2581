package jobmanager

import (
	"fmt"
	"syscall"
)

type State int

const (
	// StateUnstarted indicates the Job has been created but no process has
	// been spawned for it yet.
	StateUnstarted State = iota

	// StateRunning indicates the process has been spawned and its pid is
	// known. The Job stays in StateRunning until the process exits.
	StateRunning

	// StateExited indicates the process exited on its own with an exit code.
	StateExited

	// StateSignaled indicates the process was terminated by a signal.
	StateSignaled
)

// NOTE: This slice needs to be kept in sync with any changes to the State
// values.
var stateNames = []string{
	"Unstarted",
	"Running",
	"Exited",
	"Signaled",
}

func (s State) String() string {
	if int(s) < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("Unknown(%d)", int(s))
	}

	return stateNames[s]
}

// Status is a point-in-time snapshot of a Job's lifecycle stage. ExitCode is
// only meaningful when State is StateExited, and Signal only when State is
// StateSignaled.
type Status struct {
	State    State
	ExitCode int
	Signal   syscall.Signal
}

// Running returns whether the underlying process is currently executing.
func (s Status) Running() bool {
	return s.State == StateRunning
}

// Terminal returns whether the Job has reached a final state. A terminal
// Status never changes again.
func (s Status) Terminal() bool {
	return s.State == StateExited || s.State == StateSignaled
}

func (s Status) String() string {
	switch s.State {
	case StateExited:
		return fmt.Sprintf("Exited(%d)", s.ExitCode)
	case StateSignaled:
		return fmt.Sprintf("Signaled(%d)", int(s.Signal))
	default:
		return s.State.String()
	}
}

// statusFromOutcome maps a terminal execution Outcome to the Status a Job
// settles in.
func statusFromOutcome(o Outcome) Status {
	if o.Signaled {
		return Status{State: StateSignaled, Signal: o.Signal}
	}

	return Status{State: StateExited, ExitCode: o.Code}
}
