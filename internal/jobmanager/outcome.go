package jobmanager

import (
	"fmt"
	"os"
	"syscall"
)

// Outcome is the terminal result of one process execution: an exit code or
// the signal that terminated the process, never both.
type Outcome struct {
	Code     int
	Signal   syscall.Signal
	Signaled bool
}

func exitOutcome(code int) Outcome {
	return Outcome{Code: code}
}

func signalOutcome(sig syscall.Signal) Outcome {
	return Outcome{Signal: sig, Signaled: true}
}

func (o Outcome) String() string {
	if o.Signaled {
		return fmt.Sprintf("signal %d (%s)", int(o.Signal), o.Signal)
	}

	return fmt.Sprintf("exit code %d", o.Code)
}

// outcomeFromState derives the Outcome from the wait status of an exited
// process. ErrIncompleteJob is returned if the wait status reports neither
// an exit nor a terminating signal.
func outcomeFromState(ps *os.ProcessState) (Outcome, error) {
	if ps == nil {
		return Outcome{}, ErrIncompleteJob
	}

	ws, ok := ps.Sys().(syscall.WaitStatus)
	if !ok {
		return Outcome{}, ErrIncompleteJob
	}

	if ws.Signaled() {
		return signalOutcome(ws.Signal()), nil
	}

	if ws.Exited() {
		return exitOutcome(ws.ExitStatus()), nil
	}

	return Outcome{}, ErrIncompleteJob
}
