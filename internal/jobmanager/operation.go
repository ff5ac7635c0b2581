package jobmanager

import "fmt"

// Operation is the kind of action a caller requests on a Job.
type Operation int

const (
	// OpStart runs a new process to completion under the Job.
	OpStart Operation = iota

	// OpStop is reserved for future process-termination support. Stopping a
	// running process is currently done out of band, by signalling the pid
	// reported in the Job's status.
	OpStop

	// OpStream reads the Job's combined output. Served by Job.Stream rather
	// than Job.Run.
	OpStream

	// OpStatus reads a snapshot of the Job's status. Served by Job.Status
	// rather than Job.Run.
	OpStatus
)

var operationNames = []string{
	"Start",
	"Stop",
	"Stream",
	"Status",
}

func (o Operation) String() string {
	if int(o) < 0 || int(o) >= len(operationNames) {
		return fmt.Sprintf("Unknown(%d)", int(o))
	}

	return operationNames[o]
}
