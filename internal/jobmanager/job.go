package jobmanager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/runlet/runlet/internal/jobmanager/output"
)

// Job owns the mutable lifecycle state of one process execution: pid, status,
// and accumulated output. It drives an Executor run to completion on a
// background goroutine and keeps that state safely observable to any number
// of concurrently streaming consumers.
//
// A Job is single-use. Running a new command requires a new Job.
type Job struct {
	id       string
	executor *Executor
	logger   *slog.Logger

	// status, output, and pid are guarded independently. A reader combining
	// them can observe one slightly ahead of another; stream readers tolerate
	// this because the output buffer is only closed after the final append.
	mu     sync.Mutex
	status Status

	output *output.Buffer
	pid    atomic.Int64

	started atomic.Bool
	running chan struct{}
	done    chan struct{}
}

// NewJob creates a Job with the given id that will execute its process via
// executor.
func NewJob(id string, executor *Executor, logger *slog.Logger) *Job {
	return &Job{
		id:       id,
		executor: executor,
		logger:   logger,
		output:   output.NewBuffer(),
		running:  make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run performs op on the Job. Only OpStart executes anything: it spawns the
// process on a background goroutine, records the pid and the transition to
// StateRunning as soon as the pid is known, appends every output chunk to the
// Job's output, and records the terminal status once the process exits.
//
// Run blocks until the background execution path has fully completed, even
// though the output it appends is observable to concurrent Stream readers
// throughout. Running a Job that has already been started returns an
// InvalidStateError; a Job is never reused across executions.
func (j *Job) Run(ctx context.Context, program string, args []string, op Operation) error {
	if op != OpStart {
		return &UnsupportedOperationError{Op: op}
	}

	if program == "" {
		return errors.New("program cannot be empty")
	}

	if !j.started.CompareAndSwap(false, true) {
		return NewInvalidStateError(j.Status().State, StateRunning)
	}

	pids := make(chan int, 1)
	chunks := make(chan []byte)

	type result struct {
		outcome Outcome
		err     error
	}

	results := make(chan result, 1)

	go func() {
		defer func() {
			// A panic on the execution path must still resolve Run, not
			// crash the whole server.
			if v := recover(); v != nil {
				results <- result{err: &JoinError{Value: v}}
			}
		}()

		outcome, err := j.executor.Execute(ctx, program, args, pids, chunks)

		results <- result{outcome: outcome, err: err}
	}()

	// The pid channel closes without a send if the spawn itself failed.
	if pid, ok := <-pids; ok {
		j.pid.Store(int64(pid))
		j.setStatus(Status{State: StateRunning})
		close(j.running)

		j.logger.Debug("job running", "id", j.id, "pid", pid)
	}

	for chunk := range chunks {
		j.output.Append(chunk)
	}

	res := <-results
	if res.err != nil {
		// The status is left as-is: a Job that never reaches a terminal
		// status is failed and must not be mistaken for a clean exit.
		j.output.CloseWithError(fmt.Errorf("job execution failed: %w", res.err))
		close(j.done)

		return res.err
	}

	j.setStatus(statusFromOutcome(res.outcome))
	j.output.Close()
	close(j.done)

	j.logger.Debug("job finished", "id", j.id, "outcome", res.outcome.String())

	return nil
}

// ID returns the ID of the Job.
func (j *Job) ID() string {
	return j.id
}

// Status returns a snapshot of the Job's status.
func (j *Job) Status() Status {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.status
}

func (j *Job) setStatus(s Status) {
	j.mu.Lock()
	j.status = s
	j.mu.Unlock()
}

// PID returns the pid of the Job's process and whether it is known yet. The
// pid is set exactly once, when the Job transitions to StateRunning, and
// remains readable after the process has exited.
func (j *Job) PID() (int, bool) {
	pid := j.pid.Load()

	return int(pid), pid != 0
}

// Stream returns an io.ReadCloser over the Job's combined output, from the
// beginning. Read blocks waiting for new output while the job is running,
// drains whatever remains once the job has terminated, and then returns
// io.EOF, or the run failure if the execution path failed. Every subscriber
// re-reads from offset 0; reads never block the Job's own execution path.
func (j *Job) Stream() io.ReadCloser {
	return j.output.Subscribe()
}

// Running returns a channel that is closed once the process has been spawned
// and the Job has transitioned to StateRunning. It never closes if the spawn
// fails.
func (j *Job) Running() <-chan struct{} {
	return j.running
}

// Done returns a channel that is closed when the Job has completed and the
// background execution path has fully finished, successfully or not.
func (j *Job) Done() <-chan struct{} {
	return j.done
}
