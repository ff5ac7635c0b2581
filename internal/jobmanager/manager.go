package jobmanager

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"syscall"

	"github.com/google/uuid"

	"github.com/runlet/runlet/internal/metrics"
)

// Manager is responsible for creating and tracking Jobs.
type Manager struct {
	// NOTE: The jobs map grows unbounded with no way to remove items. Since
	// the stated assumption is 'everything will fit in memory', that's fine.
	// In a real system, we'd want a means to remove items and potentially a
	// cleanup job running in a background goroutine.
	jobs     map[string]*Job
	executor *Executor
	logger   *slog.Logger

	mu sync.Mutex
}

// NewManager creates a Manager whose Jobs all run their processes under
// workDir.
func NewManager(workDir string, logger *slog.Logger) *Manager {
	return &Manager{
		jobs:     make(map[string]*Job),
		executor: NewExecutor(workDir),
		logger:   logger,
	}
}

// StartJob creates a new Job for program and args and blocks until its
// process is running, or until starting it has failed. On success it returns
// the Job's unique ID and the pid of the spawned process.
//
// The Job's execution continues on a background goroutine after StartJob
// returns; it is not tied to the lifetime of ctx's request.
func (m *Manager) StartJob(ctx context.Context, program string, args []string) (string, int, error) {
	id := uuid.NewString()
	job := NewJob(id, m.executor, m.logger)

	runErr := make(chan error, 1)

	go func() {
		err := job.Run(context.WithoutCancel(ctx), program, args, OpStart)
		if err != nil {
			m.logger.Error("job run failed", "id", id, "err", err)
			metrics.JobFailed()
		} else {
			st := job.Status()
			m.logger.Info("job finished", "id", id, "status", st.String())

			if st.State == StateSignaled {
				metrics.JobCompleted("signal")
			} else {
				metrics.JobCompleted("exit_code")
			}
			metrics.AddOutputBytes(job.output.Len())
		}

		runErr <- err
	}()

	select {
	case <-job.Running():
	case err := <-runErr:
		if err != nil {
			return "", 0, err
		}
		// The process ran to completion before the running transition was
		// observed here; the job is still registered below.
	}

	m.mu.Lock()
	m.jobs[id] = job
	m.mu.Unlock()

	metrics.JobStarted()

	pid, _ := job.PID()

	return id, pid, nil
}

// JobStatus returns the status of the Job with the given id, or
// ErrJobNotFound if it doesn't exist.
func (m *Manager) JobStatus(id string) (Status, error) {
	job, err := m.GetJob(id)
	if err != nil {
		return Status{}, err
	}

	return job.Status(), nil
}

// StreamJobOutput returns an io.ReadCloser of combined output from the Job
// with the given id, or ErrJobNotFound if it doesn't exist.
//
// Read returns all output since the Job started and blocks waiting for new
// output until the Job has terminated and been fully drained.
func (m *Manager) StreamJobOutput(id string) (io.ReadCloser, error) {
	job, err := m.GetJob(id)
	if err != nil {
		return nil, err
	}

	return job.Stream(), nil
}

// GetJob returns the Job with the given id, or ErrJobNotFound if it doesn't
// exist.
func (m *Manager) GetJob(id string) (*Job, error) {
	m.mu.Lock()
	job, exists := m.jobs[id]
	m.mu.Unlock()

	if !exists {
		return nil, ErrJobNotFound
	}

	return job, nil
}

// Shutdown makes a 'best effort' attempt to terminate any running Jobs and
// waits for their execution paths to finish. The engine has no stop
// operation, so termination goes out of band: SIGKILL to the pid each Job
// reported when it started.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	jobs := slices.Collect(maps.Values(m.jobs))
	m.mu.Unlock()

	var wg sync.WaitGroup

	for _, job := range jobs {
		if !job.Status().Running() {
			continue
		}

		pid, ok := job.PID()
		if !ok {
			continue
		}

		wg.Go(func() {
			// Ignoring the error: the process may have exited between the
			// status check and the kill.
			_ = syscall.Kill(pid, syscall.SIGKILL)

			<-job.Done()
		})
	}

	wg.Wait()
}
