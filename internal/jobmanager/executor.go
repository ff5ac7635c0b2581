package jobmanager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"golang.org/x/sync/errgroup"
)

// outputChunkSize is the upper limit on the size of chunks sent down the
// output channel.
const outputChunkSize = 1024

// Executor spawns processes in a fixed working directory and relays their
// pid, combined output, and termination outcome back to the caller.
type Executor struct {
	workDir string
}

// NewExecutor creates an Executor that runs every process with its working
// directory set to workDir.
func NewExecutor(workDir string) *Executor {
	return &Executor{workDir: workDir}
}

// Execute spawns a process for program and args, with no shell
// interpretation, and runs it to completion.
//
// The pid of the spawned process is sent on pids as soon as it is known.
// Output is read from the stdout and stderr pipes by two concurrent relay
// loops and forwarded to out in chunks of up to outputChunkSize bytes. Each
// pipe's chunks arrive in the order the process wrote them; the interleaving
// of stdout chunks with stderr chunks is unspecified.
//
// Both channels are closed before Execute returns, whatever the result. The
// returned Outcome reports how the process terminated: an exit code, or the
// signal that killed it.
func (e *Executor) Execute(
	ctx context.Context,
	program string,
	args []string,
	pids chan<- int,
	out chan<- []byte,
) (Outcome, error) {
	defer close(out)
	defer close(pids)

	cmd := exec.Command(program, args...)
	cmd.Dir = e.workDir

	// Pipes have to be requested before the process starts; stdout and
	// stderr are always captured, never inherited.
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Outcome{}, &StreamSetupError{Stream: "stdout", Err: err}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Outcome{}, &StreamSetupError{Stream: "stderr", Err: err}
	}

	if err := cmd.Start(); err != nil {
		return Outcome{}, &SpawnError{Program: program, Err: err}
	}

	select {
	case pids <- cmd.Process.Pid:
	case <-ctx.Done():
		e.reap(cmd)
		return Outcome{}, &ChannelError{Stage: "pid"}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return relay(gctx, stdout, out)
	})

	g.Go(func() error {
		return relay(gctx, stderr, out)
	})

	if err := g.Wait(); err != nil {
		e.reap(cmd)
		return Outcome{}, err
	}

	if err := cmd.Wait(); err != nil {
		// An ExitError means the process ran and terminated abnormally,
		// which is a job outcome, not an execution failure.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Outcome{}, fmt.Errorf("failed to wait for process: %w", err)
		}
	}

	return outcomeFromState(cmd.ProcessState)
}

// reap kills and waits on the process after a relay failure so it isn't left
// behind as a zombie.
func (e *Executor) reap(cmd *exec.Cmd) {
	_ = cmd.Process.Kill()
	_ = cmd.Wait()
}

// relay reads r in fixed-size chunks and forwards every non-empty chunk, in
// the order read, to out. A read returning end-of-stream ends the loop; no
// further chunks are sent from this relay afterwards.
func relay(ctx context.Context, r io.Reader, out chan<- []byte) error {
	buf := make([]byte, outputChunkSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			// The read buffer is reused, so the chunk has to be copied
			// before it crosses the channel.
			chunk := make([]byte, n)
			copy(chunk, buf[:n])

			select {
			case out <- chunk:
			case <-ctx.Done():
				return &ChannelError{Stage: "output"}
			}
		}

		if err != nil {
			if err == io.EOF {
				return nil
			}

			return fmt.Errorf("failed to read process output: %w", err)
		}
	}
}
