//go:build e2e

package e2e_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/runlet/runlet/internal/testcert"
)

const serverPort = "8443"

type testEnv struct {
	binDir     string
	certs      *testcert.Bundle
	workDir    string
	serverCmd  *exec.Cmd
	cliPath    string
	serverPath string
}

// NOTE: Relative paths are used to determine the source locations to build
// the CLI and server binaries. Running this test from anywhere that breaks
// those relative paths will not work.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		binDir:  t.TempDir(),
		workDir: t.TempDir(),
	}

	env.serverPath = filepath.Join(env.binDir, "jobserver")

	buildServer := exec.Command(
		"go",
		"build",
		"-o",
		env.serverPath,
		"../cmd/jobserver",
	)

	if output, err := buildServer.CombinedOutput(); err != nil {
		t.Fatalf(
			"failed to build server binary: '%v' (output: '%s')",
			err,
			output,
		)
	}

	env.cliPath = filepath.Join(env.binDir, "jobctl")

	buildCLI := exec.Command("go", "build", "-o", env.cliPath, "../cmd/jobctl")

	if output, err := buildCLI.CombinedOutput(); err != nil {
		t.Fatalf("failed to build CLI binary: '%v' (output: '%s')", err, output)
	}

	certs, err := testcert.Generate(t.TempDir())
	if err != nil {
		t.Fatalf("failed to generate certificates: '%v'", err)
	}

	env.certs = certs

	env.serverCmd = exec.Command(
		env.serverPath,
		"--port", serverPort,
		"--workdir", env.workDir,
		"--server-cert", certs.ServerCert,
		"--server-key", certs.ServerKey,
		"--ca-cert", certs.CACert,
	)

	if err := env.serverCmd.Start(); err != nil {
		t.Fatalf("failed to exec server command: '%v'", err)
	}

	t.Cleanup(func() {
		if env.serverCmd.Process != nil {
			env.serverCmd.Process.Kill()
			env.serverCmd.Wait()
		}
	})

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.Fatalf("failed to start server")
		case <-ticker.C:
			if _, _, err := env.runCLI(t, "start", "echo", "started"); err == nil {
				return env
			}
		}
	}
}

func (env *testEnv) runCLI(
	t *testing.T,
	args ...string,
) (string, string, error) {
	t.Helper()

	cliArgs := []string{
		"--server-hostname", "localhost",
		"--server-port", serverPort,
		"--cert-path", env.certs.OperatorCert,
		"--key-path", env.certs.OperatorKey,
		"--ca-cert-path", env.certs.CACert,
	}

	cliArgs = append(cliArgs, args...)

	cmd := exec.Command(env.cliPath, cliArgs...)

	var stdout strings.Builder
	var stderr strings.Builder

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return stdout.String(), stderr.String(), err
}

// A quick smoke test to verify the CLI is able to communicate with the server
// and the available commands run.
func TestBasicE2E(t *testing.T) {
	env := setupTestEnv(t)

	t.Run("Test job lifecycle", func(t *testing.T) {
		startStdout, _, err := env.runCLI(t, "start", "echo", "Hello, world!")
		if err != nil {
			t.Fatalf("expected start not to return error: got '%v'", err)
		}

		jobID := strings.TrimSpace(startStdout)
		if _, err := uuid.Parse(jobID); err != nil {
			t.Errorf("expected start to return UUID: got '%v'", err)
		}

		// The stream command only returns once the job has finished, so the
		// status query afterwards sees a terminal state.
		streamStdout, _, err := env.runCLI(t, "stream", jobID)
		if err != nil {
			t.Errorf("expected stream not to return error: got '%v'", err)
		}

		if !strings.Contains(streamStdout, "Hello, world!") {
			t.Errorf(
				"expected stream text: got '%s', want 'Hello, world!'",
				streamStdout,
			)
		}

		statusStdout, _, err := env.runCLI(t, "status", jobID)
		if err != nil {
			t.Errorf("expected status not to return error: got '%v'", err)
		}

		if !strings.Contains(statusStdout, "exited") {
			t.Errorf(
				"expected job state: got '%s', want 'exited'",
				statusStdout,
			)
		}

		_, stopStderr, err := env.runCLI(t, "stop", jobID)
		if err == nil {
			t.Error("expected stop to return error")
		}

		if !strings.Contains(stopStderr, "not supported by this server") {
			t.Errorf("expected error message: got '%s'", stopStderr)
		}
	})

	t.Run("Test job runs in configured working directory", func(t *testing.T) {
		startStdout, _, err := env.runCLI(t, "start", "pwd")
		if err != nil {
			t.Fatalf("expected start not to return error: got '%v'", err)
		}

		jobID := strings.TrimSpace(startStdout)

		streamStdout, _, err := env.runCLI(t, "stream", jobID)
		if err != nil {
			t.Errorf("expected stream not to return error: got '%v'", err)
		}

		if !strings.Contains(streamStdout, env.workDir) {
			t.Errorf(
				"expected working directory: got '%s', want '%s'",
				streamStdout,
				env.workDir,
			)
		}
	})
}
