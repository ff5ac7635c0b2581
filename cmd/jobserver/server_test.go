package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/google/uuid"
	api "github.com/runlet/runlet/api/v1"
	"github.com/runlet/runlet/internal/config"
	"github.com/runlet/runlet/internal/jobmanager"
	"github.com/runlet/runlet/internal/testcert"
	"github.com/runlet/runlet/internal/tlsconfig"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"
)

type testHarness struct {
	certs *testcert.Bundle
	addr  string
}

// setupTestServer generates a throwaway certificate set and starts a server
// on an ephemeral port. The server is torn down when the test finishes.
func setupTestServer(t *testing.T) *testHarness {
	t.Helper()

	certs, err := testcert.Generate(t.TempDir())
	if err != nil {
		t.Fatalf("failed to generate certificates: '%v'", err)
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to setup listener: '%v'", err)
	}

	workDir := t.TempDir()

	manager := jobmanager.NewManager(workDir, slog.New(slog.DiscardHandler))

	s := newServer(
		manager,
		slog.New(slog.DiscardHandler),
		&config.Config{
			WorkDir:        workDir,
			ServerCertPath: certs.ServerCert,
			ServerKeyPath:  certs.ServerKey,
			CACertPath:     certs.CACert,
		},
	)

	go func() {
		if err := s.start(listener); err != nil {
			t.Logf("failed to start server: '%v'", err)
		}
	}()

	t.Cleanup(func() {
		s.shutdown()
		manager.Shutdown()
	})

	return &testHarness{certs: certs, addr: listener.Addr().String()}
}

// connect returns a client connected with the given certificate.
func (h *testHarness) connect(
	t *testing.T,
	clientCertPath, clientKeyPath string,
) api.JobServiceClient {
	t.Helper()

	clientTLSConfig, err := tlsconfig.Client(
		clientCertPath,
		clientKeyPath,
		h.certs.CACert,
		"localhost",
	)
	if err != nil {
		t.Fatalf("failed to setup client TLS: '%v'", err)
	}

	conn, err := grpc.NewClient(
		h.addr,
		grpc.WithTransportCredentials(credentials.NewTLS(clientTLSConfig)),
	)
	if err != nil {
		t.Fatalf("failed to connect: '%v'", err)
	}

	t.Cleanup(func() { conn.Close() })

	return api.NewJobServiceClient(conn)
}

func requireStatusCode(t *testing.T, err error, want codes.Code) {
	t.Helper()

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected gRPC status error: got '%v'", err)
	}

	if st.Code() != want {
		t.Errorf("expected status code: got '%v', want '%v'", st.Code(), want)
	}
}

func TestJobServerIntegration(t *testing.T) {
	h := setupTestServer(t)
	client := h.connect(t, h.certs.OperatorCert, h.certs.OperatorKey)

	ctx := context.Background()

	t.Run("Test job lifecycle", func(t *testing.T) {
		startResp, err := client.StartJob(ctx, &api.StartJobRequest{
			Program: "sleep",
			Args:    []string{"30"},
		})
		if err != nil {
			t.Fatalf("expected not to get error: got '%v'", err)
		}

		if _, err := uuid.Parse(startResp.Id); err != nil {
			t.Errorf("expected to get valid UUID: got '%v'", startResp.Id)
		}

		if startResp.Pid <= 0 {
			t.Errorf("expected positive pid: got '%d'", startResp.Pid)
		}

		statusReq := &api.JobStatusRequest{Id: startResp.Id}

		statusResp, err := client.JobStatus(ctx, statusReq)
		if err != nil {
			t.Fatalf("expected not to get error: got '%v'", err)
		}

		if !statusResp.GetRunning() {
			t.Errorf("expected job to be running: got '%v'", statusResp.Status)
		}

		_, err = client.StopJob(ctx, &api.StopJobRequest{Id: startResp.Id})
		requireStatusCode(t, err, codes.Unimplemented)

		// Stopping goes through the pid instead.
		if err := syscall.Kill(int(startResp.Pid), syscall.SIGKILL); err != nil {
			t.Fatalf("expected to kill job process: got '%v'", err)
		}

		deadline := time.After(5 * time.Second)

		for {
			statusResp, err = client.JobStatus(ctx, statusReq)
			if err != nil {
				t.Fatalf("expected not to get error: got '%v'", err)
			}

			if !statusResp.GetRunning() {
				break
			}

			select {
			case <-deadline:
				t.Fatal("timed out waiting for job to terminate")
			case <-time.After(10 * time.Millisecond):
			}
		}

		if got := statusResp.GetSignal(); got != int32(syscall.SIGKILL) {
			t.Errorf(
				"expected termination signal: got '%d', want '%d'",
				got,
				syscall.SIGKILL,
			)
		}
	})

	t.Run("Test job output streaming", func(t *testing.T) {
		startResp, err := client.StartJob(ctx, &api.StartJobRequest{
			Program: "echo",
			Args:    []string{"Hello, world!"},
		})
		if err != nil {
			t.Fatalf("expected not to get error: got '%v'", err)
		}

		stream, err := client.StreamJobOutput(ctx, &api.StreamJobOutputRequest{
			Id: startResp.Id,
		})
		if err != nil {
			t.Fatalf("expected not to get error: got '%v'", err)
		}

		var output []byte

		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("expected not to get error: got '%v'", err)
			}

			output = append(output, resp.Output...)
		}

		if string(output) != "Hello, world!\n" {
			t.Errorf(
				"expected output: got '%s', want '%s'",
				string(output),
				"Hello, world!\n",
			)
		}

		statusResp, err := client.JobStatus(ctx, &api.JobStatusRequest{
			Id: startResp.Id,
		})
		if err != nil {
			t.Fatalf("expected not to get error: got '%v'", err)
		}

		// The stream only ends once the job has, so the exit code is final.
		if got, want := statusResp.GetExitCode(), int32(0); got != want {
			t.Errorf("expected exit code: got '%d', want '%d'", got, want)
		}
	})

	t.Run("Test unknown job", func(t *testing.T) {
		_, err := client.JobStatus(ctx, &api.JobStatusRequest{
			Id: uuid.NewString(),
		})
		requireStatusCode(t, err, codes.NotFound)
	})

	t.Run("Test empty program", func(t *testing.T) {
		_, err := client.StartJob(ctx, &api.StartJobRequest{Program: ""})
		requireStatusCode(t, err, codes.InvalidArgument)
	})

	t.Run("Test unknown program", func(t *testing.T) {
		_, err := client.StartJob(ctx, &api.StartJobRequest{
			Program: "definitely-not-a-real-program",
		})
		requireStatusCode(t, err, codes.InvalidArgument)
	})
}

func TestJobServerAuthorisation(t *testing.T) {
	h := setupTestServer(t)
	viewer := h.connect(t, h.certs.ViewerCert, h.certs.ViewerKey)
	operator := h.connect(t, h.certs.OperatorCert, h.certs.OperatorKey)

	ctx := context.Background()

	startResp, err := operator.StartJob(ctx, &api.StartJobRequest{
		Program: "echo",
		Args:    []string{"hi"},
	})
	if err != nil {
		t.Fatalf("expected not to get error: got '%v'", err)
	}

	t.Run("Viewer cannot start jobs", func(t *testing.T) {
		_, err := viewer.StartJob(ctx, &api.StartJobRequest{Program: "echo"})
		requireStatusCode(t, err, codes.PermissionDenied)
	})

	t.Run("Viewer can query status", func(t *testing.T) {
		statusResp, err := viewer.JobStatus(ctx, &api.JobStatusRequest{
			Id: startResp.Id,
		})
		if err != nil {
			t.Fatalf("expected not to get error: got '%v'", err)
		}

		if statusResp.Status == nil {
			t.Error("expected status to be set")
		}
	})

	t.Run("Viewer can stream output", func(t *testing.T) {
		stream, err := viewer.StreamJobOutput(ctx, &api.StreamJobOutputRequest{
			Id: startResp.Id,
		})
		if err != nil {
			t.Fatalf("expected not to get error: got '%v'", err)
		}

		var output []byte

		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("expected not to get error: got '%v'", err)
			}

			output = append(output, resp.Output...)
		}

		if string(output) != "hi\n" {
			t.Errorf("expected output: got '%s', want 'hi\\n'", string(output))
		}
	})
}
