package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"

	api "github.com/runlet/runlet/api/v1"
	"github.com/runlet/runlet/internal/config"
	"github.com/runlet/runlet/internal/jobmanager"
	"github.com/runlet/runlet/internal/metrics"
	"github.com/runlet/runlet/internal/tlsconfig"
)

// streamBufferSize is the buffer size for reading job output when relaying
// it to a streaming client. 4KB aligns with typical pipe buffer sizes.
const streamBufferSize = 4096

type server struct {
	api.UnimplementedJobServiceServer

	manager    *jobmanager.Manager
	logger     *slog.Logger
	cfg        *config.Config
	grpcServer *grpc.Server
}

func newServer(
	manager *jobmanager.Manager,
	logger *slog.Logger,
	cfg *config.Config,
) *server {
	return &server{manager: manager, logger: logger, cfg: cfg}
}

func runServer(cfg *config.Config, logger *slog.Logger) error {
	manager := jobmanager.NewManager(cfg.WorkDir, logger)

	listener, err := net.Listen(
		"tcp",
		net.JoinHostPort(cfg.Host, strconv.Itoa(int(cfg.Port))),
	)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	var metricsServer *metrics.Server
	if cfg.MetricsAddr != "" {
		metricsServer = metrics.NewServer(cfg.MetricsAddr, logger)
		metricsServer.Start()
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		os.Interrupt,
	)
	defer stop()

	s := newServer(manager, logger, cfg)

	serveErr := make(chan error, 1)

	go func() {
		serveErr <- s.start(listener)
	}()

	logger.Info("job server listening", "addr", listener.Addr().String())

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	s.shutdown()
	manager.Shutdown()

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			5*time.Second,
		)
		defer cancel()

		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown", "err", err)
		}
	}

	return nil
}

func (s *server) start(listener net.Listener) error {
	tlsConfig, err := tlsconfig.Server(
		s.cfg.ServerCertPath,
		s.cfg.ServerKeyPath,
		s.cfg.CACertPath,
	)
	if err != nil {
		return fmt.Errorf("failed to load TLS credentials: %w", err)
	}

	s.grpcServer = grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			contextCheckUnaryInterceptor,
			authUnaryInterceptor(s.logger),
		),
		grpc.StreamInterceptor(authStreamInterceptor(s.logger)),
		grpc.Creds(credentials.NewTLS(tlsConfig)),
	)

	api.RegisterJobServiceServer(s.grpcServer, s)

	return s.grpcServer.Serve(listener)
}

func (s *server) shutdown() {
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
}

func (s *server) StartJob(
	ctx context.Context,
	req *api.StartJobRequest,
) (*api.StartJobResponse, error) {
	if req.Program == "" {
		return nil, status.Error(codes.InvalidArgument, "program is empty")
	}

	id, pid, err := s.manager.StartJob(ctx, req.Program, req.Args)
	if err != nil {
		return nil, s.mapError("start job", err)
	}

	return &api.StartJobResponse{Id: id, Pid: int32(pid)}, nil
}

func (s *server) StopJob(
	ctx context.Context,
	req *api.StopJobRequest,
) (*api.StopJobResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is empty")
	}

	return nil, status.Error(
		codes.Unimplemented,
		"stopping jobs is not supported; signal the pid reported by JobStatus",
	)
}

func (s *server) JobStatus(
	ctx context.Context,
	req *api.JobStatusRequest,
) (*api.JobStatusResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is empty")
	}

	jobStatus, err := s.manager.JobStatus(req.Id)
	if err != nil {
		return nil, s.mapError("job status", err)
	}

	resp := &api.JobStatusResponse{}

	switch jobStatus.State {
	case jobmanager.StateExited:
		resp.Status = &api.JobStatusResponse_ExitCode{
			ExitCode: int32(jobStatus.ExitCode),
		}
	case jobmanager.StateSignaled:
		resp.Status = &api.JobStatusResponse_Signal{
			Signal: int32(jobStatus.Signal),
		}
	default:
		resp.Status = &api.JobStatusResponse_Running{
			Running: jobStatus.Running(),
		}
	}

	return resp, nil
}

func (s *server) StreamJobOutput(
	req *api.StreamJobOutputRequest,
	stream grpc.ServerStreamingServer[api.StreamJobOutputResponse],
) error {
	if req.Id == "" {
		return status.Error(codes.InvalidArgument, "id is empty")
	}

	if stream.Context().Err() != nil {
		return status.FromContextError(stream.Context().Err()).Err()
	}

	outputReader, err := s.manager.StreamJobOutput(req.Id)
	if err != nil {
		return s.mapError("output stream", err)
	}

	defer func() {
		if err := outputReader.Close(); err != nil {
			s.logger.Warn("close output reader", "id", req.Id, "err", err)
		}
	}()

	// A disconnecting client doesn't wake a Read blocked waiting for new
	// output, so unblock it by closing the reader when the stream context
	// ends.
	streamCtx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	go func() {
		<-streamCtx.Done()
		outputReader.Close()
	}()

	buf := make([]byte, streamBufferSize)

	for {
		n, err := outputReader.Read(buf)
		if n > 0 {
			if err := stream.Send(&api.StreamJobOutputResponse{
				Output: buf[:n],
			}); err != nil {
				s.logger.Warn("stream data to client", "id", req.Id, "err", err)
				return status.Error(codes.DataLoss, "failed to stream data")
			}
		}

		if err != nil {
			if err == io.EOF {
				break
			}

			return s.mapError("read job output stream", err)
		}
	}

	return nil
}

// mapError translates jobmanager errors to gRPC errors.
func (s *server) mapError(logMsg string, err error) error {
	switch {
	case errors.Is(err, jobmanager.ErrJobNotFound):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.NotFound, err.Error())

	case errors.As(err, new(jobmanager.InvalidStateError)):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.As(err, new(*jobmanager.SpawnError)):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.InvalidArgument, err.Error())

	default:
		s.logger.Error(logMsg, "err", err)
		return status.Error(codes.Internal, "internal server error")
	}
}

// contextCheckUnaryInterceptor rejects requests with a cancelled context.
func contextCheckUnaryInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	if ctx.Err() != nil {
		return nil, status.FromContextError(ctx.Err()).Err()
	}

	return handler(ctx, req)
}
