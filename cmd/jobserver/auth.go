package main

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	api "github.com/runlet/runlet/api/v1"
)

type Permission string

const (
	PermissionJobStart  Permission = "job:start"
	PermissionJobStop   Permission = "job:stop"
	PermissionJobStatus Permission = "job:status"
	PermissionJobStream Permission = "job:stream"
)

// Role is derived from the OU of the client's verified certificate.
type Role string

const (
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

var rolePermissions = map[Role][]Permission{
	RoleOperator: {
		PermissionJobStart,
		PermissionJobStop,
		PermissionJobStatus,
		PermissionJobStream,
	},
	RoleViewer: {PermissionJobStatus, PermissionJobStream},
}

var endpointPermissions = map[string]Permission{
	api.JobService_StartJob_FullMethodName:        PermissionJobStart,
	api.JobService_StopJob_FullMethodName:         PermissionJobStop,
	api.JobService_JobStatus_FullMethodName:       PermissionJobStatus,
	api.JobService_StreamJobOutput_FullMethodName: PermissionJobStream,
}

func getClientIdentity(ctx context.Context) (string, string, error) {
	p, ok := peer.FromContext(ctx)
	if !ok {
		return "", "", fmt.Errorf("failed to get peer info from context")
	}

	tlsInfo, ok := p.AuthInfo.(credentials.TLSInfo)
	if !ok {
		return "", "", fmt.Errorf("failed to get TLS info from peer auth info")
	}

	if len(tlsInfo.State.VerifiedChains) == 0 ||
		len(tlsInfo.State.VerifiedChains[0]) == 0 {
		return "", "", fmt.Errorf("no verified chains in TLS info")
	}

	cert := tlsInfo.State.VerifiedChains[0][0]

	cn := cert.Subject.CommonName

	var ou string
	if len(cert.Subject.OrganizationalUnit) > 0 {
		ou = cert.Subject.OrganizationalUnit[0]
	}

	return cn, ou, nil
}

func isAuthorised(role Role, endpoint string) error {
	requiredPermission, exists := endpointPermissions[endpoint]
	if !exists {
		return fmt.Errorf("specified endpoint not in endpoint permissions")
	}

	permissions, ok := rolePermissions[role]
	if !ok {
		return fmt.Errorf("specified role not in role permissions")
	}

	if !slices.Contains(permissions, requiredPermission) {
		return fmt.Errorf("required permission not in permissions for role")
	}

	return nil
}

func authorise(ctx context.Context, method string, logger *slog.Logger) error {
	cn, ou, err := getClientIdentity(ctx)
	if err != nil {
		logger.Warn("failed to get client identity", "err", err)
		return status.Error(codes.Unauthenticated, "not authenticated")
	}

	role := Role(ou)

	if err := isAuthorised(role, method); err != nil {
		logger.Warn(
			"failed to authorise client",
			"cn", cn,
			"ou", ou,
			"method", method,
			"err", err,
		)

		return status.Error(codes.PermissionDenied, "not authorised")
	}

	logger.Debug(
		"authorised client request",
		"cn", cn,
		"ou", ou,
		"method", method,
	)

	return nil
}

func authUnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if err := authorise(ctx, info.FullMethod, logger); err != nil {
			return nil, err
		}

		return handler(ctx, req)
	}
}

func authStreamInterceptor(logger *slog.Logger) grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if err := authorise(ss.Context(), info.FullMethod, logger); err != nil {
			return err
		}

		return handler(srv, ss)
	}
}
