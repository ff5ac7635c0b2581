package main

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCliHelpers(t *testing.T) {
	t.Parallel()

	t.Run("Test gRPC errors are mapped", func(t *testing.T) {
		tests := map[codes.Code]string{
			codes.NotFound:         "not found",
			codes.PermissionDenied: "permission denied",
			codes.Unauthenticated:  "not authenticated",
			codes.Unimplemented:    "not supported by this server",
			codes.Unavailable:      "server unavailable",
		}

		for code, want := range tests {
			got := mapError(status.Error(code, "detail"))

			if got.Error() != want {
				t.Errorf(
					"expected mapped error for %v: got '%s', want '%s'",
					code,
					got.Error(),
					want,
				)
			}
		}
	})

	t.Run("Test unmapped code keeps the status message", func(t *testing.T) {
		got := mapError(status.Error(codes.Internal, "internal server error"))

		if got.Error() != "internal server error" {
			t.Errorf("expected status message: got '%s'", got.Error())
		}
	})

	t.Run("Test non-status error passes through", func(t *testing.T) {
		err := errors.New("plain error")

		// status.FromError wraps plain errors as codes.Unknown, so they fall
		// through to the message branch.
		if got := mapError(err); got.Error() != "plain error" {
			t.Errorf("expected error to pass through: got '%v'", got)
		}
	})
}
