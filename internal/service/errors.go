// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package service

import (
	"context"
	stderrors "errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"planbridge/server/internal/errors"
)

// toStatus maps the internal error taxonomy onto gRPC status codes. Errors
// that already carry a status, and context errors, pass through unchanged.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && status.Code(err) != codes.Unknown {
		return err
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	switch errors.KindOf(err) {
	case errors.InvalidRequest:
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.NotFound:
		return status.Error(codes.NotFound, err.Error())
	case errors.VerificationFailed:
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
