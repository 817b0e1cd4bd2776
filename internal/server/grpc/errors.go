package grpc

import (
	"errors"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors to gRPC statuses. Unexpected failures are
// reported as a bare "internal error" so details stay in the server log.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrPasswordTooShort):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrUsernameTaken),
		errors.Is(err, common.ErrEmailTaken),
		errors.Is(err, common.ErrExerciseExists),
		errors.Is(err, common.ErrVideoExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrVideoUnavailable):
		return status.Error(codes.FailedPrecondition, common.ErrVideoUnavailable.Error())
	case errors.Is(err, common.ErrExportDisabled):
		return status.Error(codes.Unimplemented, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
