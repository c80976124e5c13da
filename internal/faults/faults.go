// Package faults is the single error taxonomy shared by every service and
// the gateway. Domain code returns these; the RPC boundary converts them to
// gRPC status codes; the gateway converts status codes to HTTP. Keeping one
// scheme avoids leaking parallel error representations across layers.
package faults

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sentinel errors for the taxonomy kinds that need no extra payload.
var (
	// ErrNotFound reports an absent entity. For deletes this is an
	// informational outcome, for updates and lookups-by-id a hard failure.
	ErrNotFound = errors.New("not found")
	// ErrConflict reports a duplicate unique key or a rejected overlap.
	ErrConflict = errors.New("conflict")
	// ErrUnauthenticated reports a missing, malformed, or expired token.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError wraps a user-facing, field-level validation message.
// It is reported to the caller and never retried.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// Validation builds a field-level ValidationError.
func Validation(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// ToStatus maps a domain error to the gRPC error channel. Unrecognized
// errors deliberately collapse to Internal without leaking their text.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}

	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Error())
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

// HTTPStatus maps a gRPC status code to the HTTP status the gateway returns.
func HTTPStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
