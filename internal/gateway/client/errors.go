package client

import "errors"

// Outward errors of the gateway auth client. Handlers map them to HTTP status
// codes.
var (
	ErrConflict     = errors.New("user with this email already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("auth service error")
	ErrBadRequest   = errors.New("invalid request")
	ErrUnavailable  = errors.New("auth service unavailable")
)
