// Package common defines shared constants and sentinel errors used across
// the authentication service and the gateway. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrIdentityExists is reported when the storage layer rejects an insert
	// because the email is already taken.
	ErrIdentityExists = errors.New("user with this email already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("invalid credentials")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (malformed, forged or expired token).
	ErrInvalidToken = errors.New("invalid or expired token")
)
