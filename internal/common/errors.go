// Package common defines shared sentinel errors used across the service.
// Callers classify failures with errors.Is instead of matching message text.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation error")

	// Outbound-call failures (OAuth provider, translation provider).
	ErrUpstream = errors.New("upstream error")

	// A feature was invoked without its required secret or environment value.
	ErrNotConfigured = errors.New("not configured")
)
