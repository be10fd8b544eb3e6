// Package apperrors defines the error taxonomy surfaced by the identity and
// authorization services. Handlers map these to client-error statuses; no
// internal error is ever downgraded to success.
package apperrors

import "errors"

var (
	// ErrInvalidCredentials covers bad, expired or absent one-time codes.
	// It never reveals whether the subject exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers bad signature, wrong token variant or expiry
	ErrInvalidToken = errors.New("invalid token")
	// ErrForbidden means authenticated but insufficient or mismatched scope,
	// or a delegation rule violation
	ErrForbidden = errors.New("forbidden")
	// ErrConflict means a uniqueness invariant would be violated
	ErrConflict = errors.New("conflict")
	// ErrNotFound means a referenced invite, grant or account is absent
	ErrNotFound = errors.New("not found")
	// ErrInvalidState means a state-machine transition was attempted from a
	// terminal or wrong state
	ErrInvalidState = errors.New("invalid state")
	// ErrValidation covers malformed request payloads
	ErrValidation = errors.New("validation failed")
)
