// Package common defines shared constants and sentinel errors used across
// the auth server and its clients. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Session errors. Unknown, revoked and expired sessions all map here.
	ErrInvalidSession = errors.New("invalid session")
)
