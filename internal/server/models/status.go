// Package models defines the server-side data model of the auth service.
package models

// StatusCode is the outcome of every authentication operation.
type StatusCode int

const (
	StatusOk StatusCode = iota
	StatusInvalidArgument
	StatusAlreadyExists
	StatusIncorrectCredentials
	StatusInternal
)

func (c StatusCode) String() string {
	switch c {
	case StatusOk:
		return "ok"
	case StatusInvalidArgument:
		return "invalid_argument"
	case StatusAlreadyExists:
		return "already_exists"
	case StatusIncorrectCredentials:
		return "incorrect_credentials"
	case StatusInternal:
		return "internal"
	default:
		return "unknown"
	}
}
