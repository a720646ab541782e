package models

import "time"

type SessionStatus string

const (
	SessionActive  SessionStatus = "active"
	SessionRevoked SessionStatus = "revoked"
)

// Session is one authenticated login. A zero ExpiresAt never expires.
type Session struct {
	Token     string
	UserName  string
	CreatedAt time.Time
	ExpiresAt time.Time
	Status    SessionStatus
}

// ActiveAt reports whether the session is usable at now.
func (s *Session) ActiveAt(now time.Time) bool {
	if s == nil || s.Status != SessionActive {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}
