// Package sessions implements the Session Table: opaque bearer tokens mapped
// to the user who signed in.
package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/authservice/internal/common"
	"github.com/dmitrijs2005/authservice/internal/server/models"
)

// maxCreateAttempts bounds token regeneration on collision.
const maxCreateAttempts = 3

var errTokenSpaceExhausted = errors.New("could not allocate a unique session token")

// Repository is the Session Table contract.
type Repository interface {
	// Create issues a fresh active session for userName. A ttl of zero
	// creates a session that never expires.
	Create(ctx context.Context, userName string, ttl time.Duration) (*models.Session, error)

	// Validate returns the session if it is active and unexpired, otherwise
	// common.ErrInvalidSession.
	Validate(ctx context.Context, token string) (*models.Session, error)

	// Revoke marks the session revoked. Unknown or already revoked tokens
	// are not an error.
	Revoke(ctx context.Context, token string) error
}

// Sweeper is implemented by tables that need periodic reclamation of
// expired and revoked records.
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) (int, error)
}

func newToken() (string, error) {
	return common.MakeRandToken(common.SessionTokenSize)
}

func expiryFor(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}
