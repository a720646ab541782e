package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authservice/internal/common"
	"github.com/dmitrijs2005/authservice/internal/server/models"
)

// MemoryRepository keeps sessions in a map. Expiry is checked on read; Sweep
// drops records that can no longer validate.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
	newToken func() (string, error)
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessions: make(map[string]models.Session),
		now:      time.Now,
		newToken: newToken,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, userName string, ttl time.Duration) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		token, err := r.newToken()
		if err != nil {
			return nil, err
		}

		now := r.now().UTC()
		s := models.Session{
			Token:     token,
			UserName:  userName,
			CreatedAt: now,
			ExpiresAt: expiryFor(now, ttl),
			Status:    models.SessionActive,
		}

		r.mu.Lock()
		_, taken := r.sessions[token]
		if !taken {
			r.sessions[token] = s
		}
		r.mu.Unlock()

		if !taken {
			return &s, nil
		}
	}
	return nil, errTokenSpaceExhausted
}

func (r *MemoryRepository) Validate(ctx context.Context, token string) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	s, ok := r.sessions[token]
	r.mu.RUnlock()

	if !ok || !s.ActiveAt(r.now()) {
		return nil, common.ErrInvalidSession
	}
	return &s, nil
}

func (r *MemoryRepository) Revoke(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok {
		return nil
	}
	s.Status = models.SessionRevoked
	r.sessions[token] = s
	return nil
}

// Sweep removes sessions that are revoked or expired at now and returns how
// many were dropped.
func (r *MemoryRepository) Sweep(ctx context.Context, now time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for token, s := range r.sessions {
		if !s.ActiveAt(now) {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of stored records, including revoked ones not yet
// swept.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
