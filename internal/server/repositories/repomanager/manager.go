// Package repomanager builds the credential store and session table selected
// by configuration and owns the connections behind them.
package repomanager

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authservice/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/authservice/internal/server/repositories/sessions"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Credentials() credentials.Repository
	Sessions() sessions.Repository
	Close() error
}

// Options selects and configures the storage backends.
type Options struct {
	CredentialBackend string
	DatabaseDSN       string

	SessionBackend string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string
}

// Manager is the RepositoryManager used by the server.
type Manager struct {
	credentials credentials.Repository
	sessions    sessions.Repository
	closers     []func() error
	migrate     func(ctx context.Context) error
}

// New opens the configured backends. On error anything already opened is
// closed before returning.
func New(ctx context.Context, opts Options) (*Manager, error) {
	m := &Manager{}

	switch opts.CredentialBackend {
	case "", BackendMemory:
		m.credentials = credentials.NewMemoryRepository()
	case BackendPostgres:
		if err := m.openPostgres(ctx, opts.DatabaseDSN); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w for credentials: %q", ErrUnknownBackend, opts.CredentialBackend)
	}

	switch opts.SessionBackend {
	case "", BackendMemory:
		m.sessions = sessions.NewMemoryRepository()
	case BackendRedis:
		if err := m.openRedis(ctx, opts); err != nil {
			_ = m.Close()
			return nil, err
		}
	default:
		_ = m.Close()
		return nil, fmt.Errorf("%w for sessions: %q", ErrUnknownBackend, opts.SessionBackend)
	}

	return m, nil
}

func (m *Manager) Credentials() credentials.Repository {
	return m.credentials
}

func (m *Manager) Sessions() sessions.Repository {
	return m.sessions
}

// RunMigrations applies schema migrations. In-memory backends have none.
func (m *Manager) RunMigrations(ctx context.Context) error {
	if m.migrate == nil {
		return nil
	}
	return m.migrate(ctx)
}

func (m *Manager) Close() error {
	var errs []error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	m.closers = nil
	return errors.Join(errs...)
}
