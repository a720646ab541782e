package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authservice/internal/server/repositories/sessions"
	"github.com/redis/go-redis/v9"
)

// newRedisClient is a seam for tests.
var newRedisClient = func(opts *redis.Options) redis.UniversalClient {
	return redis.NewClient(opts)
}

func (m *Manager) openRedis(ctx context.Context, opts Options) error {
	if opts.RedisAddr == "" {
		return fmt.Errorf("redis session table requires an address")
	}

	rdb := newRedisClient(&redis.Options{
		Addr:     opts.RedisAddr,
		Password: opts.RedisPassword,
		DB:       opts.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return fmt.Errorf("redis ping error: %w", err)
	}

	m.sessions = sessions.NewRedisRepository(rdb, opts.RedisKeyPrefix)
	m.closers = append(m.closers, rdb.Close)
	return nil
}
