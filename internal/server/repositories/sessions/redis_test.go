package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/authservice/internal/common"
	"github.com/dmitrijs2005/authservice/internal/server/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisRepoTest(t *testing.T) (*RedisRepository, *miniredis.Miniredis, *fakeClock) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})

	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	repo := NewRedisRepository(rdb, "test:")
	repo.now = clock.Now
	return repo, mr, clock
}

func TestRedis_CreateValidateRevoke(t *testing.T) {
	repo, mr, _ := newRedisRepoTest(t)
	ctx := context.Background()

	s, err := repo.Create(ctx, "alice", time.Hour)
	require.NoError(t, err)
	assert.True(t, mr.Exists("test:"+s.Token))
	assert.Equal(t, "alice", mr.HGet("test:"+s.Token, "user"))
	assert.Equal(t, time.Hour, mr.TTL("test:"+s.Token))

	got, err := repo.Validate(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserName)
	assert.Equal(t, models.SessionActive, got.Status)
	assert.True(t, got.ExpiresAt.Equal(s.ExpiresAt.Truncate(time.Millisecond)))

	require.NoError(t, repo.Revoke(ctx, s.Token))
	assert.Equal(t, "revoked", mr.HGet("test:"+s.Token, "status"))

	_, err = repo.Validate(ctx, s.Token)
	require.ErrorIs(t, err, common.ErrInvalidSession)

	require.NoError(t, repo.Revoke(ctx, s.Token))
}

func TestRedis_RevokeUnknownIsNoop(t *testing.T) {
	repo, mr, _ := newRedisRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Revoke(ctx, "never-issued"))
	require.NoError(t, repo.Revoke(ctx, ""))
	assert.False(t, mr.Exists("test:never-issued"))
}

func TestRedis_ValidateUnknownAndEmpty(t *testing.T) {
	repo, _, _ := newRedisRepoTest(t)
	ctx := context.Background()

	_, err := repo.Validate(ctx, "nope")
	require.ErrorIs(t, err, common.ErrInvalidSession)
	_, err = repo.Validate(ctx, "")
	require.ErrorIs(t, err, common.ErrInvalidSession)
}

func TestRedis_ExpiryByKeyTTL(t *testing.T) {
	repo, mr, _ := newRedisRepoTest(t)
	ctx := context.Background()

	s, err := repo.Create(ctx, "alice", time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = repo.Validate(ctx, s.Token)
	require.ErrorIs(t, err, common.ErrInvalidSession)
}

func TestRedis_LazyExpiryBeforeKeyTTL(t *testing.T) {
	repo, _, clock := newRedisRepoTest(t)
	ctx := context.Background()

	s, err := repo.Create(ctx, "alice", time.Minute)
	require.NoError(t, err)

	clock.Advance(time.Minute)
	_, err = repo.Validate(ctx, s.Token)
	require.ErrorIs(t, err, common.ErrInvalidSession)
}

func TestRedis_ZeroTTLPersistsUntilRevoked(t *testing.T) {
	repo, mr, _ := newRedisRepoTest(t)
	ctx := context.Background()

	s, err := repo.Create(ctx, "alice", 0)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), mr.TTL("test:"+s.Token))

	got, err := repo.Validate(ctx, s.Token)
	require.NoError(t, err)
	assert.True(t, got.ExpiresAt.IsZero())

	require.NoError(t, repo.Revoke(ctx, s.Token))
	assert.Equal(t, revokedRetention, mr.TTL("test:"+s.Token))
}

func TestRedis_SubMillisecondTTLStillExpiresKey(t *testing.T) {
	repo, mr, _ := newRedisRepoTest(t)

	s, err := repo.Create(context.Background(), "alice", 500*time.Microsecond)
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, mr.TTL("test:"+s.Token))

	mr.FastForward(time.Millisecond)
	assert.False(t, mr.Exists("test:"+s.Token))
}

func TestRedis_CreateRetriesOnCollision(t *testing.T) {
	repo, _, _ := newRedisRepoTest(t)
	ctx := context.Background()

	tokens := []string{"dup", "dup", "fresh"}
	repo.newToken = func() (string, error) {
		tok := tokens[0]
		tokens = tokens[1:]
		return tok, nil
	}

	first, err := repo.Create(ctx, "alice", time.Hour)
	require.NoError(t, err)
	second, err := repo.Create(ctx, "bob", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, "dup", first.Token)
	assert.Equal(t, "fresh", second.Token)

	got, err := repo.Validate(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserName)
}

func TestRedis_StoreUnavailable(t *testing.T) {
	repo, mr, _ := newRedisRepoTest(t)
	ctx := context.Background()
	mr.Close()

	_, err := repo.Create(ctx, "alice", time.Hour)
	require.ErrorIs(t, err, ErrRedisUnavailable)
	_, err = repo.Validate(ctx, "tok")
	require.ErrorIs(t, err, ErrRedisUnavailable)
	require.ErrorIs(t, repo.Revoke(ctx, "tok"), ErrRedisUnavailable)
}

func TestRedis_DefaultPrefix(t *testing.T) {
	repo := NewRedisRepository(nil, "")
	assert.Equal(t, DefaultRedisKeyPrefix+"abc", repo.key("abc"))
}
