package sessions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/authservice/internal/common"
	"github.com/dmitrijs2005/authservice/internal/server/models"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisKeyPrefix namespaces session keys.
const DefaultRedisKeyPrefix = "authsvc:session:"

// revokedRetention keeps a revoked session without TTL around long enough to
// reject replays, after which Redis reclaims the key.
const revokedRetention = 24 * time.Hour

var ErrRedisUnavailable = errors.New("redis unavailable")

const createSessionScript = `
if redis.call("EXISTS", KEYS[1]) == 1 then
  return 0
end
redis.call("HSET", KEYS[1], "user", ARGV[1], "created_at", ARGV[2], "expires_at", ARGV[3], "status", "active")
local ttl = tonumber(ARGV[4])
if ttl > 0 then
  redis.call("PEXPIRE", KEYS[1], ttl)
end
return 1
`

const revokeSessionScript = `
if redis.call("EXISTS", KEYS[1]) == 0 then
  return 0
end
redis.call("HSET", KEYS[1], "status", "revoked")
if redis.call("PTTL", KEYS[1]) < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return 1
`

var (
	createSessionLua = redis.NewScript(createSessionScript)
	revokeSessionLua = redis.NewScript(revokeSessionScript)
)

// RedisRepository stores each session as a hash under prefix+token. Key TTLs
// follow session expiry so Redis reclaims expired records itself.
type RedisRepository struct {
	rdb      redis.UniversalClient
	prefix   string
	now      func() time.Time
	newToken func() (string, error)
}

func NewRedisRepository(rdb redis.UniversalClient, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &RedisRepository{rdb: rdb, prefix: prefix, now: time.Now, newToken: newToken}
}

func (r *RedisRepository) key(token string) string {
	return r.prefix + token
}

func (r *RedisRepository) Create(ctx context.Context, userName string, ttl time.Duration) (*models.Session, error) {
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

		// 0 leaves the key without a TTL, so a positive ttl rounds up to 1ms.
		var ttlMillis int64
		if ttl > 0 {
			ttlMillis = max(ttl.Milliseconds(), 1)
		}

		created, err := createSessionLua.Run(ctx, r.rdb, []string{r.key(token)},
			userName,
			formatMillis(s.CreatedAt),
			formatMillis(s.ExpiresAt),
			ttlMillis,
		).Int()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
		if created == 1 {
			return &s, nil
		}
	}
	return nil, errTokenSpaceExhausted
}

func (r *RedisRepository) Validate(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, common.ErrInvalidSession
	}

	fields, err := r.rdb.HGetAll(ctx, r.key(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	if len(fields) == 0 {
		return nil, common.ErrInvalidSession
	}

	s, err := decodeSession(token, fields)
	if err != nil {
		return nil, err
	}
	if !s.ActiveAt(r.now()) {
		return nil, common.ErrInvalidSession
	}
	return s, nil
}

func (r *RedisRepository) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := revokeSessionLua.Run(ctx, r.rdb, []string{r.key(token)}, revokedRetention.Milliseconds()).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

func decodeSession(token string, fields map[string]string) (*models.Session, error) {
	created, err := parseMillis(fields["created_at"])
	if err != nil {
		return nil, fmt.Errorf("corrupt session record: %w", err)
	}
	expires, err := parseMillis(fields["expires_at"])
	if err != nil {
		return nil, fmt.Errorf("corrupt session record: %w", err)
	}
	return &models.Session{
		Token:     token,
		UserName:  fields["user"],
		CreatedAt: created,
		ExpiresAt: expires,
		Status:    models.SessionStatus(fields["status"]),
	}, nil
}

// Zero times are stored as 0.
func formatMillis(t time.Time) string {
	if t.IsZero() {
		return "0"
	}
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func parseMillis(s string) (time.Time, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	if v == 0 {
		return time.Time{}, nil
	}
	return time.UnixMilli(v).UTC(), nil
}
