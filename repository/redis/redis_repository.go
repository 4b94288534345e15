package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	redisclient "github.com/muhammadheryan/student-marketplace/cmd/redis"
	goredis "github.com/redis/go-redis/v9"
)

const (
	sessionPrefix = "session:"
	lockPrefix    = "lock:message:"
)

// releaseScript deletes the lock only while it still holds the caller's
// token, so a holder whose TTL ran out cannot free a newer holder's lock.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Repository covers the two things the marketplace keeps in Redis: login
// sessions and short-lived send locks.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	// AcquireLock reports false when another caller holds key. The returned
	// token identifies this holder to ReleaseLock.
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	ReleaseLock(ctx context.Context, key, token string) error
}

type redis struct{}

func NewRepository() Repository {
	return &redis{}
}

func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionPrefix+sessionID, strconv.FormatUint(userID, 10), ttl).Err()
}

func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	return client.Get(ctx, sessionPrefix+sessionID).Uint64()
}

func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionPrefix+sessionID).Err()
}

// AcquireLock uses SETNX so concurrent duplicate sends collapse to one.
// Without a client every caller gets the lock and the database constraint
// is the only guard.
func (r *redis) AcquireLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	client := redisclient.Get()
	if client == nil {
		return "", true, nil
	}
	token := uuid.NewString()
	ok, err := client.SetNX(ctx, lockPrefix+key, token, ttl).Result()
	if err != nil || !ok {
		return "", ok, err
	}
	return token, true, nil
}

func (r *redis) ReleaseLock(ctx context.Context, key, token string) error {
	client := redisclient.Get()
	if client == nil || token == "" {
		return nil
	}
	return releaseScript.Run(ctx, client, []string{lockPrefix + key}, token).Err()
}
