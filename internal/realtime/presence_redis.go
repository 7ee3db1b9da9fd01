package realtime

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const presenceTTL = 24 * time.Hour

// RedisPresence shares presence across API instances. Two keys per entry: a
// forward key (user -> session) the relay reads, and a reverse key
// (session -> user) so a disconnect can find its entry without scanning.
type RedisPresence struct {
	rdb *redis.Client
}

func NewRedisPresence(rdb *redis.Client) *RedisPresence {
	return &RedisPresence{rdb: rdb}
}

func userKey(userID string) string    { return "presence:user:" + userID }
func sessionKey(sessID string) string { return "presence:session:" + sessID }

func (r *RedisPresence) Register(ctx context.Context, userID, sessionID string) error {
	// SET ... GET returns the replaced session in the same round trip.
	old, err := r.rdb.SetArgs(ctx, userKey(userID), sessionID, redis.SetArgs{
		Get: true,
		TTL: presenceTTL,
	}).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("register presence: %w", err)
	}

	pipe := r.rdb.Pipeline()
	pipe.Set(ctx, sessionKey(sessionID), userID, presenceTTL)
	if old != "" && old != sessionID {
		// The replaced session is orphaned; drop its reverse key so its
		// eventual disconnect cannot touch the new entry.
		pipe.Del(ctx, sessionKey(old))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("register presence: %w", err)
	}
	return nil
}

func (r *RedisPresence) Unregister(ctx context.Context, sessionID string) error {
	userID, err := r.rdb.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("unregister presence: %w", err)
	}

	pipe := r.rdb.Pipeline()
	pipe.Del(ctx, sessionKey(sessionID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("unregister presence: %w", err)
	}

	// Only clear the forward key if it still points at this session; a
	// later Register for the same user must win.
	cur, err := r.rdb.Get(ctx, userKey(userID)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("unregister presence: %w", err)
	}
	if cur == sessionID {
		if err := r.rdb.Del(ctx, userKey(userID)).Err(); err != nil {
			return fmt.Errorf("unregister presence: %w", err)
		}
	}
	return nil
}

func (r *RedisPresence) Lookup(ctx context.Context, userID string) (string, bool, error) {
	sid, err := r.rdb.Get(ctx, userKey(userID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup presence: %w", err)
	}
	return sid, true, nil
}
