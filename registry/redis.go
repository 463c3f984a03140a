package registry

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis shares a version counter across processes and survives restarts.
// Optionally, a TTL can be applied to the counter key to prevent abandoned
// counters from living forever. If the key expires, readers observe version
// 0 and consuming caches treat the jump as drift and recompute.
type Redis struct {
	rdb redis.UniversalClient
	key string
	ttl time.Duration // optional TTL refreshed on Bump; 0 disables expiry
}

var _ Source = (*Redis)(nil)

// NewRedis creates a Redis-backed counter without TTL. key names the registry
// it tracks, e.g. "ver:styles" or "ver:blocks".
func NewRedis(client redis.UniversalClient, key string) *Redis {
	return &Redis{rdb: client, key: key}
}

// NewRedisWithTTL creates a Redis-backed counter with TTL.
// If ttl <= 0, the key does not expire.
func NewRedisWithTTL(client redis.UniversalClient, key string, ttl time.Duration) *Redis {
	return &Redis{rdb: client, key: key, ttl: ttl}
}

// Version returns the current counter.
// A missing key is treated as version 0.
func (s *Redis) Version(ctx context.Context) (uint64, error) {
	res, err := s.rdb.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	u, err := strconv.ParseUint(res, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("redis version parse: %w", err)
	}
	return u, nil
}

// Bump atomically increments the counter and (optionally) refreshes TTL.
// When ttl > 0, INCR + EXPIRE are pipelined in a single round-trip and the
// INCR result is captured from the pipeline (no extra INCR).
func (s *Redis) Bump(ctx context.Context) (uint64, error) {
	if s.ttl <= 0 {
		v, err := s.rdb.Incr(ctx, s.key).Result()
		if err != nil {
			return 0, err
		}
		return uint64(v), nil
	}

	var incr *redis.IntCmd
	_, err := s.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, s.key)
		p.Expire(ctx, s.key, s.ttl)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return uint64(incr.Val()), nil
}

// Close closes the underlying Redis client.
func (s *Redis) Close() error { return s.rdb.Close() }
