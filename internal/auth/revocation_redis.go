package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "auth:revoked:"

// RedisRegistry is a revocation registry shared between instances. Entries
// expire with the token itself via key TTL, so no sweeper is needed.
type RedisRegistry struct {
	client *redis.Client
}

// NewRedisRegistry wraps a connected client.
func NewRedisRegistry(client *redis.Client) *RedisRegistry {
	return &RedisRegistry{client: client}
}

// Revoke records the token. SET is naturally idempotent; the TTL is the time
// left until the token's own expiry, floored so entries for already expired
// or unparseable tokens still stick around briefly.
func (r *RedisRegistry) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl < time.Minute {
		ttl = time.Minute
	}
	return r.client.Set(ctx, redisKeyPrefix+hashToken(token), 1, ttl).Err()
}

// IsRevoked reports registry membership.
func (r *RedisRegistry) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, redisKeyPrefix+hashToken(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// hashToken keys entries by digest so raw tokens never land in Redis.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
