package session

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis with a TTL, so expiry needs no sweeper.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a new RedisStore
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Create stores a new session mapping sessionID -> userID.
func (s *RedisStore) Create(ctx context.Context, userID uint) (string, error) {
	sid := uuid.New().String()
	err := s.rdb.Set(ctx, keyPrefix+sid, strconv.FormatUint(uint64(userID), 10), TTL).Err()
	if err != nil {
		return "", err
	}
	return sid, nil
}

// Get returns the user ID for a session, or 0 if not found / expired.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (uint, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+sessionID).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Delete removes a session.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, keyPrefix+sessionID).Err()
}
