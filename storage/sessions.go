package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"marketplace_bot/dialog"
)

const sessionKeyPrefix = "session:"

var _ dialog.SessionStore = (*RedisSessionStore)(nil)

// RedisSessionStore keeps sessions as JSON values in Redis so they survive
// restarts and expire instead of piling up forever. Every write refreshes
// the TTL, so a session only dies after the shopper goes quiet.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisSessionStore wraps a Redis client as a dialog.SessionStore.
func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, userID string) (*dialog.Session, error) {
	data, err := s.rdb.Get(ctx, sessionKeyPrefix+userID).Bytes()
	if err == redis.Nil {
		return dialog.NewSession(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return decodeSession(userID, data), nil
}

func (s *RedisSessionStore) Put(ctx context.Context, sess *dialog.Session) error {
	data, err := encodeSession(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+sess.UserID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func encodeSession(sess *dialog.Session) ([]byte, error) {
	return json.Marshal(sess)
}

// decodeSession restores a stored session. Unreadable stored state starts the
// shopper over rather than failing every turn from now on.
func decodeSession(userID string, data []byte) *dialog.Session {
	var sess dialog.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return dialog.NewSession(userID)
	}
	return &sess
}

func (s *RedisSessionStore) Count(ctx context.Context) (int64, error) {
	var count int64
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, sessionKeyPrefix+"*", 100).Result()
		if err != nil {
			return 0, fmt.Errorf("scan sessions: %w", err)
		}
		count += int64(len(keys))
		cursor = next
		if cursor == 0 {
			return count, nil
		}
	}
}
