package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionStorage adapts the Redis client to fiber's session Storage
// interface. Session expiry rides on Redis key TTLs.
type SessionStorage struct {
	client *Client
}

func NewSessionStorage(client *Client) *SessionStorage {
	return &SessionStorage{client: client}
}

func (s *SessionStorage) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), sessionKeyPrefix+key)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(val), nil
}

func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), sessionKeyPrefix+key, val, exp)
}

func (s *SessionStorage) Delete(key string) error {
	return s.client.Del(context.Background(), sessionKeyPrefix+key)
}

func (s *SessionStorage) Reset() error {
	_, err := s.client.ScanAndDelete(context.Background(), sessionKeyPrefix+"*")
	return err
}

func (s *SessionStorage) Close() error {
	// The shared client is closed by the container.
	return nil
}
