package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"clinicdesk/config"
)

const sessionKey = "authSession:clinicdesk"

// RedisStore keeps the session record in Redis, for deployments where
// several front-desk terminals share one signed-in workstation profile.
// Same single-record contract as FileStore.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Load() ([]byte, error) {
	ctx := context.Background()
	data, err := s.client.Get(ctx, sessionKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Save(data []byte) error {
	ctx := context.Background()
	return s.client.Set(ctx, sessionKey, data, 0).Err()
}

func (s *RedisStore) Clear() error {
	ctx := context.Background()
	return s.client.Del(ctx, sessionKey).Err()
}
