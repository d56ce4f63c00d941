package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"rinseo/config"
	"rinseo/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore is the production Store backed by a Redis database.
var _ Store = (*RedisStore)(nil)

type RedisStore struct {
	client *redis.Client
}

// InitRedisStore connects to Redis using the app configuration and
// fails fast when the server is unreachable.
func InitRedisStore() *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStoreDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Store): %v", err)
	}
	return &RedisStore{client: client}
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		// Corrupt record: drop it and report absence.
		utils.GetLogger().Warn("Discarding undecodable stored value",
			zap.String("key", key), zap.Error(err))
		s.client.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, 0)
}

func (s *RedisStore) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %q: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
