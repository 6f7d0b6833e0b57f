package config

import (
	"fmt"

	"gopkg.in/redis.v5"
)

// NewRedisClient connects to the configured Redis and verifies it answers
func NewRedisClient(cfg *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.URL,
	})

	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}

	return client, nil
}
