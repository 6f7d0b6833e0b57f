package config

import "errors"

var (
	ErrFailedToLoadEnvFile = errors.New("failed to load .env file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrRedisUnavailable    = errors.New("redis is unavailable")
	ErrElasticUnavailable  = errors.New("elasticsearch is unavailable")
)
