package config

// app constants
const (
	AppName = "bookapi"
	Version = "1.0.0"

	DefaultPort    = 3000
	DefaultGinMode = "release"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// cache constants
const (
	DefaultMaxRequestsCached = 3
)

// search constants
const (
	DefaultElasticIndex = "books"
)

// environment keys
const (
	EnvPort              = "PORT"
	EnvGinMode           = "GIN_MODE"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvRedisURL          = "REDIS_URL"
	EnvMaxRequestsCached = "MAX_REQUESTS_CACHED"
	EnvElasticURL        = "ELASTIC_URL"
	EnvElasticIndex      = "ELASTIC_INDEX"
)
