package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the service configuration
type Config struct {
	Port    int
	GinMode string
	Logging struct {
		Level  string
		Format string
	}
	Redis struct {
		URL               string
		MaxRequestsCached int
	}
	Elastic struct {
		URL   string
		Index string
	}
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() *Config {
	cfg := &Config{
		Port:    DefaultPort,
		GinMode: DefaultGinMode,
	}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Redis.MaxRequestsCached = DefaultMaxRequestsCached

	cfg.Elastic.Index = DefaultElasticIndex

	return cfg
}

// NewViper returns a viper instance bound to the service environment with defaults applied
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(EnvPort, DefaultPort)
	v.SetDefault(EnvGinMode, DefaultGinMode)
	v.SetDefault(EnvLogLevel, DefaultLogLevel)
	v.SetDefault(EnvLogFormat, DefaultLogFormat)
	v.SetDefault(EnvRedisURL, "")
	v.SetDefault(EnvMaxRequestsCached, DefaultMaxRequestsCached)
	v.SetDefault(EnvElasticURL, "")
	v.SetDefault(EnvElasticIndex, DefaultElasticIndex)

	v.AutomaticEnv()

	return v
}

// Load reads an optional .env file and builds the configuration from the environment
func Load(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadEnvFile, err)
	}

	return FromViper(v)
}

// FromViper builds the configuration from already populated viper settings
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	cfg.Port = v.GetInt(EnvPort)
	cfg.GinMode = v.GetString(EnvGinMode)
	cfg.Logging.Level = v.GetString(EnvLogLevel)
	cfg.Logging.Format = v.GetString(EnvLogFormat)
	cfg.Redis.URL = v.GetString(EnvRedisURL)
	cfg.Redis.MaxRequestsCached = v.GetInt(EnvMaxRequestsCached)
	cfg.Elastic.URL = v.GetString(EnvElasticURL)
	cfg.Elastic.Index = v.GetString(EnvElasticIndex)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}

	if c.Redis.MaxRequestsCached <= 0 {
		return fmt.Errorf("max requests cached must be positive, got %d", c.Redis.MaxRequestsCached)
	}

	if c.Elastic.URL != "" && c.Elastic.Index == "" {
		return errors.New("elastic index is required when elastic url is set")
	}

	return nil
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// BaseURL returns the local URL the server is reachable at
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}
