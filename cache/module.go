package cache

import (
	"go.uber.org/fx"

	"bookapi/config"
	"bookapi/config/logger"
)

// Module provides the request cacher, Redis backed when REDIS_URL is set
var Module = fx.Module("cache",
	fx.Provide(newRequestCacher),
)

func newRequestCacher(cfg *config.Config, log logger.Logger) (RequestCacher, error) {
	if cfg.Redis.URL == "" {
		log.Info().Msg("REDIS_URL not set, caching user activity in memory")
		return CreateMemoryCache(cfg.Redis.MaxRequestsCached), nil
	}

	client, err := config.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return CreateRedisCache(cfg.Redis.MaxRequestsCached, client), nil
}
