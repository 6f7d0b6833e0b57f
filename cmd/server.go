package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"bookapi/config"
	"bookapi/config/logger"
)

func newHTTPServer(cfg *config.Config, routes *gin.Engine) *http.Server {
	return &http.Server{
		Addr:    cfg.Address(),
		Handler: routes,
	}
}

// registerServer starts the HTTP server with the application and drains it on shutdown
func registerServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, routes *gin.Engine, log logger.Logger) {
	server := newHTTPServer(cfg, routes)
	log = log.WithComponent("SERVER")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}

			log.Info().Msgf("Server running on %s", cfg.BaseURL())
			log.Info().Msg("API Endpoints:")
			for _, route := range routes.Routes() {
				log.Info().Msgf("  %-7s%s", route.Method, route.Path)
			}

			go func() {
				if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("HTTP server stopped")
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down server")
			return server.Shutdown(ctx)
		},
	})
}
