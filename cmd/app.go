package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"bookapi/cache"
	"bookapi/config"
	"bookapi/config/logger"
	"bookapi/db"
	"bookapi/service"
)

var ErrAbnormalShutdown = errors.New("application stopped abnormally")

// appOptions wires every module of the service together
func appOptions(cfg *config.Config) fx.Option {
	gin.SetMode(cfg.GinMode)

	return fx.Options(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg),
		logger.Module,
		db.Module,
		cache.Module,
		service.Module,
		fx.Invoke(registerServer),
	)
}

func createApp(cfg *config.Config) *fx.App {
	return fx.New(appOptions(cfg))
}

func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stdout}
		}

		return fxevent.NopLogger
	}
}

// runApp starts the application, blocks until a shutdown signal and stops it.
// Construction and start errors are returned instead of exiting the process.
func runApp(app *fx.App) error {
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		return err
	}

	signal := <-app.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()

	if err := app.Stop(stopCtx); err != nil {
		return err
	}

	if signal.ExitCode != 0 {
		return fmt.Errorf("%w: exit code %d", ErrAbnormalShutdown, signal.ExitCode)
	}

	return nil
}
