package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"bookapi/config"
)

const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
	TraceLevel = "trace"

	ConsoleFormat = "console"
	JSONFormat    = "json"

	TimeFormat = "2006-01-02 15:04:05"
)

// Logger is the logging surface used across the service
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	WithComponent(name string) Logger
}

// AppLogger is the zerolog backed Logger
type AppLogger struct {
	log zerolog.Logger
}

// NewLogger creates a logger writing to stdout
func NewLogger(cfg *config.Config) Logger {
	return NewLoggerWithOutput(cfg, nil)
}

// NewLoggerWithOutput creates a logger writing to out, or to stdout when out is nil
func NewLoggerWithOutput(cfg *config.Config, out io.Writer) Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if out == nil {
		if cfg.Logging.Format == JSONFormat {
			out = os.Stdout
		} else {
			out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: TimeFormat}
		}
	}

	log := zerolog.
		New(out).
		Level(getLogLevel(cfg.Logging.Level)).
		With().
		Timestamp().
		Str("version", config.Version).
		Logger()

	return &AppLogger{log: log}
}

// Nop returns a logger that discards everything
func Nop() Logger {
	return &AppLogger{log: zerolog.Nop()}
}

func (l *AppLogger) Debug() *zerolog.Event {
	return l.log.Debug()
}

func (l *AppLogger) Info() *zerolog.Event {
	return l.log.Info()
}

func (l *AppLogger) Warn() *zerolog.Event {
	return l.log.Warn()
}

func (l *AppLogger) Error() *zerolog.Event {
	return l.log.Error()
}

// WithComponent tags every entry with the component name
func (l *AppLogger) WithComponent(name string) Logger {
	return &AppLogger{
		log: l.log.With().Str("component", name).Logger(),
	}
}

func getLogLevel(level string) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case TraceLevel:
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}
