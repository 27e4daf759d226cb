// Package logs builds the process-wide slog logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"inventory/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the logger, installs it as slog's default and tags every record
// with the service name and environment.
func New(params Params) (*slog.Logger, error) {
	env := params.Config.Env

	handler, err := newHandler(os.Stdout, env.Log, env.Debug)
	if err != nil {
		return nil, err
	}

	logger := slog.New(handler).With(
		slog.String("service", env.ServiceName),
		slog.String("env", env.Env),
	)
	slog.SetDefault(logger)

	return logger, nil
}

// newHandler writes text when pretty is set and JSON otherwise. Debug mode adds
// the source location.
func newHandler(w io.Writer, cfg config.Log, debug bool) (slog.Handler, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: debug}
	if cfg.Pretty {
		return slog.NewTextHandler(w, opts), nil
	}

	return slog.NewJSONHandler(w, opts), nil
}

// parseLogLevel accepts debug, info, warn(ing) and error in any case; empty is info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
