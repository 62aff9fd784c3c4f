package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"

	"phonon-hexfmt/internal/app"
	"phonon-hexfmt/internal/config"
	"phonon-hexfmt/internal/logging"
)

// Default version is "dev" if not set with -ldflags "-X main.version=..."
var version = "dev"
var appName = "phonon-hexfmt"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit status. Bad APP_ENV or LOG_LEVEL values only
// produce a warning on stderr.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, cfgErr := config.Load()

	logger := logging.NewWithWriter(stderr, cfg, version, appName)
	slog.SetDefault(logger)

	if cfgErr != nil {
		slog.Warn("config error, using defaults", "err", cfgErr)
	}

	slog.Debug("starting",
		"app", appName,
		"version", version,
		"env", cfg.AppEnv,
		"log_level", cfg.LogLevel.String(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code, err := app.Run(ctx, args, stdout)
	switch {
	case errors.Is(err, app.ErrMissingArgument):
		slog.Debug("usage printed", "err", err)
	case err != nil:
		slog.Error("run failed", "err", err)
	}
	return code
}
