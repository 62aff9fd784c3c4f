package config

import (
	"log/slog"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
)

// Config only tunes diagnostics on stderr. It never changes what the
// command prints on stdout or its exit status.
type Config struct {
	AppEnv   string
	LogLevel slog.Level
}

// envLevel has no UnmarshalText, so the env FuncMap entry below is the only
// parser applied to LOG_LEVEL.
type envLevel slog.Level

type envConfig struct {
	AppEnv   string   `env:"APP_ENV" envDefault:"dev"`
	LogLevel envLevel `env:"LOG_LEVEL" envDefault:"info"`
}

var appEnvs = []string{"dev", "prod"}

var logLevels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// Default is the configuration used when nothing is set in the environment.
func Default() Config {
	return Config{
		AppEnv:   "dev",
		LogLevel: slog.LevelInfo,
	}
}

// Load is LoadFromEnv for the command: on error it still returns Default()
// so the caller can warn and carry on.
func Load() (Config, error) {
	cfg, err := LoadFromEnv()
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}

func LoadFromEnv() (Config, error) {
	var ec envConfig
	err := env.ParseWithOptions(&ec, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(envLevel(0)): parseEnvLevel,
		},
	})
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to parse environment")
	}

	// Whitespace-only values count as unset.
	appEnv := strings.TrimSpace(ec.AppEnv)
	if appEnv == "" {
		appEnv = Default().AppEnv
	}
	if !isAllowed(appEnv) {
		return Config{}, errors.Newf("invalid APP_ENV %q (allowed: %s)", appEnv, strings.Join(appEnvs, ", "))
	}

	return Config{
		AppEnv:   appEnv,
		LogLevel: slog.Level(ec.LogLevel),
	}, nil
}

func isAllowed(appEnv string) bool {
	for _, e := range appEnvs {
		if e == appEnv {
			return true
		}
	}
	return false
}

func parseEnvLevel(v string) (any, error) {
	if strings.TrimSpace(v) == "" {
		return envLevel(Default().LogLevel), nil
	}
	level, err := parseLogLevel(v)
	return envLevel(level), err
}

// parseLogLevel is case-insensitive and accepts "warning" as an alias of
// "warn". Unknown names yield slog.LevelInfo and an error.
func parseLogLevel(s string) (slog.Level, error) {
	level, ok := logLevels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return slog.LevelInfo, errors.Newf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
	return level, nil
}
