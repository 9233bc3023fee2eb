// Package config parses CLI flags and environment variables for fuzzypick.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config captures runtime configuration for the fuzzypick command.
type Config struct {
	Ranker  string
	Height  int
	Logging Logging
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	// RankerSkim selects the bonus-based default scorer.
	RankerSkim = "skim"
	// RankerDistance selects the edit-distance scorer.
	RankerDistance = "distance"
)

const (
	envRanker  = "FUZZYPICK_RANKER"
	envHeight  = "FUZZYPICK_HEIGHT"
	envTrace   = "FUZZYPICK_TRACE"
	envLogFile = "FUZZYPICK_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("fuzzypick", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	ranker := fs.String("ranker", envOrDefault(env, envRanker, RankerSkim), "scoring strategy: skim or distance")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "list height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Ranker: *ranker,
		Height: *height,
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Args: append([]string(nil), fs.Args()...),
	}
	return cfg, nil
}

// Validate rejects configurations the command cannot run with.
func Validate(cfg Config) error {
	switch cfg.Ranker {
	case RankerSkim, RankerDistance:
	default:
		return fmt.Errorf("unknown ranker %q (want %s or %s)", cfg.Ranker, RankerSkim, RankerDistance)
	}
	if cfg.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.Height)
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	if v, ok := env[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	if v, ok := env[key]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return fallback
}
