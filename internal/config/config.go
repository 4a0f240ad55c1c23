// Package config resolves runtime settings from an optional .env file and
// the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the terminal frontend and the
// headless runner. Command-line flags override these after Load.
type Config struct {
	Seed        int64 // 0 means seed from the clock
	Locale      string
	LocaleDir   string
	LogFile     string
	LogLevel    slog.Level
	Telemetry   bool
	MaxAttempts int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Locale:      "en_US",
		LocaleDir:   "locales",
		LogLevel:    slog.LevelInfo,
		MaxAttempts: 200,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// environment without overriding variables already set, then parses the
// CAVECRAWL_* variables. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv parses settings through lookup, which has the os.LookupEnv shape.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if v, ok := lookup("CAVECRAWL_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("CAVECRAWL_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup("CAVECRAWL_LOCALE"); ok && v != "" {
		cfg.Locale = v
	}
	if v, ok := lookup("CAVECRAWL_LOCALE_DIR"); ok && v != "" {
		cfg.LocaleDir = v
	}
	if v, ok := lookup("CAVECRAWL_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup("CAVECRAWL_LOG_LEVEL"); ok && v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("CAVECRAWL_LOG_LEVEL: %w", err)
		}
	}
	if v, ok := lookup("CAVECRAWL_TELEMETRY"); ok && v != "" {
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("CAVECRAWL_TELEMETRY: %w", err)
		}
		cfg.Telemetry = on
	}
	if v, ok := lookup("CAVECRAWL_MAX_ATTEMPTS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("CAVECRAWL_MAX_ATTEMPTS: %w", err)
		}
		if n < 1 {
			return Config{}, fmt.Errorf("CAVECRAWL_MAX_ATTEMPTS must be positive, got %d", n)
		}
		cfg.MaxAttempts = n
	}
	return cfg, nil
}

// Rand returns the generator for a run: seeded from Seed, or from the clock
// when Seed is 0.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
