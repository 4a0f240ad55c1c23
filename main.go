// cavecrawl is a turn-based cave crawler for the terminal.
//
//	go run . [-seed N]
//
// Settings come from .env and CAVECRAWL_* environment variables; see
// internal/config.
package main

import (
	"cavecrawl/internal/config"
	"cavecrawl/internal/game"
	"cavecrawl/internal/telemetry"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/leonelquinteros/gotext"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed (0 seeds from the clock)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The terminal owns stdout, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		defer shutdown(context.Background())
	}
	gotext.Configure(cfg.LocaleDir, cfg.Locale, "default")

	state := game.New(game.Options{
		Rand:        cfg.Rand(),
		Logger:      logger,
		MaxAttempts: cfg.MaxAttempts,
	})
	term, err := game.NewTerminal(state)
	if err != nil {
		return err
	}
	logger.Info("starting", "seed", cfg.Seed, "locale", cfg.Locale)
	if err := term.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
