// simulate plays cavecrawl headlessly with the autopilot and prints the
// narration as it happens.
//
//	go run ./cmd/simulate -seed 7 -turns 500
package main

import (
	"cavecrawl/internal/config"
	"cavecrawl/internal/game"
	"cavecrawl/internal/telemetry"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

var (
	colorFloor  = color.Style{color.FgCyan, color.OpBold}
	colorDanger = color.Style{color.FgRed, color.OpBold}
	colorItem   = color.Style{color.FgGreen}
	colorSubtle = color.Style{color.FgGray}
)

func main() {
	if err := run(); err != nil {
		colorDanger.Println("error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed (0 seeds from the clock)")
	turns := flag.Int("turns", 1000, "player intents to play before stopping")
	runs := flag.Int("runs", 1, "stop after this many finished runs")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		defer shutdown(context.Background())
	}
	gotext.Configure(cfg.LocaleDir, cfg.Locale, "default")

	rng := cfg.Rand()
	state := game.New(game.Options{Rand: rng, Logger: logger, MaxAttempts: cfg.MaxAttempts})
	pilot := game.NewAutopilot(rng)

	var seen []string
	finished := 0
	for i := 0; i < *turns && ctx.Err() == nil; i++ {
		last, layout := state.LastRun, state.Layout
		if err := state.Advance(ctx, pilot.Next(state)); err != nil {
			return err
		}
		if l := state.Layout; l != nil && l != layout {
			colorSubtle.Println(gotext.Get("(cave of %d cells in %d zones after %d attempts, size range %d-%d)",
				l.CaveSize, l.ZoneCount, l.Attempts, l.MinCave, l.MaxCave))
		}
		seen = printNew(seen, state.Logs.Lines())
		if state.LastRun != last {
			finished++
			printSummary(state.LastRun)
			if finished >= *runs {
				return nil
			}
		}
	}
	fmt.Println(gotext.Get("Stopped on floor %d at level %d after %d turns.", state.Data.Floor, state.Data.Level, state.Turns))
	return nil
}

// printNew prints the lines of logs (newest first) that were not in prev
// and returns the log as now shown.
func printNew(prev, logs []string) []string {
	n := len(logs)
	// The log only grows at the front, so find how much of prev survives.
	for k := range logs {
		if slices.Equal(logs[k:], prev[:min(len(prev), len(logs)-k)]) {
			n = k
			break
		}
	}
	for i := n - 1; i >= 0; i-- {
		styleFor(logs[i]).Println(logs[i])
	}
	return logs
}

func styleFor(line string) color.Style {
	switch {
	case strings.Contains(line, "floor") || strings.Contains(line, "descend"):
		return colorFloor
	case strings.Contains(line, "dies") || strings.Contains(line, "hits Player"):
		return colorDanger
	case strings.Contains(line, "picks up") || strings.Contains(line, "healed"):
		return colorItem
	}
	return colorSubtle
}

func printSummary(run *game.RunSummary) {
	style := colorItem
	outcome := gotext.Get("gave up")
	if run.Died {
		style, outcome = colorDanger, gotext.Get("died")
	}
	style.Println(gotext.Get("Run over: %s on floor %d at level %d after %d turns.", outcome, run.Floor, run.Level, run.Turns))
}
