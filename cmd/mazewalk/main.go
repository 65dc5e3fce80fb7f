// Package main is the entry point for mazewalk.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/mazewalk/internal/audio"
	"github.com/samdwyer/mazewalk/internal/audio/beepaudio"
	"github.com/samdwyer/mazewalk/internal/game"
	"github.com/samdwyer/mazewalk/internal/gamedata"
	"github.com/samdwyer/mazewalk/internal/snapshot"
	"github.com/samdwyer/mazewalk/internal/telemetry"
	"github.com/samdwyer/mazewalk/internal/ui"
)

// Exit codes, one per startup failure site.
const (
	exitOK       = 0
	exitScreen   = 2
	exitAudio    = 5
	exitData     = 10
	exitConfig   = 11
	exitGenerate = 12
	exitSnapshot = 20
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, snapshotPath, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazewalk: %v\n", err)
		return exitConfig
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracing := setupOTelEnv()
	shutdown, err := telemetry.Setup(ctx, tracing)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	tuning, err := gamedata.LoadTuning()
	if err == nil && cfg.TuningFile != "" {
		tuning, err = gamedata.LoadTuningFile(cfg.TuningFile, tuning)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazewalk: load tuning: %v\n", err)
		return exitData
	}
	registry, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazewalk: load enemies: %v\n", err)
		return exitData
	}
	if cfg.EnemyKind != "" {
		if registry, err = registry.Only(cfg.EnemyKind); err != nil {
			fmt.Fprintf(os.Stderr, "mazewalk: %v\n", err)
			return exitConfig
		}
	}

	if snapshotPath != "" {
		return writeSnapshot(ctx, cfg, tuning, registry, snapshotPath)
	}

	var sounds audio.Trigger = audio.Nop{}
	if cfg.Audio {
		manager := beepaudio.NewManager()
		if err := manager.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "mazewalk: %v (set %s=false to play without sound)\n", err, game.EnvAudio)
			return exitAudio
		}
		defer manager.Close()
		sounds = manager
	}

	state, err := game.NewState(ctx, cfg, tuning, registry, sounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazewalk: %v\n", err)
		return exitGenerate
	}

	screen, err := ui.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazewalk: failed to initialize screen: %v\n", err)
		return exitScreen
	}

	// Anything logged while the screen is up would corrupt it.
	restoreLog := redirectLog(cfg.LogFile)
	g := game.New(screen, state, sounds, cfg.FrameInterval)

	if cfg.TuningFile != "" {
		updates, err := gamedata.WatchTuning(ctx, cfg.TuningFile, tuning)
		if err != nil {
			log.Printf("Warning: not watching %s: %v", cfg.TuningFile, err)
		} else {
			g.WatchTuning(updates)
		}
	}

	runErr := g.Run(ctx)
	restoreLog()
	if runErr != nil {
		log.Printf("Game error: %v", runErr)
	}

	fmt.Printf("Defeated %d of %d enemies in %d ticks (seed %d)\n",
		state.Defeated(), len(state.Maze.Enemies), state.Tick, state.Seed)
	return exitOK
}

// loadConfig reads the MAZEWALK_* environment and lets flags override it.
// It also returns the -snapshot path, if any.
func loadConfig(args []string) (game.Config, string, error) {
	cfg, err := game.ConfigFromEnv(os.Getenv)
	if err != nil {
		return cfg, "", err
	}

	fs := flag.NewFlagSet("mazewalk", flag.ContinueOnError)
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	fs.IntVar(&cfg.Cells, "cells", cfg.Cells, "number of maze cells to generate")
	fs.IntVar(&cfg.Enemies, "enemies", cfg.Enemies, "number of enemies to spawn")
	fs.StringVar(&cfg.EnemyKind, "kind", cfg.EnemyKind, "spawn only this enemy kind (crawler, shambler, skitter)")
	view := fs.String("view", cfg.View.String(), "view mode: first-person or top-down")
	snapshotPath := fs.String("snapshot", "", "write the generated maze to this image file and exit")
	if err := fs.Parse(args); err != nil {
		return cfg, "", err
	}

	mode, err := ui.ParseViewMode(*view)
	if err != nil {
		return cfg, "", err
	}
	cfg.View = mode

	cfg = cfg.Normalized()
	return cfg, *snapshotPath, cfg.Validate()
}

// writeSnapshot generates the maze and saves it as an image instead of
// playing.
func writeSnapshot(ctx context.Context, cfg game.Config, tuning gamedata.Tuning, registry *gamedata.EnemyRegistry, path string) int {
	state, err := game.NewState(ctx, cfg, tuning, registry, audio.Nop{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazewalk: %v\n", err)
		return exitGenerate
	}
	if err := snapshot.Write(path, state.Maze, snapshot.DefaultOptions()); err != nil {
		fmt.Fprintf(os.Stderr, "mazewalk: %v\n", err)
		return exitSnapshot
	}
	fmt.Printf("Wrote %dx%d maze with %d cells to %s (seed %d)\n",
		state.Maze.Width, state.Maze.Height, state.Maze.CellCount(), path, state.Seed)
	return exitOK
}

// redirectLog sends log output to path, or discards it when path is empty.
// The returned function restores stderr.
func redirectLog(path string) func() {
	var out io.Writer = io.Discard
	var file *os.File
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Printf("Warning: cannot open log file %s: %v", path, err)
		} else {
			file = f
			out = f
		}
	}
	log.SetOutput(out)

	return func() {
		log.SetOutput(os.Stderr)
		if file != nil {
			file.Close()
		}
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env
// vars and reports whether tracing has somewhere to go.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_MAZEWALK_API_KEY")
	if apiKey == "" {
		return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
	}

	dataset := os.Getenv("HONEYCOMB_MAZEWALK_DATASET")
	if dataset == "" {
		dataset = "mazewalk"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
