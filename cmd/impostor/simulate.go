package main

import (
	"context"
	"fmt"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/impostor/internal/game"
	"github.com/lox/impostor/internal/simulator"
	"github.com/lox/impostor/internal/words"
)

type SimulateCmd struct {
	Rounds    int      `default:"10000" help:"Number of rounds to simulate"`
	Players   []string `help:"Player names (defaults to config)" sep:","`
	Impostors int      `help:"Number of impostors (defaults to config)"`
	Chaos     bool     `help:"Enable chaos rounds"`
	NoHints   bool     `help:"Impostors get no hint"`
	Workers   int      `default:"0" help:"Parallel workers (0 for NumCPU)"`
	Seed      int64    `default:"0" help:"RNG seed (0 for time based)"`
	Verbose   bool     `short:"V" help:"Verbose logging"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}

	level := log.InfoLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := stderrLogger(level)

	players := cfg.Game.Players
	if len(c.Players) > 0 {
		players = c.Players
	}
	impostors := cfg.Game.Impostors
	if c.Impostors > 0 {
		impostors = c.Impostors
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting simulation", "rounds", c.Rounds, "players", len(players), "impostors", impostors, "seed", seed)
	stats, err := simulator.Run(ctx, simulator.Config{
		Rounds:  c.Rounds,
		Workers: workers,
		Seed:    seed,
		Game: game.Config{
			PlayerNames:   players,
			ImpostorCount: impostors,
			HintsEnabled:  cfg.Game.HintsEnabled() && !c.NoHints,
			ChaosMode:     c.Chaos || cfg.Game.Chaos,
		},
		Bank:   words.NewStaticBank(),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	_, err = fmt.Fprint(g.out(), stats.String())
	return err
}
