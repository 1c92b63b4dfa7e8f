package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/impostor/internal/config"
	"github.com/lox/impostor/internal/game"
	"github.com/lox/impostor/internal/store"
	"github.com/lox/impostor/internal/tui"
)

type PlayCmd struct {
	Players   []string `help:"Player names in turn order (overrides config)" sep:","`
	Impostors int      `help:"Number of impostors (overrides config)"`
	NoHints   bool     `help:"Impostors get no hint"`
	Chaos     bool     `help:"Enable chaos rounds"`
	Custom    bool     `help:"Play with the custom word bank"`
	NoColor   bool     `help:"Disable colors"`
	LogFile   string   `help:"Debug log file ('-' disables)" type:"path"`
	LogLevel  string   `help:"Debug log level (debug, info, warn, error)"`
}

func (c *PlayCmd) defaults(cfg *config.Config) tui.Defaults {
	d := tui.Defaults{
		Players:   cfg.Game.Players,
		Impostors: cfg.Game.Impostors,
		Hints:     cfg.Game.HintsEnabled(),
		Chaos:     cfg.Game.Chaos,
		Custom:    cfg.Game.Custom,
	}
	if len(c.Players) > 0 {
		d.Players = c.Players
	}
	if c.Impostors > 0 {
		d.Impostors = c.Impostors
	}
	if c.NoHints {
		d.Hints = false
	}
	if c.Chaos {
		d.Chaos = true
	}
	if c.Custom {
		d.Custom = true
	}
	return d
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := openLogFile(cfg.Log.File, cfg.LogLevel())
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}()

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	clock := quartz.NewReal()
	wordStore := store.NewWordStore(cfg.Storage.WordsFile, clock)
	groupStore := store.NewGroupStore(cfg.Storage.GroupsFile, clock)
	logger.Info("Starting game", "words", wordStore.Path(), "groups", groupStore.Path())

	ctrl := game.NewController(wordStore,
		game.WithClock(clock),
		game.WithLogger(logger))
	ctrl.Subscribe(func(e game.Event) {
		logger.Debug("Phase changed", "from", e.From, "to", e.To, "session", e.SessionID)
	})

	model := tui.New(ctrl, tui.Options{
		Words:    wordStore,
		Groups:   groupStore,
		Logger:   logger,
		Defaults: c.defaults(cfg),
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	logger.Info("Game closed")
	return nil
}
