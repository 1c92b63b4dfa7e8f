// Package config loads the impostor.hcl application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "impostor.hcl"

// Config represents the complete application configuration
type Config struct {
	Game    GameSettings    `hcl:"game,block"`
	Storage StorageSettings `hcl:"storage,block"`
	Log     LogSettings     `hcl:"log,block"`
}

// GameSettings holds the defaults shown on the setup screen
type GameSettings struct {
	Players   []string `hcl:"players,optional"`
	Impostors int      `hcl:"impostors,optional"`
	Hints     *bool    `hcl:"hints,optional"`
	Chaos     bool     `hcl:"chaos,optional"`
	Custom    bool     `hcl:"custom_words,optional"`
}

// HintsEnabled reports the hints default, which is on unless disabled.
func (g GameSettings) HintsEnabled() bool {
	return g.Hints == nil || *g.Hints
}

// StorageSettings locates the local data files
type StorageSettings struct {
	WordsFile  string `hcl:"words_file,optional"`
	GroupsFile string `hcl:"groups_file,optional"`
}

// LogSettings configures the debug log
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// fileConfig mirrors Config with optional blocks.
type fileConfig struct {
	Game    *GameSettings    `hcl:"game,block"`
	Storage *StorageSettings `hcl:"storage,block"`
	Log     *LogSettings     `hcl:"log,block"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Game: GameSettings{
			Players:   []string{"Ana", "Berto", "Carla", "David"},
			Impostors: 1,
		},
		Storage: StorageSettings{
			WordsFile:  filepath.Join(DataDir(), "words.hcl"),
			GroupsFile: filepath.Join(DataDir(), "groups.hcl"),
		},
		Log: LogSettings{
			Level: "info",
			File:  "impostor.log",
		},
	}
}

// DataDir returns the directory holding the word bank and player groups.
func DataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "impostor")
	}
	return ".impostor"
}

// Load reads configuration from an HCL file. A missing file yields DefaultConfig.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := DefaultConfig()
	if fc.Game != nil {
		config.Game = *fc.Game
		if len(config.Game.Players) == 0 {
			config.Game.Players = DefaultConfig().Game.Players
		}
		if config.Game.Impostors == 0 {
			config.Game.Impostors = 1
		}
	}
	if fc.Storage != nil {
		if fc.Storage.WordsFile != "" {
			config.Storage.WordsFile = fc.Storage.WordsFile
		}
		if fc.Storage.GroupsFile != "" {
			config.Storage.GroupsFile = fc.Storage.GroupsFile
		}
	}
	if fc.Log != nil {
		if fc.Log.Level != "" {
			config.Log.Level = fc.Log.Level
		}
		if fc.Log.File != "" {
			config.Log.File = fc.Log.File
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return config, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if c.Game.Impostors < 1 {
		return fmt.Errorf("impostors must be at least 1, got %d", c.Game.Impostors)
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return log.InfoLevel
	}
	return level
}
