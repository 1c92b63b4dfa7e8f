package game

import (
	"fmt"
	"strings"

	"github.com/lox/impostor/internal/words"
)

const (
	// MinPlayers is the minimum number of players required to start a round
	MinPlayers = 3

	// ChaosProbability is the chance a chaos-mode round overrides the impostor count
	ChaosProbability = 0.20
)

// ValidationError reports a malformed configuration submitted by the user.
type ValidationError = words.ValidationError

// Config is the configuration of a round. Display order of PlayerNames is the
// turn order. Build it with NewConfig; the Controller never accepts an
// unvalidated Config.
type Config struct {
	PlayerNames     []string
	ImpostorCount   int
	HintsEnabled    bool
	CustomWordsMode bool
	ChaosMode       bool
}

// NewConfig trims and validates a draft configuration.
func NewConfig(draft Config) (Config, error) {
	cfg := draft
	cfg.PlayerNames = make([]string, len(draft.PlayerNames))
	for i, name := range draft.PlayerNames {
		name = strings.TrimSpace(name)
		if name == "" {
			return Config{}, &ValidationError{
				Field:  "players",
				Reason: fmt.Sprintf("player %d has an empty name", i+1),
			}
		}
		cfg.PlayerNames[i] = name
	}

	if reason := cfg.problem(); reason != "" {
		field := "impostors"
		if len(cfg.PlayerNames) < MinPlayers {
			field = "players"
		}
		return Config{}, &ValidationError{Field: field, Reason: reason}
	}
	return cfg, nil
}

// TotalPlayers returns the number of players in the round.
func (c Config) TotalPlayers() int { return len(c.PlayerNames) }

// MaxImpostors returns the largest impostor count allowed for the player list.
func (c Config) MaxImpostors() int {
	return max(1, len(c.PlayerNames)-1)
}

// problem describes why the config cannot be played, or returns "".
func (c Config) problem() string {
	n := len(c.PlayerNames)
	switch {
	case n < MinPlayers:
		return fmt.Sprintf("at least %d players are required, got %d", MinPlayers, n)
	case c.ImpostorCount < 1:
		return fmt.Sprintf("at least 1 impostor is required, got %d", c.ImpostorCount)
	case c.ImpostorCount >= n:
		return fmt.Sprintf("impostors (%d) must be fewer than players (%d)", c.ImpostorCount, n)
	}
	return ""
}

// ParseNames splits newline separated names, trimming each and dropping blanks.
func ParseNames(raw string) []string {
	var names []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names
}
