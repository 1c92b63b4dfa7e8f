package game

import (
	"github.com/lox/impostor/internal/randutil"
	"github.com/lox/impostor/internal/words"
)

// ChaosKind records whether a chaos round overrode the impostor count.
type ChaosKind int

const (
	ChaosNone ChaosKind = iota
	ChaosAllImpostors
	ChaosAllInnocent
)

func (k ChaosKind) String() string {
	switch k {
	case ChaosNone:
		return "none"
	case ChaosAllImpostors:
		return "all-impostors"
	case ChaosAllInnocent:
		return "all-innocent"
	default:
		return "unknown"
	}
}

// Assignment is the outcome of AssignRoles.
type Assignment struct {
	Players []Player
	Chaos   ChaosKind
	// Hints is the hint sequence in the order impostors appear. It is filled
	// even when hints are disabled and nothing is attached to the players.
	Hints []string
}

// Impostors returns the number of impostors in the assignment.
func (a Assignment) Impostors() int {
	n := 0
	for _, p := range a.Players {
		if p.IsImpostor {
			n++
		}
	}
	return n
}

// AssignRoles partitions cfg's players into impostors and innocents and hands
// out the secret word or a hint. Player i of the result is cfg.PlayerNames[i]
// with ID i+1. The only side effect is consuming randomness from rng.
func AssignRoles(cfg Config, entry words.Entry, rng randutil.Source) (Assignment, error) {
	if reason := cfg.problem(); reason != "" {
		return Assignment{}, &ConfigError{
			Players:       len(cfg.PlayerNames),
			ImpostorCount: cfg.ImpostorCount,
			Reason:        reason,
		}
	}

	n := len(cfg.PlayerNames)
	chaos := ChaosNone
	if cfg.ChaosMode && rng.Float64() < ChaosProbability {
		chaos = ChaosAllInnocent
		if rng.IntN(2) == 0 {
			chaos = ChaosAllImpostors
		}
	}

	roles := make([]bool, n)
	switch chaos {
	case ChaosAllImpostors:
		for i := range roles {
			roles[i] = true
		}
	case ChaosAllInnocent:
	case ChaosNone:
		for i := 0; i < cfg.ImpostorCount; i++ {
			roles[i] = true
		}
		rng.Shuffle(n, func(i, j int) {
			roles[i], roles[j] = roles[j], roles[i]
		})
	}

	impostors := 0
	for _, imp := range roles {
		if imp {
			impostors++
		}
	}
	hints := drawHints(rng, entry.Hints(), impostors)

	word := entry.Word()
	players := make([]Player, n)
	next := 0
	for i, isImpostor := range roles {
		p := Player{ID: i + 1, Name: cfg.PlayerNames[i], IsImpostor: isImpostor}
		if isImpostor {
			if cfg.HintsEnabled {
				h := hints[next]
				p.Hint = &h
			}
			next++
		} else {
			w := word
			p.Word = &w
		}
		players[i] = p
	}

	return Assignment{Players: players, Chaos: chaos, Hints: hints}, nil
}

// drawHints returns k hints: distinct ones while the pool lasts, then uniform
// draws with replacement.
func drawHints(rng randutil.Source, pool []string, k int) []string {
	if k == 0 || len(pool) == 0 {
		return nil
	}
	hints := randutil.Sample(rng, pool, k)
	for len(hints) < k {
		hints = append(hints, randutil.Choice(rng, pool))
	}
	return hints
}
