package game

import (
	"time"

	"github.com/lox/impostor/internal/words"
)

// RoundSession is the state of one round. A fresh session is built every time
// a round starts; sessions are never reset in place.
type RoundSession struct {
	ID                 string
	Players            []Player
	CurrentPlayerIndex int
	SelectedWord       words.Entry
	RoundStart         *time.Time // set once, when the last card has been seen
	StartingPlayerName string
	RevealDone         bool

	Chaos ChaosKind
	// UsedFallback is set when custom words were requested but the custom
	// list was empty and a default word was used.
	UsedFallback bool
	// Hints is the hint sequence drawn for the impostors, attached or not.
	Hints []string
}

// Impostors returns the impostor players in turn order.
func (s *RoundSession) Impostors() []Player {
	return s.filter(true)
}

// Innocents returns the non-impostor players in turn order.
func (s *RoundSession) Innocents() []Player {
	return s.filter(false)
}

// DistributionDone reports whether every player has seen their card.
func (s *RoundSession) DistributionDone() bool {
	return s.CurrentPlayerIndex >= len(s.Players)
}

func (s *RoundSession) filter(impostor bool) []Player {
	var out []Player
	for _, p := range s.Players {
		if p.IsImpostor == impostor {
			out = append(out, p.clone())
		}
	}
	return out
}

func (s *RoundSession) clone() *RoundSession {
	cp := *s
	cp.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		cp.Players[i] = p.clone()
	}
	cp.Hints = append([]string(nil), s.Hints...)
	if s.RoundStart != nil {
		t := *s.RoundStart
		cp.RoundStart = &t
	}
	return &cp
}
