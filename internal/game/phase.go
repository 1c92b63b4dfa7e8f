package game

import "fmt"

// Phase is the current step of the round lifecycle
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseCustomWords
	PhaseRoleDistribution
	PhaseGameActive
	PhaseVoting
)

// Phases lists every phase in lifecycle order.
func Phases() []Phase {
	return []Phase{PhaseSetup, PhaseCustomWords, PhaseRoleDistribution, PhaseGameActive, PhaseVoting}
}

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "SETUP"
	case PhaseCustomWords:
		return "CUSTOM_WORDS"
	case PhaseRoleDistribution:
		return "ROLE_DISTRIBUTION"
	case PhaseGameActive:
		return "GAME_ACTIVE"
	case PhaseVoting:
		return "VOTING"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Valid reports whether p is one of the five lifecycle phases.
func (p Phase) Valid() bool {
	return p >= PhaseSetup && p <= PhaseVoting
}
