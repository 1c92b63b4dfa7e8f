package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalTransition is wrapped by every TransitionError
	ErrIllegalTransition = errors.New("illegal transition")

	// ErrNoCustomWords is returned when confirming an empty custom word list
	ErrNoCustomWords = errors.New("custom word list is empty")

	// ErrUnknownPlayer is returned when naming a player outside the round
	ErrUnknownPlayer = errors.New("unknown player")

	// ErrNotRevealed is returned when reading the reveal before it happened
	ErrNotRevealed = errors.New("result not revealed yet")
)

// ConfigError is raised by AssignRoles when it is handed a config that never
// went through NewConfig. It is a programming fault, not user input.
type ConfigError struct {
	Players       int
	ImpostorCount int
	Reason        string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid round config (%d players, %d impostors): %s", e.Players, e.ImpostorCount, e.Reason)
}

// TransitionError reports an action that is not allowed in the current phase.
type TransitionError struct {
	Phase  Phase
	Action string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s during %s", e.Action, e.Phase)
}

func (e *TransitionError) Unwrap() error { return ErrIllegalTransition }
