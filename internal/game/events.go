package game

import "time"

// Event is published whenever the controller changes phase.
type Event struct {
	From      Phase
	To        Phase
	SessionID string // empty while no round exists
	Timestamp time.Time
}

// Listener receives controller events. Listeners run synchronously inside the
// transition that produced the event and must not call back into the controller.
type Listener func(Event)
