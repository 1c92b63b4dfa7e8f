package game

// Role is a player's side in a round
type Role string

const (
	RoleImpostor Role = "IMPOSTOR"
	RoleInnocent Role = "INNOCENT"
)

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// Player is one seat of a round. Exactly one of Word and Hint is set for
// non-impostors and hinted impostors; impostors without hints get neither.
type Player struct {
	ID         int // 1-based, stable for the round
	Name       string
	IsImpostor bool
	Word       *string
	Hint       *string
}

// Role returns the player's side.
func (p Player) Role() Role {
	if p.IsImpostor {
		return RoleImpostor
	}
	return RoleInnocent
}

// clone returns a copy that shares no pointers with p.
func (p Player) clone() Player {
	if p.Word != nil {
		w := *p.Word
		p.Word = &w
	}
	if p.Hint != nil {
		h := *p.Hint
		p.Hint = &h
	}
	return p
}
