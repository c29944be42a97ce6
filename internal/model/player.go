package model

// Player identifies one of the two sides of a game
type Player string

const (
	PlayerHuman     Player = "human"
	PlayerAutomated Player = "automated"
)

// Opponent returns the other side
func (p Player) Opponent() Player {
	if p == PlayerHuman {
		return PlayerAutomated
	}
	return PlayerHuman
}

// Valid returns true if p is a known player
func (p Player) Valid() bool {
	return p == PlayerHuman || p == PlayerAutomated
}

// DisplayName returns a human-readable label for the player
func (p Player) DisplayName() string {
	switch p {
	case PlayerHuman:
		return "You"
	case PlayerAutomated:
		return "Computer"
	default:
		return string(p)
	}
}
