package model

// EventType identifies the kind of event emitted after an action
type EventType string

const (
	// EventCounterTurn reports the automated player's move
	EventCounterTurn EventType = "counter_turn"
	// EventWon reports a terminal outcome. It is also emitted when a game
	// starts with the human to move, naming the player who moves first.
	EventWon EventType = "won"
)

// Event is the single reply to a start or an action.
// Pebbles is set for EventCounterTurn, Player for EventWon.
type Event struct {
	Type    EventType `json:"type"`
	Pebbles uint32    `json:"pebbles,omitempty"`
	Player  Player    `json:"player,omitempty"`
}

// CounterTurn creates an event for an automated move of n pebbles
func CounterTurn(n uint32) Event {
	return Event{Type: EventCounterTurn, Pebbles: n}
}

// Won creates an event naming p as the winner (or the first mover at start)
func Won(p Player) Event {
	return Event{Type: EventWon, Player: p}
}
