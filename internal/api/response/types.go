package response

import (
	"time"

	"github.com/mcoot/pebbles-game/internal/model"
)

// Event represents a game event
type Event struct {
	Type    string `json:"type"`
	Pebbles uint32 `json:"pebbles,omitempty"`
	Player  string `json:"player,omitempty"`
}

// EventFromModel converts a model.Event to a response Event
func EventFromModel(e model.Event) Event {
	return Event{
		Type:    string(e.Type),
		Pebbles: e.Pebbles,
		Player:  string(e.Player),
	}
}

// GameState represents the game snapshot
type GameState struct {
	PebblesCount      uint32    `json:"pebbles_count"`
	MaxPebblesPerTurn uint32    `json:"max_pebbles_per_turn"`
	PebblesRemaining  uint32    `json:"pebbles_remaining"`
	Difficulty        string    `json:"difficulty"`
	FirstPlayer       string    `json:"first_player"`
	CurrentPlayer     string    `json:"current_player"`
	Winner            *string   `json:"winner"`
	IsOver            bool      `json:"is_over"`
	StartedAt         time.Time `json:"started_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// GameStateFromModel converts a model.GameState to a response GameState
func GameStateFromModel(g *model.GameState) GameState {
	var winner *string
	if g.Winner != nil {
		w := string(*g.Winner)
		winner = &w
	}
	return GameState{
		PebblesCount:      g.PebblesCount,
		MaxPebblesPerTurn: g.MaxPebblesPerTurn,
		PebblesRemaining:  g.PebblesRemaining,
		Difficulty:        string(g.Difficulty),
		FirstPlayer:       string(g.FirstPlayer),
		CurrentPlayer:     string(g.CurrentPlayer),
		Winner:            winner,
		IsOver:            g.IsTerminal(),
		StartedAt:         g.StartedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

// ActionResponse is the reply to a start or an action, and the message pushed
// to event stream clients
type ActionResponse struct {
	Event Event     `json:"event"`
	State GameState `json:"state"`
}

// ActionResponseFromModel builds an ActionResponse
func ActionResponseFromModel(e model.Event, g *model.GameState) ActionResponse {
	return ActionResponse{
		Event: EventFromModel(e),
		State: GameStateFromModel(g),
	}
}

// HealthResponse is the response for the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
