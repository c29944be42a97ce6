package response

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/pebbles-game/internal/model"
)

// JSON writes data as the response body
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Action writes the event and resulting state of a start or an action.
// Game snapshots change with every action and are never cached.
func Action(w http.ResponseWriter, status int, event model.Event, state *model.GameState) {
	w.Header().Set("Cache-Control", "no-store")
	JSON(w, status, ActionResponseFromModel(event, state))
}

// State writes the current game snapshot
func State(w http.ResponseWriter, state *model.GameState) {
	w.Header().Set("Cache-Control", "no-store")
	JSON(w, http.StatusOK, GameStateFromModel(state))
}
