package bot

import "github.com/mcoot/pebbles-game/internal/model"

// Strategy decides how many pebbles the automated player takes
type Strategy interface {
	// Name identifies the strategy in logs
	Name() string
	// ChooseMove returns a move in [1, state.MaxPebblesPerTurn]. The result may
	// be at least state.PebblesRemaining, which the caller treats as a win.
	ChooseMove(state *model.GameState) uint32
}
