package bot

import (
	"github.com/mcoot/pebbles-game/internal/model"
	"github.com/mcoot/pebbles-game/internal/services/rules"
)

// OptimalStrategy leaves the opponent a multiple of MaxPebblesPerTurn+1
// whenever it can, which wins against any play
type OptimalStrategy struct{}

// NewOptimalStrategy creates a new OptimalStrategy
func NewOptimalStrategy() *OptimalStrategy {
	return &OptimalStrategy{}
}

// Name implements Strategy
func (s *OptimalStrategy) Name() string {
	return "optimal"
}

// ChooseMove returns the smallest take that leaves a losing position for the
// opponent, or 1 if the current position is already lost
func (s *OptimalStrategy) ChooseMove(state *model.GameState) uint32 {
	return BestMove(state.PebblesRemaining, state.MaxPebblesPerTurn)
}

// BestMove returns the take in [1, maxPerTurn] that leaves a pile congruent to
// 0 mod maxPerTurn+1. Only one take in that range can do so, and it is never
// larger than the pile, so a pile of at most maxPerTurn yields the whole pile.
// From a losing position no take works and 1 is returned.
func BestMove(remaining, maxPerTurn uint32) uint32 {
	if rules.IsLosingPosition(remaining, maxPerTurn) {
		return 1
	}
	return uint32(uint64(remaining) % (uint64(maxPerTurn) + 1))
}
