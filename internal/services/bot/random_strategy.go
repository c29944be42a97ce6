package bot

import (
	"github.com/mcoot/pebbles-game/internal/dependencies/random"
	"github.com/mcoot/pebbles-game/internal/model"
)

// RandomStrategy takes a uniformly random legal number of pebbles
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// Name implements Strategy
func (s *RandomStrategy) Name() string {
	return "random"
}

// ChooseMove returns a value in [1, MaxPebblesPerTurn]
func (s *RandomStrategy) ChooseMove(state *model.GameState) uint32 {
	return s.random.Uint32()%state.MaxPebblesPerTurn + 1
}
