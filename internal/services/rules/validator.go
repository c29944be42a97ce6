package rules

import (
	"fmt"

	"github.com/mcoot/pebbles-game/internal/model"
)

// ValidateMove checks that move is within [1, maxPerTurn].
// It only classifies; what an illegal move means for the game is decided
// by the state machine.
func ValidateMove(move, maxPerTurn uint32) error {
	if !IsLegalMove(move, maxPerTurn) {
		return fmt.Errorf("%w: %d is outside [1, %d]", model.ErrIllegalMove, move, maxPerTurn)
	}
	return nil
}

// IsLegalMove reports whether move is within [1, maxPerTurn]
func IsLegalMove(move, maxPerTurn uint32) bool {
	return move >= 1 && move <= maxPerTurn
}

// ExhaustsPile reports whether taking move pebbles empties the pile
func ExhaustsPile(move, remaining uint32) bool {
	return move >= remaining
}

// IsLosingPosition reports whether the player to move from a pile of
// remaining pebbles loses against optimal play
func IsLosingPosition(remaining, maxPerTurn uint32) bool {
	return uint64(remaining)%(uint64(maxPerTurn)+1) == 0
}
