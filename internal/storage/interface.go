package storage

import (
	"context"

	"github.com/mcoot/pebbles-game/internal/model"
)

// Storage holds the single current game between invocations
type Storage interface {
	// SaveState replaces the stored game
	SaveState(ctx context.Context, state *model.GameState) error
	// GetState returns the stored game, or model.ErrGameNotInitialized
	GetState(ctx context.Context) (*model.GameState, error)
}
