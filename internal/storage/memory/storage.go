package memory

import (
	"context"
	"sync"

	"github.com/mcoot/pebbles-game/internal/model"
	"github.com/mcoot/pebbles-game/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu    sync.RWMutex
	state *model.GameState
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// SaveState stores a copy so later changes by the caller are not visible
func (s *Storage) SaveState(ctx context.Context, state *model.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Clone()
	return nil
}

// GetState returns a copy of the stored game
func (s *Storage) GetState(ctx context.Context) (*model.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil, model.ErrGameNotInitialized
	}
	return s.state.Clone(), nil
}
