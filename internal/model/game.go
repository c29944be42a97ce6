package model

import (
	"fmt"
	"time"
)

// DifficultyLevel selects the automated opponent's strategy
type DifficultyLevel string

const (
	DifficultyEasy DifficultyLevel = "easy" // Random legal move
	DifficultyHard DifficultyLevel = "hard" // Optimal move
)

// Valid returns true if d is a known difficulty
func (d DifficultyLevel) Valid() bool {
	return d == DifficultyEasy || d == DifficultyHard
}

// ParseDifficulty converts a wire value into a DifficultyLevel
func ParseDifficulty(s string) (DifficultyLevel, error) {
	d := DifficultyLevel(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrDecodeFailure, s)
	}
	return d, nil
}

// GameConfig holds the settings a game is started with
type GameConfig struct {
	Difficulty        DifficultyLevel `json:"difficulty"`
	PebblesCount      uint32          `json:"pebbles_count"`
	MaxPebblesPerTurn uint32          `json:"max_pebbles_per_turn"`
}

// Validate checks that the pile and per-turn maximum are both non-zero
func (c GameConfig) Validate() error {
	if c.PebblesCount == 0 {
		return fmt.Errorf("%w: pebbles_count must be at least 1", ErrInvalidConfig)
	}
	if c.MaxPebblesPerTurn == 0 {
		return fmt.Errorf("%w: max_pebbles_per_turn must be at least 1", ErrInvalidConfig)
	}
	if !c.Difficulty.Valid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, c.Difficulty)
	}
	return nil
}

// GameState is the single mutable record of a game in progress or finished.
// PebblesRemaining never exceeds PebblesCount and only decreases within a game.
type GameState struct {
	PebblesCount      uint32          `json:"pebbles_count"`
	MaxPebblesPerTurn uint32          `json:"max_pebbles_per_turn"`
	PebblesRemaining  uint32          `json:"pebbles_remaining"`
	Difficulty        DifficultyLevel `json:"difficulty"`
	FirstPlayer       Player          `json:"first_player"`
	CurrentPlayer     Player          `json:"current_player"`
	Winner            *Player         `json:"winner"` // nil while in progress

	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGameState creates a fresh game from cfg with first to move
func NewGameState(cfg GameConfig, first Player, now time.Time) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &GameState{
		PebblesCount:      cfg.PebblesCount,
		MaxPebblesPerTurn: cfg.MaxPebblesPerTurn,
		PebblesRemaining:  cfg.PebblesCount,
		Difficulty:        cfg.Difficulty,
		FirstPlayer:       first,
		CurrentPlayer:     first,
		StartedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// Config returns the configuration the game was started with
func (g *GameState) Config() GameConfig {
	return GameConfig{
		Difficulty:        g.Difficulty,
		PebblesCount:      g.PebblesCount,
		MaxPebblesPerTurn: g.MaxPebblesPerTurn,
	}
}

// IsTerminal returns true once a winner has been recorded
func (g *GameState) IsTerminal() bool {
	return g.Winner != nil
}

// SetWinner records the outcome of the game
func (g *GameState) SetWinner(p Player) {
	winner := p
	g.Winner = &winner
}

// Clone returns a deep copy of the state
func (g *GameState) Clone() *GameState {
	clone := *g
	if g.Winner != nil {
		clone.SetWinner(*g.Winner)
	}
	return &clone
}
