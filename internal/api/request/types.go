package request

import (
	"fmt"

	"github.com/mcoot/pebbles-game/internal/model"
)

// StartRequest is the request body for starting a game
type StartRequest struct {
	Difficulty        string `json:"difficulty"`
	PebblesCount      uint32 `json:"pebbles_count"`
	MaxPebblesPerTurn uint32 `json:"max_pebbles_per_turn"`
}

// ToConfig converts the request into a GameConfig. Counts are checked later,
// when the game is started.
func (r StartRequest) ToConfig() (model.GameConfig, error) {
	difficulty, err := model.ParseDifficulty(r.Difficulty)
	if err != nil {
		return model.GameConfig{}, err
	}
	return model.GameConfig{
		Difficulty:        difficulty,
		PebblesCount:      r.PebblesCount,
		MaxPebblesPerTurn: r.MaxPebblesPerTurn,
	}, nil
}

// ActionRequest is the request body for an action. Pebbles belongs to
// turn and the config fields to restart; any other combination is rejected.
type ActionRequest struct {
	Type    string  `json:"type"`
	Pebbles *uint32 `json:"pebbles,omitempty"`

	Difficulty        *string `json:"difficulty,omitempty"`
	PebblesCount      *uint32 `json:"pebbles_count,omitempty"`
	MaxPebblesPerTurn *uint32 `json:"max_pebbles_per_turn,omitempty"`
}

func (r ActionRequest) hasConfig() bool {
	return r.Difficulty != nil || r.PebblesCount != nil || r.MaxPebblesPerTurn != nil
}

// ToAction converts the request into a model.Action
func (r ActionRequest) ToAction() (model.Action, error) {
	switch model.ActionType(r.Type) {
	case model.ActionTurn:
		if r.Pebbles == nil {
			return nil, fmt.Errorf("%w: turn requires pebbles", model.ErrDecodeFailure)
		}
		if r.hasConfig() {
			return nil, fmt.Errorf("%w: turn takes only pebbles", model.ErrDecodeFailure)
		}
		return model.TurnAction{Pebbles: *r.Pebbles}, nil

	case model.ActionGiveUp:
		if r.Pebbles != nil || r.hasConfig() {
			return nil, fmt.Errorf("%w: give_up takes no fields", model.ErrDecodeFailure)
		}
		return model.GiveUpAction{}, nil

	case model.ActionRestart:
		if r.Pebbles != nil {
			return nil, fmt.Errorf("%w: restart does not take pebbles", model.ErrDecodeFailure)
		}
		cfg, err := StartRequest{
			Difficulty:        deref(r.Difficulty),
			PebblesCount:      deref(r.PebblesCount),
			MaxPebblesPerTurn: deref(r.MaxPebblesPerTurn),
		}.ToConfig()
		if err != nil {
			return nil, err
		}
		return model.RestartAction{Config: cfg}, nil

	default:
		return nil, fmt.Errorf("%w: unknown action type %q", model.ErrDecodeFailure, r.Type)
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// NewTurnRequest builds the request for a turn of n pebbles
func NewTurnRequest(n uint32) ActionRequest {
	return ActionRequest{Type: string(model.ActionTurn), Pebbles: &n}
}

// NewGiveUpRequest builds the request for giving up
func NewGiveUpRequest() ActionRequest {
	return ActionRequest{Type: string(model.ActionGiveUp)}
}

// NewRestartRequest builds the request for restarting with cfg
func NewRestartRequest(cfg StartRequest) ActionRequest {
	return ActionRequest{
		Type:              string(model.ActionRestart),
		Difficulty:        &cfg.Difficulty,
		PebblesCount:      &cfg.PebblesCount,
		MaxPebblesPerTurn: &cfg.MaxPebblesPerTurn,
	}
}
