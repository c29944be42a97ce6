package game

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/pebbles-game/internal/dependencies/clock"
	"github.com/mcoot/pebbles-game/internal/dependencies/random"
	"github.com/mcoot/pebbles-game/internal/model"
	"github.com/mcoot/pebbles-game/internal/services/bot"
	"github.com/mcoot/pebbles-game/internal/services/rules"
)

// Machine resolves starts and actions into a new state and a single event.
// It never mutates the state it is given and holds no game state of its own.
type Machine struct {
	engine *bot.Engine
	random random.Random
	clock  clock.Clock
	logger *slog.Logger
}

// NewMachine creates a new Machine
func NewMachine(engine *bot.Engine, random random.Random, clock clock.Clock, logger *slog.Logger) *Machine {
	return &Machine{
		engine: engine,
		random: random,
		clock:  clock,
		logger: logger.With(slog.String("component", "game-machine")),
	}
}

// Start creates a new game from cfg. A coin flip picks the first player.
// When the human moves first the event is Won(human), announcing the start.
// When the automated player moves first its opening move is applied immediately.
func (m *Machine) Start(cfg model.GameConfig) (*model.GameState, model.Event, error) {
	state, err := m.newGame(cfg)
	if err != nil {
		return nil, model.Event{}, err
	}

	if state.FirstPlayer == model.PlayerHuman {
		return state, model.Won(model.PlayerHuman), nil
	}
	return state, m.counterMove(state), nil
}

// restart replaces the game with a fresh one from cfg. No move is played:
// the event is Won(first player), announcing who moves first.
func (m *Machine) restart(previous *model.GameState, cfg model.GameConfig) (*model.GameState, model.Event, error) {
	state, err := m.newGame(cfg)
	if err != nil {
		return nil, model.Event{}, err
	}

	prev := previous.Config()
	m.logger.Debug("game restarted",
		slog.String("previous_difficulty", string(prev.Difficulty)),
		slog.Int("previous_pebbles_count", int(prev.PebblesCount)),
		slog.Int("previous_max_pebbles_per_turn", int(prev.MaxPebblesPerTurn)),
	)
	return state, model.Won(state.FirstPlayer), nil
}

// newGame validates cfg and flips the coin for the first player
func (m *Machine) newGame(cfg model.GameConfig) (*model.GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	first := m.flipCoin()
	state, err := model.NewGameState(cfg, first, m.clock.Now())
	if err != nil {
		return nil, err
	}

	m.logger.Debug("game started",
		slog.String("difficulty", string(cfg.Difficulty)),
		slog.Int("pebbles_count", int(cfg.PebblesCount)),
		slog.Int("max_pebbles_per_turn", int(cfg.MaxPebblesPerTurn)),
		slog.String("first_player", string(first)),
	)
	return state, nil
}

// Apply resolves action against state and returns the resulting state.
// On error the returned state is nil and the input is unchanged.
func (m *Machine) Apply(state *model.GameState, action model.Action) (*model.GameState, model.Event, error) {
	if state == nil {
		return nil, model.Event{}, model.ErrGameNotInitialized
	}

	switch a := action.(type) {
	case model.TurnAction:
		return m.applyTurn(state, a.Pebbles)
	case model.GiveUpAction:
		return m.applyGiveUp(state)
	case model.RestartAction:
		return m.restart(state, a.Config)
	default:
		return nil, model.Event{}, fmt.Errorf("%w: unsupported action %T", model.ErrDecodeFailure, action)
	}
}

func (m *Machine) applyTurn(state *model.GameState, n uint32) (*model.GameState, model.Event, error) {
	if state.IsTerminal() {
		return nil, model.Event{}, model.ErrGameOver
	}

	next := state.Clone()
	current := next.CurrentPlayer

	// An illegal move is reported as a win for the mover, leaving the game as it was
	if err := rules.ValidateMove(n, next.MaxPebblesPerTurn); err != nil {
		m.logger.Debug("illegal move",
			slog.Int("pebbles", int(n)),
			slog.Int("max_pebbles_per_turn", int(next.MaxPebblesPerTurn)),
		)
		return next, model.Won(current), nil
	}

	next.UpdatedAt = m.clock.Now()

	if rules.ExhaustsPile(n, next.PebblesRemaining) {
		next.PebblesRemaining = 0
		next.SetWinner(current)
		return next, model.Won(current), nil
	}

	next.PebblesRemaining -= n
	next.CurrentPlayer = current.Opponent()
	return next, m.counterMove(next), nil
}

func (m *Machine) applyGiveUp(state *model.GameState) (*model.GameState, model.Event, error) {
	if state.IsTerminal() {
		return nil, model.Event{}, model.ErrGameOver
	}

	next := state.Clone()
	winner := next.CurrentPlayer.Opponent()
	next.SetWinner(winner)
	next.UpdatedAt = m.clock.Now()
	return next, model.Won(winner), nil
}

// counterMove plays the automated player's move on state and hands the turn on
func (m *Machine) counterMove(state *model.GameState) model.Event {
	p := m.engine.ComputeMove(state)

	if rules.ExhaustsPile(p, state.PebblesRemaining) {
		state.PebblesRemaining = 0
		state.SetWinner(model.PlayerAutomated)
		return model.Won(model.PlayerAutomated)
	}

	state.PebblesRemaining -= p
	state.CurrentPlayer = state.CurrentPlayer.Opponent()
	return model.CounterTurn(p)
}

func (m *Machine) flipCoin() model.Player {
	if m.random.Uint32()%2 == 0 {
		return model.PlayerHuman
	}
	return model.PlayerAutomated
}
