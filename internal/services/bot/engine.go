package bot

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/pebbles-game/internal/dependencies/random"
	"github.com/mcoot/pebbles-game/internal/model"
	"github.com/mcoot/pebbles-game/internal/services/rules"
)

// Engine computes the automated player's move for the game's difficulty
type Engine struct {
	strategies map[model.DifficultyLevel]Strategy
	logger     *slog.Logger
}

// DefaultStrategies returns the strategy for each difficulty level
func DefaultStrategies(rnd random.Random) map[model.DifficultyLevel]Strategy {
	return map[model.DifficultyLevel]Strategy{
		model.DifficultyEasy: NewRandomStrategy(rnd),
		model.DifficultyHard: NewOptimalStrategy(),
	}
}

// NewEngine creates an Engine. Every difficulty level must have a strategy.
func NewEngine(strategies map[model.DifficultyLevel]Strategy, logger *slog.Logger) (*Engine, error) {
	for _, d := range []model.DifficultyLevel{model.DifficultyEasy, model.DifficultyHard} {
		if _, ok := strategies[d]; !ok {
			return nil, fmt.Errorf("no strategy for difficulty %q", d)
		}
	}
	return &Engine{
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot-engine")),
	}, nil
}

// ComputeMove returns the automated player's move, always in [1, MaxPebblesPerTurn]
func (e *Engine) ComputeMove(state *model.GameState) uint32 {
	strategy := e.strategyFor(state.Difficulty)
	move := strategy.ChooseMove(state)

	if !rules.IsLegalMove(move, state.MaxPebblesPerTurn) {
		e.logger.Warn("strategy chose an illegal move",
			slog.String("strategy", strategy.Name()),
			slog.Int("move", int(move)),
			slog.Int("max_pebbles_per_turn", int(state.MaxPebblesPerTurn)),
		)
		move = max(1, min(move, state.MaxPebblesPerTurn))
	}

	e.logger.Debug("automated move chosen",
		slog.String("strategy", strategy.Name()),
		slog.Int("pebbles_remaining", int(state.PebblesRemaining)),
		slog.Int("move", int(move)),
	)
	return move
}

// strategyFor plays easy for a difficulty with no strategy. Validated configs
// never reach that case, so it is logged as a corrupt state.
func (e *Engine) strategyFor(d model.DifficultyLevel) Strategy {
	if st, ok := e.strategies[d]; ok {
		return st
	}
	e.logger.Warn("unknown difficulty, playing easy", slog.String("difficulty", string(d)))
	return e.strategies[model.DifficultyEasy]
}
