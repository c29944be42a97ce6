package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mcoot/pebbles-game/internal/model"
	"github.com/mcoot/pebbles-game/internal/storage"
)

// Publisher receives every event produced by the controller, with the state it led to
type Publisher interface {
	Publish(event model.Event, state *model.GameState)
}

// Controller owns the persistent game slot and runs one invocation at a time
type Controller struct {
	storage   storage.Storage
	machine   *Machine
	publisher Publisher
	logger    *slog.Logger

	mu sync.Mutex
}

// NewController creates a new Controller
func NewController(storage storage.Storage, machine *Machine, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		machine: machine,
		logger:  logger.With(slog.String("component", "game-controller")),
	}
}

// SetPublisher registers p to receive events after they are stored
func (c *Controller) SetPublisher(p Publisher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.publisher = p
}

// Init starts the first game. Once a game exists, use a RestartAction instead.
func (c *Controller) Init(ctx context.Context, cfg model.GameConfig) (model.Event, *model.GameState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.storage.GetState(ctx)
	if err == nil {
		return model.Event{}, nil, model.ErrGameAlreadyInitialized
	}
	if !errors.Is(err, model.ErrGameNotInitialized) {
		return model.Event{}, nil, err
	}

	state, event, err := c.machine.Start(cfg)
	if err != nil {
		c.logger.Info("game start rejected", slog.String("error", err.Error()))
		return model.Event{}, nil, err
	}

	if err := c.commit(ctx, "start", state, event); err != nil {
		return model.Event{}, nil, err
	}
	return event, state.Clone(), nil
}

// Handle applies action to the stored game
func (c *Controller) Handle(ctx context.Context, action model.Action) (model.Event, *model.GameState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.storage.GetState(ctx)
	if err != nil {
		return model.Event{}, nil, err
	}

	next, event, err := c.machine.Apply(current, action)
	if err != nil {
		c.logger.Info("action rejected",
			slog.String("action", string(action.Type())),
			slog.String("error", err.Error()),
		)
		return model.Event{}, nil, err
	}

	if err := c.commit(ctx, string(action.Type()), next, event); err != nil {
		return model.Event{}, nil, err
	}
	return event, next.Clone(), nil
}

// GetState returns a snapshot of the stored game
func (c *Controller) GetState(ctx context.Context) (*model.GameState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.storage.GetState(ctx)
}

// commit stores state, logs the outcome and publishes the event
func (c *Controller) commit(ctx context.Context, action string, state *model.GameState, event model.Event) error {
	if err := c.storage.SaveState(ctx, state); err != nil {
		c.logger.Error("failed to save game state",
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
		return err
	}

	attrs := []any{
		slog.String("action", action),
		slog.String("event", string(event.Type)),
		slog.Int("pebbles_remaining", int(state.PebblesRemaining)),
	}
	if event.Type == model.EventCounterTurn {
		attrs = append(attrs, slog.Int("pebbles", int(event.Pebbles)))
	} else {
		attrs = append(attrs, slog.String("player", string(event.Player)))
	}
	if state.IsTerminal() {
		c.logger.Info("game finished", append(attrs, slog.String("winner", string(*state.Winner)))...)
	} else {
		c.logger.Info("action resolved", attrs...)
	}

	if c.publisher != nil {
		c.publisher.Publish(event, state.Clone())
	}
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Init(ctx context.Context, cfg model.GameConfig) (model.Event, *model.GameState, error)
	Handle(ctx context.Context, action model.Action) (model.Event, *model.GameState, error)
	GetState(ctx context.Context) (*model.GameState, error)
}

var _ ControllerInterface = (*Controller)(nil)
