package factory

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pebbles-game/internal/model"
	redisstorage "github.com/mcoot/pebbles-game/internal/storage/redis"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TearDownTest() {
	s.app.Close()
}

// Test: Complete easy game where the human takes the last pebble
func (s *IntegrationSuite) TestCompleteEasyGame() {
	s.app.HumanMovesFirst()
	event, state, err := s.app.GameController.Init(s.ctx, model.GameConfig{
		Difficulty:        model.DifficultyEasy,
		PebblesCount:      15,
		MaxPebblesPerTurn: 3,
	})
	s.Require().NoError(err)
	s.Equal(model.Won(model.PlayerHuman), event)
	s.Equal(uint32(15), state.PebblesRemaining)

	// Computer always takes 1 (0 % 3 + 1): 15 -> 12 -> 9 -> 6 -> 3
	for _, want := range []uint32{12, 9, 6, 3} {
		s.app.MockClock.Advance(time.Second)
		event, state, err = s.app.GameController.Handle(s.ctx, model.TurnAction{Pebbles: 2})
		s.Require().NoError(err)
		s.Equal(model.CounterTurn(1), event)
		s.Equal(want, state.PebblesRemaining)
	}

	event, state, err = s.app.GameController.Handle(s.ctx, model.TurnAction{Pebbles: 3})
	s.Require().NoError(err)
	s.Equal(model.Won(model.PlayerHuman), event)
	s.True(state.IsTerminal())
	s.Equal(s.app.MockClock.Now(), state.UpdatedAt)

	// Query still works after the game ends
	stored, err := s.app.GameController.GetState(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.PlayerHuman, *stored.Winner)
}

// Test: Hard mode never loses from a winning position
func (s *IntegrationSuite) TestHardGameComputerWins() {
	s.app.AutomatedMovesFirst()
	event, _, err := s.app.GameController.Init(s.ctx, model.GameConfig{
		Difficulty:        model.DifficultyHard,
		PebblesCount:      21,
		MaxPebblesPerTurn: 4,
	})
	s.Require().NoError(err)
	s.Equal(model.CounterTurn(1), event)

	var state *model.GameState
	for {
		event, state, err = s.app.GameController.Handle(s.ctx, model.TurnAction{Pebbles: 4})
		s.Require().NoError(err)
		if state.IsTerminal() {
			break
		}
		s.Equal(model.CounterTurn(1), event)
	}
	s.Equal(model.Won(model.PlayerAutomated), event)
}

// Test: Give up, then restart into a fresh game
func (s *IntegrationSuite) TestGiveUpThenRestart() {
	s.app.HumanMovesFirst()
	_, _, err := s.app.GameController.Init(s.ctx, model.GameConfig{
		Difficulty:        model.DifficultyEasy,
		PebblesCount:      10,
		MaxPebblesPerTurn: 2,
	})
	s.Require().NoError(err)

	event, _, err := s.app.GameController.Handle(s.ctx, model.GiveUpAction{})
	s.Require().NoError(err)
	s.Equal(model.Won(model.PlayerAutomated), event)

	_, _, err = s.app.GameController.Handle(s.ctx, model.GiveUpAction{})
	s.ErrorIs(err, model.ErrGameOver)

	s.app.HumanMovesFirst()
	_, state, err := s.app.GameController.Handle(s.ctx, model.RestartAction{Config: model.GameConfig{
		Difficulty:        model.DifficultyHard,
		PebblesCount:      30,
		MaxPebblesPerTurn: 5,
	}})
	s.Require().NoError(err)
	s.False(state.IsTerminal())
	s.Equal(uint32(30), state.PebblesRemaining)
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	_, err := New(Config{StorageType: "etcd"})
	assert.Error(t, err)
}

func TestNewRequiresBackendSettings(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)

	_, err = New(Config{StorageType: StorageTypeSQLite})
	assert.Error(t, err)
}

func TestNewWithEachStorage(t *testing.T) {
	mr := miniredis.RunT(t)
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mr.Addr()

	configs := map[string]Config{
		StorageTypeMemory: {},
		StorageTypeRedis:  {StorageType: StorageTypeRedis, RedisConfig: &redisCfg},
		StorageTypeSQLite: {StorageType: StorageTypeSQLite, SQLitePath: filepath.Join(t.TempDir(), "pebbles.db")},
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			app, err := New(cfg)
			require.NoError(t, err)
			defer app.Close()

			ctx := context.Background()
			_, err = app.GameController.GetState(ctx)
			assert.ErrorIs(t, err, model.ErrGameNotInitialized)

			_, _, err = app.GameController.Init(ctx, model.GameConfig{
				Difficulty:        model.DifficultyHard,
				PebblesCount:      15,
				MaxPebblesPerTurn: 3,
			})
			require.NoError(t, err)

			_, _, err = app.GameController.Handle(ctx, model.GiveUpAction{})
			require.NoError(t, err)

			state, err := app.GameController.GetState(ctx)
			require.NoError(t, err)
			assert.True(t, state.IsTerminal())
		})
	}
}
