package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pebbles-game/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.StateTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newState() *model.GameState {
	state, err := model.NewGameState(model.GameConfig{
		Difficulty:        model.DifficultyEasy,
		PebblesCount:      15,
		MaxPebblesPerTurn: 3,
	}, model.PlayerAutomated, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	return state
}

func (s *StorageSuite) TestGetStateNotFound() {
	_, err := s.storage.GetState(s.ctx)
	s.ErrorIs(err, model.ErrGameNotInitialized)
}

func (s *StorageSuite) TestSaveAndGetState() {
	state := s.newState()
	state.PebblesRemaining = 12
	state.CurrentPlayer = model.PlayerHuman

	s.Require().NoError(s.storage.SaveState(s.ctx, state))

	retrieved, err := s.storage.GetState(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint32(15), retrieved.PebblesCount)
	s.Equal(uint32(12), retrieved.PebblesRemaining)
	s.Equal(model.PlayerAutomated, retrieved.FirstPlayer)
	s.Equal(model.PlayerHuman, retrieved.CurrentPlayer)
	s.Equal(model.DifficultyEasy, retrieved.Difficulty)
	s.Nil(retrieved.Winner)
	s.True(state.StartedAt.Equal(retrieved.StartedAt))
}

func (s *StorageSuite) TestWinnerRoundTrips() {
	state := s.newState()
	state.PebblesRemaining = 0
	state.SetWinner(model.PlayerHuman)
	s.Require().NoError(s.storage.SaveState(s.ctx, state))

	retrieved, err := s.storage.GetState(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(retrieved.Winner)
	s.Equal(model.PlayerHuman, *retrieved.Winner)
}

func (s *StorageSuite) TestStateKeyAndTTL() {
	s.Require().NoError(s.storage.SaveState(s.ctx, s.newState()))

	s.True(s.mini.Exists("pebbles:state"))
	s.Equal(time.Hour, s.mini.TTL("pebbles:state"))
}

func (s *StorageSuite) TestStateExpires() {
	s.Require().NoError(s.storage.SaveState(s.ctx, s.newState()))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetState(s.ctx)
	s.ErrorIs(err, model.ErrGameNotInitialized)
}

func (s *StorageSuite) TestCorruptStateIsAnError() {
	s.Require().NoError(s.mini.Set("pebbles:state", "{not json"))

	_, err := s.storage.GetState(s.ctx)
	s.Error(err)
	s.NotErrorIs(err, model.ErrGameNotInitialized)
}
