package factory

import (
	"time"

	"github.com/mcoot/pebbles-game/internal/dependencies/mocks"
	"github.com/mcoot/pebbles-game/internal/storage/memory"
	"github.com/mcoot/pebbles-game/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())
	if err != nil {
		// Default strategies cover every difficulty
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// HumanMovesFirst queues a coin flip that gives the human the first move
func (t *TestApp) HumanMovesFirst() {
	t.MockRandom.Queue(0)
}

// AutomatedMovesFirst queues a coin flip that gives the automated player the first move
func (t *TestApp) AutomatedMovesFirst() {
	t.MockRandom.Queue(1)
}
