package mocks

import (
	"github.com/mcoot/pebbles-game/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// Results is a queue of values to return from Uint32
	Results []uint32
	index   int

	// Fallback is returned once the queue is exhausted
	Fallback uint32

	calls int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// NewFixedRandom creates a MockRandom that always returns value
func NewFixedRandom(value uint32) *MockRandom {
	return &MockRandom{Fallback: value}
}

// Uint32 returns the next queued value, or Fallback if none remaining
func (r *MockRandom) Uint32() uint32 {
	r.calls++
	if r.index >= len(r.Results) {
		return r.Fallback
	}
	result := r.Results[r.index]
	r.index++
	return result
}

// Queue adds values to the result queue
func (r *MockRandom) Queue(values ...uint32) {
	r.Results = append(r.Results, values...)
}

// Calls returns how many times Uint32 has been called
func (r *MockRandom) Calls() int {
	return r.calls
}

// Reset clears the queue and call count
func (r *MockRandom) Reset() {
	r.Results = nil
	r.index = 0
	r.calls = 0
}
