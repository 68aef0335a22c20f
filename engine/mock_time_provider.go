package engine

import (
	"context"
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing.
// Sleep advances both clocks instantly by the requested duration.
type MockTimeProvider struct {
	mu      sync.RWMutex
	mono    time.Time
	wall    time.Time
	sleeps  []time.Duration
	onSleep func(d time.Duration)
}

// NewMockTimeProvider creates a new mock time provider with both clocks at startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		mono: startTime,
		wall: startTime,
	}
}

// Now returns the current mocked monotonic time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mono
}

// Wall returns the current mocked wall-clock time
func (m *MockTimeProvider) Wall() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.wall
}

// SetTime sets both clocks
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mono = t
	m.wall = t
}

// SetWall moves only the wall clock, as a system clock adjustment would
func (m *MockTimeProvider) SetWall(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wall = t
}

// Advance advances both clocks by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mono = m.mono.Add(d)
	m.wall = m.wall.Add(d)
}

// OnSleep registers fn to run after every Sleep has advanced the clocks
func (m *MockTimeProvider) OnSleep(fn func(d time.Duration)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onSleep = fn
}

// Sleeps returns every duration passed to Sleep, in order
func (m *MockTimeProvider) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}

// Sleep records d, advances time by d and reports ctx cancellation
func (m *MockTimeProvider) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	m.sleeps = append(m.sleeps, d)
	if d > 0 {
		m.mono = m.mono.Add(d)
		m.wall = m.wall.Add(d)
	}
	hook := m.onSleep
	m.mu.Unlock()

	if hook != nil {
		hook(d)
	}
	return ctx.Err()
}
