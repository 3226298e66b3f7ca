// Package clock provides the time source abstraction for kvstore.
package clock

import (
	"sync"
	"time"
)

// Clock is the time source consumed by the storage engine.
//
// Implementations must return monotonically non-decreasing values.
// The engine holds a non-owning reference and treats the clock as
// read-only; advancing a test clock is the caller's business.
//
// @req RQ-0201
// @design DS-0201
type Clock interface {
	Now() time.Time
}

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Mock is a manually-advanced Clock for deterministic tests.
//
// The zero value is not usable; construct with NewMock.
type Mock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMock creates a Mock starting at the given instant.
func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

// Now returns the current simulated time.
func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the simulated time forward by d.
// Negative durations are ignored to keep Now monotonic.
func (m *Mock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Set jumps the simulated time to t if t is not before the current time.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.Before(m.now) {
		return
	}
	m.now = t
}
