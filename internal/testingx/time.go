// Package testingx contains helpers shared by the test suites.
package testingx

import (
	"sync"
	"time"
)

// Clock implements time.Now in a deterministic fashion such that each
// call returns a moment in time that occurs Step after the previous one.
//
// It's safe to use this struct from multiple goroutine contexts.
type Clock struct {
	// calls counts the number of calls to Now.
	calls int64

	// mu protects fields in this structure from concurrent access.
	mu sync.Mutex

	// step is the amount of time that passes between two calls.
	step time.Duration

	// zero is the time returned by the first call to Now.
	zero time.Time
}

// NewClock creates a new [*Clock] starting at zero and advancing by step.
func NewClock(zero time.Time, step time.Duration) *Clock {
	return &Clock{
		calls: 0,
		mu:    sync.Mutex{},
		step:  step,
		zero:  zero,
	}
}

// Now is like time.Now but deterministic.
func (c *Clock) Now() time.Time {
	defer c.mu.Unlock()
	c.mu.Lock()
	res := c.zero.Add(time.Duration(c.calls) * c.step)
	c.calls++
	return res
}
