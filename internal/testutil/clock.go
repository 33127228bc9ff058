// Package testutil provides deterministic helpers shared by tests and the
// recording layer.
package testutil

import "sync"

// SeqClock is a thread-safe monotonic sequence counter.
//
// Recordings stamp every entry with a seq from a SeqClock so that persisted
// event streams replay in a stable order. Unlike wall-clock timestamps, seq
// values are reproducible across runs.
type SeqClock struct {
	mu  sync.Mutex
	seq int64
}

// NewSeqClock creates a clock starting at 0; the first Next() returns 1.
func NewSeqClock() *SeqClock {
	return &SeqClock{}
}

// Next increments and returns the next sequence number.
func (c *SeqClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the latest sequence number without incrementing.
func (c *SeqClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset sets the clock back to 0 for test reuse.
func (c *SeqClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
