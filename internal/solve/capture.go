package solve

import (
	"github.com/roach88/attest/internal/check"
	"github.com/roach88/attest/internal/model"
	"github.com/roach88/attest/internal/outcome"
)

// Capture decorates an evaluable, copying every event into a replayable
// sequence while forwarding it unchanged. Feeding the captured events to a
// Script against a fresh tree reproduces the run.
//
// Payloads are copied out, never retained: the model handle passed to
// OnModel is rebuilt from its atoms, statistics maps are cloned.
type Capture struct {
	inner  check.Evaluable
	events []Event
}

// NewCapture wraps inner in a capturing decorator.
func NewCapture(inner check.Evaluable) *Capture {
	return &Capture{inner: inner}
}

// Events returns a copy of the captured sequence.
func (c *Capture) Events() []Event {
	return append([]Event(nil), c.events...)
}

func (c *Capture) OnModel(m *model.Model) bool {
	c.events = append(c.events, Event{Kind: EventModel, Model: model.New(m.Atoms()...)})
	return c.inner.OnModel(m)
}

func (c *Capture) OnUnsat(lowerBound []int64) {
	c.events = append(c.events, Event{Kind: EventUnsat, LowerBound: append([]int64(nil), lowerBound...)})
	c.inner.OnUnsat(lowerBound)
}

func (c *Capture) OnCore(core []int32) {
	c.events = append(c.events, Event{Kind: EventCore, Core: append([]int32(nil), core...)})
	c.inner.OnCore(core)
}

func (c *Capture) OnStatistics(step, accumulated model.Statistics) {
	c.events = append(c.events, Event{
		Kind:        EventStatistics,
		Step:        cloneStatistics(step),
		Accumulated: cloneStatistics(accumulated),
	})
	c.inner.OnStatistics(step, accumulated)
}

func (c *Capture) OnFinish(result model.Result) {
	c.events = append(c.events, Event{Kind: EventFinish, Result: result})
	c.inner.OnFinish(result)
}

func (c *Capture) Outcome() outcome.Outcome {
	return c.inner.Outcome()
}

func cloneStatistics(stats model.Statistics) model.Statistics {
	if stats == nil {
		return nil
	}
	out := make(model.Statistics, len(stats))
	for k, v := range stats {
		out[k] = v
	}
	return out
}
