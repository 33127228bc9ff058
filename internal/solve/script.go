package solve

import (
	"context"
	"fmt"

	"github.com/roach88/attest/internal/check"
)

// Script replays a fixed event sequence into a check tree. It is the
// playback half of recorded runs and the workhorse of the core's tests:
// deterministic, no search, same dispatch contract as a live solver.
type Script struct {
	events []Event
}

// NewScript validates and builds a scripted solver. The sequence must end
// with exactly one finish event.
func NewScript(events ...Event) (*Script, error) {
	finishes := 0
	for i, e := range events {
		switch e.Kind {
		case EventModel, EventUnsat, EventCore, EventStatistics:
			// Fine anywhere before the finish.
		case EventFinish:
			finishes++
			if i != len(events)-1 {
				return nil, fmt.Errorf("event %d: finish must be the last event", i)
			}
		default:
			return nil, fmt.Errorf("event %d: unknown kind %q", i, e.Kind)
		}
	}
	if finishes != 1 {
		return nil, fmt.Errorf("script needs exactly one finish event, got %d", finishes)
	}
	return &Script{events: append([]Event(nil), events...)}, nil
}

// Solve dispatches the scripted events in order. Once OnModel declines
// further models, remaining model events are skipped; every other kind is
// still delivered, ending with the finish event.
func (s *Script) Solve(ctx context.Context, ev check.Evaluable) error {
	stopped := false
	for _, e := range s.events {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("script interrupted: %w", err)
		}
		switch e.Kind {
		case EventModel:
			if stopped {
				continue
			}
			if !ev.OnModel(e.Model) {
				stopped = true
			}
		case EventUnsat:
			ev.OnUnsat(e.LowerBound)
		case EventCore:
			ev.OnCore(e.Core)
		case EventStatistics:
			ev.OnStatistics(e.Step, e.Accumulated)
		case EventFinish:
			ev.OnFinish(e.Result)
		}
	}
	return nil
}

// Len returns the number of scripted events.
func (s *Script) Len() int {
	return len(s.events)
}
