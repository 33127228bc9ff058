// Package solve is the boundary to the external solving engine.
//
// A Solver owns one evaluation run: it drives events into the root evaluable
// one at a time, synchronously, and stops enumerating models as soon as
// OnModel asks it to. Two implementations exist: SAT, backed by the
// gophersat solver, and Script, which replays a fixed event sequence
// (recorded runs, tests).
package solve

import (
	"context"

	"github.com/roach88/attest/internal/check"
	"github.com/roach88/attest/internal/model"
)

// Solver evaluates one check tree against a stream of solver events.
// Solve blocks until the run is finished; the tree's outcome is certain
// afterwards. One tree instance must not be reused across runs.
type Solver interface {
	Solve(ctx context.Context, ev check.Evaluable) error
}

// EventKind names the five callback kinds as stored and replayed.
type EventKind string

const (
	EventModel      EventKind = "model"
	EventUnsat      EventKind = "unsat"
	EventCore       EventKind = "core"
	EventStatistics EventKind = "statistics"
	EventFinish     EventKind = "finish"
)

// Event is one solver callback in storable form. Exactly one payload group
// is meaningful, per kind.
type Event struct {
	Kind        EventKind
	Model       *model.Model
	LowerBound  []int64
	Core        []int32
	Step        model.Statistics
	Accumulated model.Statistics
	Result      model.Result
}
