package check

import (
	"github.com/roach88/attest/internal/model"
	"github.com/roach88/attest/internal/outcome"
)

// Evaluable is one node of a check tree. The solver calls the five event
// methods in whatever order its search produces, ending with exactly one
// OnFinish; Outcome may be queried at any point, including mid-stream.
type Evaluable interface {
	// OnModel observes one model. The return value tells the solver whether
	// to keep enumerating: false means the verdict needs nothing further.
	OnModel(m *model.Model) bool

	// OnUnsat observes a proven-infeasible lower bound (optimization runs).
	OnUnsat(lowerBound []int64)

	// OnCore observes an unsatisfiable core as a set of literal identifiers.
	OnCore(core []int32)

	// OnStatistics observes solver telemetry for the latest step and the
	// accumulated totals.
	OnStatistics(step, accumulated model.Statistics)

	// OnFinish observes the end of the run. Called exactly once, last.
	// Afterwards Outcome().Certain() must be true.
	OnFinish(result model.Result)

	// Outcome returns the current verdict.
	Outcome() outcome.Outcome
}

// eventKind tags the five event variants plus the zero-event construction
// pass used by junction nodes.
type eventKind int

const (
	eventNone eventKind = iota
	eventModel
	eventUnsat
	eventCore
	eventStatistics
	eventFinish
)

// event is the tagged union routed through the shared junction dispatch.
// Exactly one payload field is meaningful, per kind.
type event struct {
	kind        eventKind
	model       *model.Model
	lowerBound  []int64
	core        []int32
	step        model.Statistics
	accumulated model.Statistics
	result      model.Result
}

// apply forwards the event to one evaluable. The OnModel continuation flag
// is deliberately dropped: whether a junction keeps enumerating is derived
// from its own certainty, not from any single operand.
func (e event) apply(op Evaluable) {
	switch e.kind {
	case eventNone:
		// Construction pass: no forwarding, outcomes are only re-read.
	case eventModel:
		op.OnModel(e.model)
	case eventUnsat:
		op.OnUnsat(e.lowerBound)
	case eventCore:
		op.OnCore(e.core)
	case eventStatistics:
		op.OnStatistics(e.step, e.accumulated)
	case eventFinish:
		op.OnFinish(e.result)
	}
}
