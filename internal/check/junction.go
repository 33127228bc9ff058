package check

import (
	"fmt"

	"github.com/roach88/attest/internal/model"
	"github.com/roach88/attest/internal/outcome"
)

// JunctionKind selects between conjunction and disjunction. The two share
// one dispatch algorithm parameterized by the dominant value: the value
// that, once certain on any operand, decides the whole junction (false for
// AND, true for OR). The dual of the dominant value is the identity the
// junction starts from.
type JunctionKind int

const (
	// Conjunction is n-ary AND: identity true, dominant value false.
	Conjunction JunctionKind = iota
	// Disjunction is n-ary OR: identity false, dominant value true.
	Disjunction
)

// dominant returns the operand value that decides the junction outright.
func (k JunctionKind) dominant() bool {
	return k == Disjunction
}

// identity returns the junction's value while no dominant operand exists.
func (k JunctionKind) identity() bool {
	return k == Conjunction
}

func (k JunctionKind) String() string {
	if k == Conjunction {
		return "And"
	}
	return "Or"
}

// JunctionOptions tunes junction dispatch.
type JunctionOptions struct {
	// ShortCircuit stops dispatch and certifies the junction as soon as one
	// operand is certainly dominant. Disabling it still flips the value
	// immediately but keeps the run going until every operand settles.
	ShortCircuit bool

	// IgnoreCertain drops operands from future dispatch once their outcome
	// is certain. Disabling it keeps feeding events to settled operands
	// (for their side effects, e.g. recording decorators).
	IgnoreCertain bool
}

// DefaultJunctionOptions short-circuits and ignores certain operands.
func DefaultJunctionOptions() JunctionOptions {
	return JunctionOptions{ShortCircuit: true, IgnoreCertain: true}
}

// Junction is n-ary AND or OR over child evaluables. It maintains a working
// set of still-ongoing operands which shrinks monotonically during a run;
// the junction is certain exactly when that set is empty.
type Junction struct {
	kind    JunctionKind
	ongoing []Evaluable
	opts    JunctionOptions
	out     outcome.Outcome
}

// And builds a conjunction with default options. With zero operands it is
// vacuously true and certain from construction.
func And(operands ...Evaluable) *Junction {
	return NewJunction(Conjunction, DefaultJunctionOptions(), operands...)
}

// Or builds a disjunction with default options. With zero operands it is
// false and certain from construction.
func Or(operands ...Evaluable) *Junction {
	return NewJunction(Disjunction, DefaultJunctionOptions(), operands...)
}

// NewJunction builds a junction of the given kind over the operands.
//
// Construction runs the shared dispatch once with a no-op event so that
// operands that are already certain (for example non-lazy constants) are
// reflected in the initial outcome, including short-circuiting.
func NewJunction(kind JunctionKind, opts JunctionOptions, operands ...Evaluable) *Junction {
	j := &Junction{
		kind:    kind,
		ongoing: append([]Evaluable(nil), operands...),
		opts:    opts,
		out:     outcome.New(kind.identity(), false),
	}
	j.forward(event{kind: eventNone}, opts.IgnoreCertain)
	return j
}

// forward is the single dispatch routine shared by every event kind.
//
// It visits each operand of the working set in original argument order,
// forwards the event exactly once, and re-derives the operand's outcome.
// A certainly-dominant operand either short-circuits the junction (working
// set cleared, outcome certain, enumeration stopped) or, with short-circuit
// disabled, flips the value while the run continues. Operands whose outcome
// is certain leave the working set when ignoreCertain holds. The junction is
// certain exactly when the working set has drained.
//
// ignoreCertain is an explicit parameter rather than saved-and-restored
// state because OnFinish must force it regardless of configuration.
//
// The return value is the OnModel continuation flag: keep enumerating while
// the junction's own outcome is uncertain.
func (j *Junction) forward(e event, ignoreCertain bool) bool {
	dominant := j.kind.dominant()

	var still []Evaluable
	for _, op := range j.ongoing {
		e.apply(op)

		out := op.Outcome()
		if out.Certain() && out.Value() == dominant {
			if j.opts.ShortCircuit {
				// Operands not yet visited this round are skipped for good.
				j.ongoing = nil
				j.out = outcome.New(dominant, true)
				return false
			}
			j.out = outcome.New(dominant, false)
		}

		if !(ignoreCertain && out.Certain()) {
			still = append(still, op)
		}
	}

	j.ongoing = still
	j.out = outcome.New(j.out.Value(), len(still) == 0)
	return !j.out.Certain()
}

func (j *Junction) OnModel(m *model.Model) bool {
	return j.forward(event{kind: eventModel, model: m}, j.opts.IgnoreCertain)
}

func (j *Junction) OnUnsat(lowerBound []int64) {
	j.forward(event{kind: eventUnsat, lowerBound: lowerBound}, j.opts.IgnoreCertain)
}

func (j *Junction) OnCore(core []int32) {
	j.forward(event{kind: eventCore, core: core}, j.opts.IgnoreCertain)
}

func (j *Junction) OnStatistics(step, accumulated model.Statistics) {
	j.forward(event{kind: eventStatistics, step: step, accumulated: accumulated}, j.opts.IgnoreCertain)
}

// OnFinish forwards completion to every still-ongoing operand and must leave
// the junction certain. Certain operands are dropped from the working set on
// this call even when IgnoreCertain is configured off.
//
// Every operand guarantees certainty after its own OnFinish; a violation is
// a defect in that operand, not a recoverable condition.
func (j *Junction) OnFinish(result model.Result) {
	j.forward(event{kind: eventFinish, result: result}, true)

	if len(j.ongoing) != 0 {
		panic(fmt.Sprintf("check: %s operand still ongoing after finish", j.kind))
	}
	if !j.out.Certain() {
		panic(fmt.Sprintf("check: %s outcome uncertain after finish", j.kind))
	}
}

func (j *Junction) Outcome() outcome.Outcome {
	return j.out
}

func (j *Junction) String() string {
	return fmt.Sprintf("%s(ongoing=%d, outcome=%s)", j.kind, len(j.ongoing), j.out)
}
