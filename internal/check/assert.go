package check

import (
	"fmt"

	"github.com/roach88/attest/internal/assertion"
	"github.com/roach88/attest/internal/model"
	"github.com/roach88/attest/internal/outcome"
	"github.com/roach88/attest/internal/quantifier"
)

// Assert evaluates one assertion against every model and feeds the results
// into a quantifier. The node itself holds no verdict state: its outcome is
// the quantifier's, and OnFinish finalizes the quantifier by wrapping it so
// its current value becomes certain.
type Assert struct {
	quantifier quantifier.Quantifier
	assertion  assertion.Assertion
}

// NewAssert pairs a quantifier with an assertion.
func NewAssert(q quantifier.Quantifier, a assertion.Assertion) *Assert {
	return &Assert{quantifier: q, assertion: a}
}

func (t *Assert) OnModel(m *model.Model) bool {
	if !t.quantifier.Outcome().Certain() {
		t.quantifier.Consume(t.assertion.HoldsFor(m))
	}
	return !t.quantifier.Outcome().Certain()
}

func (t *Assert) OnUnsat([]int64) {}

func (t *Assert) OnCore([]int32) {}

func (t *Assert) OnStatistics(step, accumulated model.Statistics) {}

func (t *Assert) OnFinish(model.Result) {
	t.quantifier = quantifier.NewFinished(t.quantifier)
}

func (t *Assert) Outcome() outcome.Outcome {
	return t.quantifier.Outcome()
}

func (t *Assert) String() string {
	return fmt.Sprintf("Assert(%v, %v)", t.quantifier, t.assertion)
}
