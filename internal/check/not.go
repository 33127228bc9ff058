package check

import (
	"fmt"

	"github.com/roach88/attest/internal/model"
	"github.com/roach88/attest/internal/outcome"
)

// Not inverts the value of its operand's outcome. Every event is forwarded
// verbatim, the OnModel continuation flag is the operand's own (whether to
// keep enumerating is not a negatable property), and certainty is inherited
// unchanged.
type Not struct {
	operand Evaluable
}

// NewNot wraps an evaluable, inverting its verdict.
func NewNot(operand Evaluable) *Not {
	return &Not{operand: operand}
}

func (n *Not) OnModel(m *model.Model) bool {
	return n.operand.OnModel(m)
}

func (n *Not) OnUnsat(lowerBound []int64) {
	n.operand.OnUnsat(lowerBound)
}

func (n *Not) OnCore(core []int32) {
	n.operand.OnCore(core)
}

func (n *Not) OnStatistics(step, accumulated model.Statistics) {
	n.operand.OnStatistics(step, accumulated)
}

func (n *Not) OnFinish(result model.Result) {
	n.operand.OnFinish(result)
}

func (n *Not) Outcome() outcome.Outcome {
	return n.operand.Outcome().Negate()
}

func (n *Not) String() string {
	return fmt.Sprintf("Not(%v)", n.operand)
}
