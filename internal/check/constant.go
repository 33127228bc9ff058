package check

import (
	"fmt"

	"github.com/roach88/attest/internal/model"
	"github.com/roach88/attest/internal/outcome"
)

// Constant is a leaf with a fixed verdict. With lazy=false the verdict is
// certain from construction. With lazy=true the verdict stays uncertain -
// and OnModel keeps requesting models - until the stream ends, which lets a
// fixed-verdict check still exercise the full enumeration.
type Constant struct {
	out outcome.Outcome
}

// NewConstant builds a constant leaf with the given value.
func NewConstant(value, lazy bool) *Constant {
	return &Constant{out: outcome.New(value, !lazy)}
}

func (c *Constant) OnModel(*model.Model) bool {
	return !c.out.Certain()
}

func (c *Constant) OnUnsat([]int64) {}

func (c *Constant) OnCore([]int32) {}

func (c *Constant) OnStatistics(step, accumulated model.Statistics) {}

func (c *Constant) OnFinish(model.Result) {
	c.out = outcome.New(c.out.Value(), true)
}

func (c *Constant) Outcome() outcome.Outcome {
	return c.out
}

func (c *Constant) String() string {
	return fmt.Sprintf("Constant(outcome=%s)", c.out)
}
