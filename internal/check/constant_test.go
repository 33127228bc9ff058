package check

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/attest/internal/model"
	"github.com/roach88/attest/internal/outcome"
)

func TestConstant_Eager(t *testing.T) {
	c := NewConstant(true, false)
	assert.Equal(t, outcome.New(true, true), c.Outcome(), "eager constant is certain from construction")

	// Already certain, so no further models are wanted.
	assert.False(t, c.OnModel(model.New("a")))

	c.OnFinish(model.Result{Satisfiable: true, Exhausted: true})
	assert.Equal(t, outcome.New(true, true), c.Outcome())
}

func TestConstant_Lazy(t *testing.T) {
	// Scenario: a lazy constant keeps the enumeration alive until the stream
	// ends, then certifies its fixed value.
	c := NewConstant(true, true)
	assert.Equal(t, outcome.New(true, false), c.Outcome())

	assert.True(t, c.OnModel(model.New("a")), "lazy constant requests more models while uncertain")
	assert.Equal(t, outcome.New(true, false), c.Outcome())

	c.OnFinish(model.Result{Satisfiable: true, Exhausted: true})
	assert.Equal(t, outcome.New(true, true), c.Outcome())
	assert.False(t, c.OnModel(model.New("b")))
}

func TestConstant_LazyFalse(t *testing.T) {
	c := NewConstant(false, true)
	assert.Equal(t, outcome.New(false, false), c.Outcome())

	c.OnFinish(model.Result{Satisfiable: false})
	assert.Equal(t, outcome.New(false, true), c.Outcome())
}

func TestConstant_OtherEventsAreNoOps(t *testing.T) {
	c := NewConstant(true, true)
	c.OnUnsat([]int64{1, 2})
	c.OnCore([]int32{3})
	c.OnStatistics(model.Statistics{"models": 1}, model.Statistics{"models": 4})
	assert.Equal(t, outcome.New(true, false), c.Outcome())
}
