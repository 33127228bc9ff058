package check

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/attest/internal/assertion"
	"github.com/roach88/attest/internal/model"
	"github.com/roach88/attest/internal/outcome"
	"github.com/roach88/attest/internal/quantifier"
)

func TestAssert_ExistsShortCircuits(t *testing.T) {
	// Exists over three models where the assertion holds only on the second:
	// the node must stop the enumeration right there.
	node := NewAssert(quantifier.NewAny(), assertion.Contains{Atom: "hit"})

	assert.True(t, node.OnModel(model.New("miss")), "no hit yet, keep enumerating")
	assert.Equal(t, outcome.New(false, false), node.Outcome())

	assert.False(t, node.OnModel(model.New("hit")), "hit found, stop enumerating")
	assert.Equal(t, outcome.New(true, true), node.Outcome())

	// A third model changes nothing; the quantifier is certain.
	assert.False(t, node.OnModel(model.New("miss")))
	assert.Equal(t, outcome.New(true, true), node.Outcome())
}

func TestAssert_ForallFailsOnCounterexample(t *testing.T) {
	node := NewAssert(quantifier.NewAll(), assertion.Contains{Atom: "req"})

	assert.True(t, node.OnModel(model.New("req", "x")))
	assert.Equal(t, outcome.New(true, false), node.Outcome())

	assert.False(t, node.OnModel(model.New("x")), "counterexample settles forall")
	assert.Equal(t, outcome.New(false, true), node.Outcome())
}

func TestAssert_FinishFinalizesQuantifier(t *testing.T) {
	tests := []struct {
		name string
		q    quantifier.Quantifier
		want outcome.Outcome
	}{
		{"forall vacuously true", quantifier.NewAll(), outcome.New(true, true)},
		{"exists never satisfied", quantifier.NewAny(), outcome.New(false, true)},
		{"exact zero satisfied", quantifier.NewExact(0), outcome.New(true, true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := NewAssert(tt.q, assertion.False{})
			node.OnFinish(model.Result{Satisfiable: false, Exhausted: true})
			assert.Equal(t, tt.want, node.Outcome())
		})
	}
}

func TestAssert_ModelsAfterFinishAreIgnored(t *testing.T) {
	node := NewAssert(quantifier.NewAny(), assertion.True{})
	node.OnFinish(model.Result{Satisfiable: false, Exhausted: true})
	assert.Equal(t, outcome.New(false, true), node.Outcome())

	assert.False(t, node.OnModel(model.New("a")), "finished quantifier consumes nothing")
	assert.Equal(t, outcome.New(false, true), node.Outcome())
}

func TestAssert_OtherEventsAreNoOps(t *testing.T) {
	node := NewAssert(quantifier.NewAll(), assertion.True{})
	node.OnUnsat([]int64{7})
	node.OnCore([]int32{1, 2})
	node.OnStatistics(model.Statistics{}, model.Statistics{})
	assert.Equal(t, outcome.New(true, false), node.Outcome())
}
