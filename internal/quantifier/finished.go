package quantifier

import (
	"fmt"

	"github.com/roach88/attest/internal/outcome"
)

// Finished decorates a quantifier once the model stream has ended: no more
// observations will arrive, so whatever value the quantifier currently holds
// is final.
type Finished struct {
	inner Quantifier
}

// NewFinished wraps q, pinning its current value as certain.
func NewFinished(q Quantifier) *Finished {
	return &Finished{inner: q}
}

// Consume is a no-op; the stream has ended.
func (q *Finished) Consume(bool) {}

func (q *Finished) Outcome() outcome.Outcome {
	return outcome.New(q.inner.Outcome().Value(), true)
}

func (q *Finished) String() string {
	return fmt.Sprintf("Finished(%v)", q.inner)
}
