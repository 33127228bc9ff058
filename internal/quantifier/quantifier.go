// Package quantifier implements the aggregation policies that turn a stream
// of per-model booleans into a single verdict.
//
// A quantifier consumes one boolean per model and exposes a running outcome.
// It must keep the certainty contract: once the outcome is certain it never
// changes again, and Consume becomes a no-op. The Finished decorator is the
// end-of-stream signal: it pins the wrapped quantifier's current value as
// certain, which is how "forall holds by exhaustion" and "exists fails if
// never satisfied" fall out.
package quantifier

import (
	"fmt"

	"github.com/roach88/attest/internal/outcome"
)

// Quantifier aggregates per-model boolean results into an overall verdict.
type Quantifier interface {
	// Consume observes one per-model result. Calls after the outcome has
	// become certain must not change the outcome.
	Consume(holds bool)

	// Outcome returns the running verdict.
	Outcome() outcome.Outcome
}

// All is the universal quantifier: true unless some model fails the
// assertion. The first false observation makes it certainly false; end of
// stream makes it certainly true (vacuously so for an empty stream).
type All struct {
	out outcome.Outcome
}

// NewAll returns a universal quantifier over zero observations.
func NewAll() *All {
	return &All{out: outcome.New(true, false)}
}

func (q *All) Consume(holds bool) {
	if q.out.Certain() {
		return
	}
	if !holds {
		q.out = outcome.New(false, true)
	}
}

func (q *All) Outcome() outcome.Outcome {
	return q.out
}

func (q *All) String() string {
	return fmt.Sprintf("All(outcome=%s)", q.out)
}

// Any is the existential quantifier: false until some model satisfies the
// assertion. The first true observation makes it certainly true; end of
// stream makes it certainly false.
type Any struct {
	out outcome.Outcome
}

// NewAny returns an existential quantifier over zero observations.
func NewAny() *Any {
	return &Any{out: outcome.New(false, false)}
}

func (q *Any) Consume(holds bool) {
	if q.out.Certain() {
		return
	}
	if holds {
		q.out = outcome.New(true, true)
	}
}

func (q *Any) Outcome() outcome.Outcome {
	return q.out
}

func (q *Any) String() string {
	return fmt.Sprintf("Any(outcome=%s)", q.out)
}

// Exact requires the assertion to hold on exactly n models. It becomes
// certainly false as soon as the count exceeds n; it can only become
// certainly true at end of stream.
type Exact struct {
	target int
	count  int
}

// NewExact returns a quantifier requiring exactly target satisfying models.
func NewExact(target int) *Exact {
	return &Exact{target: target}
}

func (q *Exact) Consume(holds bool) {
	if holds {
		q.count++
	}
}

func (q *Exact) Outcome() outcome.Outcome {
	return outcome.New(q.count == q.target, q.count > q.target)
}

func (q *Exact) String() string {
	return fmt.Sprintf("Exact(target=%d, count=%d)", q.target, q.count)
}
