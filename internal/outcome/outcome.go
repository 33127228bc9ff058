// Package outcome defines the two-valued verdict type threaded through the
// whole harness: a current boolean value plus a certainty flag.
//
// Certainty is a one-way door. Once an evaluable reports a certain outcome,
// it must never report an uncertain outcome again, nor a certain outcome with
// a different value. Callers rely on this to stop solving early.
package outcome

import "fmt"

// Outcome is an immutable (value, certainty) pair.
//
// The zero value is "currently false, may still change".
type Outcome struct {
	value   bool
	certain bool
}

// New constructs an Outcome with the given current value and certainty.
func New(value, certain bool) Outcome {
	return Outcome{value: value, certain: certain}
}

// Value returns the current boolean value of the verdict.
func (o Outcome) Value() bool {
	return o.value
}

// Certain reports whether the value can still change.
func (o Outcome) Certain() bool {
	return o.certain
}

// CertainlyTrue reports whether the verdict is true and final.
func (o Outcome) CertainlyTrue() bool {
	return o.certain && o.value
}

// CertainlyFalse reports whether the verdict is false and final.
func (o Outcome) CertainlyFalse() bool {
	return o.certain && !o.value
}

// Negate returns the outcome with its value inverted. Certainty is preserved.
func (o Outcome) Negate() Outcome {
	return Outcome{value: !o.value, certain: o.certain}
}

func (o Outcome) String() string {
	return fmt.Sprintf("Outcome(value=%t, certain=%t)", o.value, o.certain)
}
