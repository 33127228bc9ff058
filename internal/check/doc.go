// Package check implements the incremental verdict engine at the heart of
// attest.
//
// A check is a tree of evaluables - constants, quantified assertions,
// negations, conjunctions, and disjunctions. The external solver drives
// events into the root one at a time (a model found, a bound proven
// infeasible, an unsatisfiable core, a statistics snapshot, completion) and
// after every event the tree exposes a two-part verdict: the current boolean
// value and whether that value is certain, meaning it can never change for
// the rest of the run.
//
// Certainty is what enables short-circuiting. OnModel returns whether the
// caller should keep enumerating models; as soon as a node's verdict is
// certain there is no reason to keep feeding it.
//
// INVARIANTS:
//
// Certainty is permanent:
// Once Outcome() reports certain, every later Outcome() on that evaluable
// returns the same value, still certain. Short-circuiting must never change
// the final verdict compared to exhaustive evaluation.
//
// Finish forces certainty:
// OnFinish is called exactly once, last, and must leave every evaluable
// certain. A child that stays uncertain after OnFinish is a programming
// defect in that child, surfaced as a panic - the verdict would otherwise be
// meaningless.
//
// Single-threaded:
// One tree instance is consumed by exactly one evaluation run, one event at
// a time. Nothing here is safe for concurrent use, and nothing needs to be.
// Evaluables must not retain the model or result handles passed to them
// beyond the call that supplied them.
package check
