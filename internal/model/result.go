package model

// Result summarizes a finished solve, reported exactly once at the end of
// the event stream.
type Result struct {
	// Satisfiable reports whether at least one model was found.
	Satisfiable bool

	// Exhausted reports whether the search space was fully explored.
	// False when enumeration was cut short (by a callback or cancellation).
	Exhausted bool

	// Interrupted reports whether the solve was cancelled externally.
	Interrupted bool
}

func (r Result) String() string {
	switch {
	case r.Interrupted:
		return "INTERRUPTED"
	case !r.Satisfiable:
		return "UNSATISFIABLE"
	case r.Exhausted:
		return "SATISFIABLE (exhausted)"
	default:
		return "SATISFIABLE"
	}
}

// Statistics carries solver telemetry as flat numeric gauges. The evaluation
// core never interprets these; they exist for recording and display.
type Statistics map[string]float64
