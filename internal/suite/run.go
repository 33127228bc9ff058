package suite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/attest/internal/outcome"
	"github.com/roach88/attest/internal/record"
	"github.com/roach88/attest/internal/solve"
)

// TestResult is the outcome of one test case evaluated against the suite's
// program.
type TestResult struct {
	Suite string
	Test  string

	// Outcome is the final verdict; always certain after a finished run.
	Outcome outcome.Outcome

	// Passed is true when the verdict is certainly true.
	Passed bool

	// Recording is the per-event diagnostic log.
	Recording *record.Recording

	// Events is the captured solver stream, replayable via solve.Script.
	Events []solve.Event
}

// Run evaluates every test of the suite against the SAT solver, each test
// with its own enumeration run so short-circuiting in one test cannot
// starve another.
func Run(ctx context.Context, s *Suite) ([]TestResult, error) {
	if errs := Validate(s); len(errs) > 0 {
		return nil, fmt.Errorf("invalid suite %q: %w", s.Name, errs[0])
	}

	sat, err := solve.NewSAT(solve.Program{Clauses: s.Program.Clauses})
	if err != nil {
		return nil, fmt.Errorf("suite %q: %w", s.Name, err)
	}

	results := make([]TestResult, 0, len(s.Tests))
	for i := range s.Tests {
		tc := &s.Tests[i]

		tree, err := Compile(&tc.Check)
		if err != nil {
			return nil, fmt.Errorf("suite %q test %q: compile: %w", s.Name, tc.Name, err)
		}

		rec := record.New(tree)
		tap := solve.NewCapture(rec)
		if err := sat.Solve(ctx, tap); err != nil {
			return nil, fmt.Errorf("suite %q test %q: %w", s.Name, tc.Name, err)
		}

		out := tap.Outcome()
		slog.Debug("test evaluated",
			"suite", s.Name,
			"test", tc.Name,
			"value", out.Value(),
			"certain", out.Certain())

		results = append(results, TestResult{
			Suite:     s.Name,
			Test:      tc.Name,
			Outcome:   out,
			Passed:    out.CertainlyTrue(),
			Recording: rec.Recording(),
			Events:    tap.Events(),
		})
	}
	return results, nil
}
