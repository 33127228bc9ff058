package solve

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crillab/gophersat/solver"

	"github.com/roach88/attest/internal/check"
	"github.com/roach88/attest/internal/model"
)

// SAT evaluates checks against the models of a propositional program,
// enumerated by the gophersat solver.
//
// Events produced, in order: one OnModel per model found (until the check
// stops the enumeration or the space is exhausted), one OnUnsat with an
// empty bound if the program has no model at all, one OnStatistics with the
// run totals, and exactly one OnFinish.
type SAT struct {
	program Program
	logger  *slog.Logger
}

// NewSAT builds a solver for the given program. The program is validated
// once here, not on every run.
func NewSAT(p Program) (*SAT, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid program: %w", err)
	}
	return &SAT{program: p, logger: slog.Default()}, nil
}

// Solve enumerates models and drives them into the check tree. Cancelling
// the context stops the enumeration; the run still finishes, marked
// interrupted, before the context error is returned.
func (s *SAT) Solve(ctx context.Context, ev check.Evaluable) error {
	cnf, names := s.program.index()

	pb, err := solver.ParseSlice(cnf)
	if err != nil {
		return fmt.Errorf("parse program: %w", err)
	}
	sat := solver.New(pb)

	models := make(chan solver.ModelMap)
	stop := make(chan struct{})
	total := make(chan int, 1)
	go func() {
		total <- sat.Enumerate(models, stop)
	}()

	s.logger.Debug("enumeration starting",
		"clauses", len(cnf),
		"atoms", len(names))

	found := 0
	stopped := false
	interrupted := false
	for mm := range models {
		if stopped {
			// The stop channel is closed; drain whatever was in flight.
			continue
		}
		found++

		if ctx.Err() != nil {
			interrupted = true
			stopped = true
			close(stop)
			continue
		}

		m := modelFromMap(mm, names)
		resume := ev.OnModel(m)
		s.logger.Debug("model dispatched", "model", m.String(), "resume", resume)
		if !resume {
			stopped = true
			close(stop)
		}
	}
	count := <-total

	stats := model.Statistics{
		"models":     float64(count),
		"dispatched": float64(found),
		"clauses":    float64(len(cnf)),
		"atoms":      float64(len(names)),
	}
	ev.OnStatistics(stats, stats)

	satisfiable := count > 0
	if !satisfiable && !interrupted {
		ev.OnUnsat(nil)
	}

	result := model.Result{
		Satisfiable: satisfiable,
		Exhausted:   !stopped && !interrupted,
		Interrupted: interrupted,
	}
	ev.OnFinish(result)

	s.logger.Debug("run finished",
		"result", result.String(),
		"models", count,
		"outcome", ev.Outcome().String())

	if interrupted {
		return fmt.Errorf("solve interrupted: %w", ctx.Err())
	}
	return nil
}

// modelFromMap translates a gophersat model into a named-atom model.
// Keys are CNF variable numbers; auxiliary or unknown keys are skipped.
func modelFromMap(mm solver.ModelMap, names map[int]string) *model.Model {
	var atoms []string
	for key, val := range mm {
		if !val {
			continue
		}
		var n int
		switch k := key.(type) {
		case int:
			n = k
		case int32:
			n = int(k)
		case int64:
			n = int(k)
		default:
			continue
		}
		if name, ok := names[n]; ok {
			atoms = append(atoms, name)
		}
	}
	return model.New(atoms...)
}
