package store

import (
	"context"
	"fmt"

	"github.com/roach88/attest/internal/outcome"
	"github.com/roach88/attest/internal/record"
	"github.com/roach88/attest/internal/solve"
	"github.com/roach88/attest/internal/suite"
)

// ReplayResult is the outcome of re-evaluating an archived run.
type ReplayResult struct {
	Run Run

	// Outcome is the verdict of the replayed tree.
	Outcome outcome.Outcome

	// RecordingHash is the hash of the replayed recording.
	RecordingHash string

	// Verified is true when the replayed verdict and recording hash match
	// the archived ones.
	Verified bool

	// Mismatches names each archived field the replay contradicted.
	Mismatches []string
}

// Replay re-evaluates an archived run: the stored check spec is recompiled
// into a fresh tree, the stored event stream is fed through a scripted
// solver, and the resulting verdict and recording hash are compared to the
// archived values.
//
// A mismatch is reported, not returned as an error; errors are reserved
// for runs that cannot be replayed at all.
func (s *Store) Replay(ctx context.Context, runID string) (*ReplayResult, error) {
	run, err := s.ReadRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	events, err := s.ReadEvents(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("replay run %q: %w", runID, err)
	}

	tree, err := suite.Compile(run.Check)
	if err != nil {
		return nil, fmt.Errorf("replay run %q: compile: %w", runID, err)
	}
	rec := record.New(tree)

	script, err := solve.NewScript(events...)
	if err != nil {
		return nil, fmt.Errorf("replay run %q: %w", runID, err)
	}
	if err := script.Solve(ctx, rec); err != nil {
		return nil, fmt.Errorf("replay run %q: %w", runID, err)
	}

	hash, err := rec.Recording().Hash()
	if err != nil {
		return nil, fmt.Errorf("replay run %q: %w", runID, err)
	}

	res := &ReplayResult{
		Run:           run,
		Outcome:       rec.Outcome(),
		RecordingHash: hash,
	}
	if res.Outcome.Value() != run.Value {
		res.Mismatches = append(res.Mismatches, "value")
	}
	if res.Outcome.Certain() != run.Certain {
		res.Mismatches = append(res.Mismatches, "certain")
	}
	if hash != run.RecordingHash {
		res.Mismatches = append(res.Mismatches, "recording_hash")
	}
	res.Verified = len(res.Mismatches) == 0
	return res, nil
}
