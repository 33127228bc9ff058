package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/attest/internal/solve"
	"github.com/roach88/attest/internal/suite"
)

// IDGenerator produces run identifiers. The default generator issues
// random UUIDs; tests substitute a fixed one for stable rows.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator issues random UUID run IDs.
type UUIDGenerator struct{}

func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// Run is one archived evaluation: the identity of the test, the check spec
// it ran, and the final verdict.
type Run struct {
	ID            string
	Suite         string
	Test          string
	Check         *suite.NodeSpec
	Value         bool
	Certain       bool
	RecordingHash string
}

// NewRun builds an archivable run from a test result and the check spec
// that produced it.
func NewRun(gen IDGenerator, res suite.TestResult, check *suite.NodeSpec) (Run, error) {
	hash, err := res.Recording.Hash()
	if err != nil {
		return Run{}, fmt.Errorf("new run: %w", err)
	}
	return Run{
		ID:            gen.Generate(),
		Suite:         res.Suite,
		Test:          res.Test,
		Check:         check,
		Value:         res.Outcome.Value(),
		Certain:       res.Outcome.Certain(),
		RecordingHash: hash,
	}, nil
}

// WriteRun inserts a run and its captured event stream in one transaction.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - re-archiving a run ID
// is silently ignored, events included.
func (s *Store) WriteRun(ctx context.Context, run Run, events []solve.Event) error {
	checkJSON, err := marshalCheck(run.Check)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	result, err := tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, suite, test, check_json, value, certain, recording_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Suite,
		run.Test,
		checkJSON,
		run.Value,
		run.Certain,
		run.RecordingHash,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	if inserted == 0 {
		// Run already archived; its events are too.
		return tx.Commit()
	}

	for i, e := range events {
		kind, payload, err := marshalEvent(e)
		if err != nil {
			return fmt.Errorf("write run: event %d: %w", i, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO events (run_id, seq, kind, payload)
			VALUES (?, ?, ?, ?)
		`, run.ID, i+1, kind, payload); err != nil {
			return fmt.Errorf("write run: event %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: commit: %w", err)
	}
	return nil
}
