package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/attest/internal/solve"
)

// ErrRunNotFound is returned when a run ID has no row.
var ErrRunNotFound = errors.New("run not found")

// IsNotFound reports whether err means the run does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRunNotFound)
}

// ReadRun returns one archived run by ID.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, suite, test, check_json, value, certain, recording_hash
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("read run %q: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run %q: %w", id, err)
	}
	return run, nil
}

// ReadEvents returns the captured event stream of a run, in dispatch order.
// Ordering is by seq, never by insertion time.
func (s *Store) ReadEvents(ctx context.Context, runID string) ([]solve.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, payload
		FROM events
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []solve.Event
	for rows.Next() {
		var kind, payload string
		if err := rows.Scan(&kind, &payload); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e, err := unmarshalEvent(kind, payload)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	if events == nil {
		events = []solve.Event{}
	}
	return events, nil
}

// ListRuns returns all archived runs, ordered deterministically by suite,
// test, then ID.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, suite, test, check_json, value, certain, recording_hash
		FROM runs
		ORDER BY suite ASC, test ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	if runs == nil {
		runs = []Run{}
	}
	return runs, nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		run       Run
		checkJSON string
	)
	if err := sc.Scan(
		&run.ID,
		&run.Suite,
		&run.Test,
		&checkJSON,
		&run.Value,
		&run.Certain,
		&run.RecordingHash,
	); err != nil {
		return Run{}, err
	}

	check, err := unmarshalCheck(checkJSON)
	if err != nil {
		return Run{}, err
	}
	run.Check = check
	return run, nil
}
