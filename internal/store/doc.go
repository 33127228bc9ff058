// Package store provides SQLite-backed durable storage for evaluated runs.
//
// The store is an append-only archive with two tables:
//   - Runs: one row per evaluated test (check spec, final verdict,
//     recording hash)
//   - Events: the captured solver stream for the run, ordered by seq
//
// A stored run is self-contained: the check spec travels with it, so a
// later Replay can recompile the tree, feed the stored events through a
// scripted solver, and verify that the verdict and the recording hash still
// match what was archived.
//
// # Patterns
//
//   - All ordering uses seq INTEGER, never timestamps, so replays are
//     deterministic regardless of wall time.
//   - Writes use ON CONFLICT(id) DO NOTHING; re-archiving a run is a no-op.
//   - Event payloads are stored as JSON with sorted keys.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
