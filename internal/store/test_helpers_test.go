package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/attest/internal/model"
	"github.com/roach88/attest/internal/record"
	"github.com/roach88/attest/internal/solve"
	"github.com/roach88/attest/internal/suite"
	"github.com/roach88/attest/internal/testutil"
)

// createTestStore creates a store backed by a temp file.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// sampleCheck is an existential check used by the archive tests.
func sampleCheck() *suite.NodeSpec {
	return &suite.NodeSpec{Assert: &suite.AssertSpec{
		Quantifier: suite.QuantifierSpec{Kind: "any"},
		Assertion:  suite.AssertionSpec{Kind: "contains", Atom: "a"},
	}}
}

// sampleEvents is a stream the sample check short-circuits on.
func sampleEvents() []solve.Event {
	return []solve.Event{
		{Kind: solve.EventModel, Model: model.New("b")},
		{Kind: solve.EventModel, Model: model.New("a", "b")},
		{Kind: solve.EventFinish, Result: model.Result{Satisfiable: true}},
	}
}

// evaluateSample runs the sample events through the sample check and
// returns a result ready to archive.
func evaluateSample(t *testing.T, events []solve.Event) suite.TestResult {
	t.Helper()

	tree, err := suite.Compile(sampleCheck())
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	rec := record.New(tree)

	script, err := solve.NewScript(events...)
	if err != nil {
		t.Fatalf("NewScript() failed: %v", err)
	}
	if err := script.Solve(context.Background(), rec); err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}

	out := rec.Outcome()
	return suite.TestResult{
		Suite:     "sample",
		Test:      "has-a",
		Outcome:   out,
		Passed:    out.CertainlyTrue(),
		Recording: rec.Recording(),
		Events:    events,
	}
}

// archiveSample evaluates and writes the sample run under a fixed ID.
func archiveSample(t *testing.T, s *Store, id string) Run {
	t.Helper()

	events := sampleEvents()
	res := evaluateSample(t, events)

	run, err := NewRun(testutil.NewFixedIDGenerator(id), res, sampleCheck())
	if err != nil {
		t.Fatalf("NewRun() failed: %v", err)
	}
	if err := s.WriteRun(context.Background(), run, events); err != nil {
		t.Fatalf("WriteRun() failed: %v", err)
	}
	return run
}
