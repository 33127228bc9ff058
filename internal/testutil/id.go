package testutil

// FixedIDGenerator returns the same run ID every time.
//
// Store tests use it in place of the uuid generator so persisted runs and
// golden snapshots are byte-identical across executions.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a generator for the given ID. An empty ID
// defaults to "test-run-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed run ID. Implements store.IDGenerator.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
