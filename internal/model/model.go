// Package model defines the value types that cross the solver boundary:
// models (one satisfying assignment, reduced to its true atoms), solve
// results, and solver statistics.
//
// These are deliberately small and inert. The evaluation core treats a model
// as an opaque handle; only assertions inspect its atoms.
package model

import (
	"sort"
	"strings"
)

// Model is one solution produced by a solver: the set of ground atoms that
// are true in the assignment. Models are immutable after construction.
type Model struct {
	atoms map[string]bool
}

// New builds a model from the given atom names. Duplicates are collapsed.
func New(atoms ...string) *Model {
	set := make(map[string]bool, len(atoms))
	for _, a := range atoms {
		set[a] = true
	}
	return &Model{atoms: set}
}

// Contains reports whether the atom is true in this model.
func (m *Model) Contains(atom string) bool {
	return m.atoms[atom]
}

// Len returns the number of true atoms.
func (m *Model) Len() int {
	return len(m.atoms)
}

// Atoms returns the true atoms in sorted order.
func (m *Model) Atoms() []string {
	out := make([]string, 0, len(m.atoms))
	for a := range m.atoms {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// String renders the model as a space-separated sorted atom list.
func (m *Model) String() string {
	return strings.Join(m.Atoms(), " ")
}
