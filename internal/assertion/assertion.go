// Package assertion implements per-model predicates. An assertion is a pure,
// total boolean function of one model; it carries no state across models.
package assertion

import (
	"fmt"
	"strings"

	"github.com/roach88/attest/internal/model"
)

// Assertion decides whether a single model satisfies a property.
type Assertion interface {
	HoldsFor(m *model.Model) bool
}

// True holds for every model.
type True struct{}

func (True) HoldsFor(*model.Model) bool { return true }

func (True) String() string { return "True" }

// False holds for no model.
type False struct{}

func (False) HoldsFor(*model.Model) bool { return false }

func (False) String() string { return "False" }

// Contains holds when the model contains the given atom.
type Contains struct {
	Atom string
}

func (a Contains) HoldsFor(m *model.Model) bool {
	return m.Contains(a.Atom)
}

func (a Contains) String() string {
	return fmt.Sprintf("Contains(%s)", a.Atom)
}

// Equals holds when the model's true atoms are exactly the given set.
type Equals struct {
	Atoms []string
}

func (a Equals) HoldsFor(m *model.Model) bool {
	if m.Len() != len(uniq(a.Atoms)) {
		return false
	}
	for _, atom := range a.Atoms {
		if !m.Contains(atom) {
			return false
		}
	}
	return true
}

func (a Equals) String() string {
	return fmt.Sprintf("Equals(%s)", strings.Join(a.Atoms, " "))
}

// SubsetOf holds when every true atom of the model is in the given set.
type SubsetOf struct {
	Atoms []string
}

func (a SubsetOf) HoldsFor(m *model.Model) bool {
	allowed := uniq(a.Atoms)
	for _, atom := range m.Atoms() {
		if !allowed[atom] {
			return false
		}
	}
	return true
}

func (a SubsetOf) String() string {
	return fmt.Sprintf("SubsetOf(%s)", strings.Join(a.Atoms, " "))
}

// SupersetOf holds when the model contains every atom of the given set.
type SupersetOf struct {
	Atoms []string
}

func (a SupersetOf) HoldsFor(m *model.Model) bool {
	for _, atom := range a.Atoms {
		if !m.Contains(atom) {
			return false
		}
	}
	return true
}

func (a SupersetOf) String() string {
	return fmt.Sprintf("SupersetOf(%s)", strings.Join(a.Atoms, " "))
}

func uniq(atoms []string) map[string]bool {
	set := make(map[string]bool, len(atoms))
	for _, a := range atoms {
		set[a] = true
	}
	return set
}
