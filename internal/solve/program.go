package solve

import (
	"fmt"
	"strings"
)

// Program is a propositional formula in conjunctive normal form over named
// atoms. Each clause is a disjunction of literals; a literal is an atom
// name, prefixed with "~" for negation.
type Program struct {
	Clauses [][]string
}

// Validate checks the program for structural defects: empty clauses and
// malformed literals.
func (p Program) Validate() error {
	for i, clause := range p.Clauses {
		if len(clause) == 0 {
			return fmt.Errorf("clause %d is empty", i)
		}
		for j, lit := range clause {
			atom := strings.TrimPrefix(lit, "~")
			if atom == "" {
				return fmt.Errorf("clause %d literal %d: empty atom", i, j)
			}
			if strings.HasPrefix(atom, "~") {
				return fmt.Errorf("clause %d literal %d: double negation %q", i, j, lit)
			}
		}
	}
	return nil
}

// index assigns CNF variable numbers to atoms in first-appearance order and
// returns the integer clause form plus the reverse name table. The numbering
// is deterministic for a given program, which keeps runs reproducible.
func (p Program) index() (cnf [][]int, names map[int]string) {
	numbers := make(map[string]int)
	names = make(map[int]string)

	cnf = make([][]int, len(p.Clauses))
	for i, clause := range p.Clauses {
		ints := make([]int, len(clause))
		for j, lit := range clause {
			negated := strings.HasPrefix(lit, "~")
			atom := strings.TrimPrefix(lit, "~")

			n, ok := numbers[atom]
			if !ok {
				n = len(numbers) + 1
				numbers[atom] = n
				names[n] = atom
			}
			if negated {
				ints[j] = -n
			} else {
				ints[j] = n
			}
		}
		cnf[i] = ints
	}
	return cnf, names
}

// Atoms returns the number of distinct atoms in the program.
func (p Program) Atoms() int {
	_, names := p.index()
	return len(names)
}
