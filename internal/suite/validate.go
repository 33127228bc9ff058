package suite

import (
	"fmt"

	"github.com/roach88/attest/internal/solve"
)

// Validation error codes (E200-E299).
const (
	ErrSuiteNameEmpty    = "E200" // suite name is required
	ErrSuiteNoTests      = "E201" // at least one test required
	ErrTestNameEmpty     = "E202" // test name is required
	ErrTestNameDuplicate = "E203" // duplicate test name
	ErrProgramInvalid    = "E210" // malformed program clause
	ErrNodeEmpty         = "E220" // node selects no kind
	ErrNodeAmbiguous     = "E221" // node selects more than one kind
	ErrNodeOptionMisuse  = "E222" // junction option on a non-junction node
	ErrQuantifierKind    = "E230" // unknown quantifier kind
	ErrQuantifierTarget  = "E231" // negative exact target
	ErrAssertionKind     = "E240" // unknown assertion kind
	ErrAssertionAtom     = "E241" // assertion atom mismatch
)

// ValidationError represents a schema validation error.
type ValidationError struct {
	Code    string `json:"code"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Path, e.Message)
}

// Validate checks a suite against schema rules. Returns all errors found
// (does not fail fast).
func Validate(s *Suite) []ValidationError {
	var errs []ValidationError

	if s.Name == "" {
		errs = append(errs, ValidationError{Code: ErrSuiteNameEmpty, Path: "name", Message: "suite name is required"})
	}

	if err := (solve.Program{Clauses: s.Program.Clauses}).Validate(); err != nil {
		errs = append(errs, ValidationError{Code: ErrProgramInvalid, Path: "program", Message: err.Error()})
	}

	if len(s.Tests) == 0 {
		errs = append(errs, ValidationError{Code: ErrSuiteNoTests, Path: "tests", Message: "at least one test is required"})
	}

	seen := make(map[string]bool)
	for i, tc := range s.Tests {
		path := fmt.Sprintf("tests[%d]", i)
		if tc.Name == "" {
			errs = append(errs, ValidationError{Code: ErrTestNameEmpty, Path: path + ".name", Message: "test name is required"})
		} else if seen[tc.Name] {
			errs = append(errs, ValidationError{Code: ErrTestNameDuplicate, Path: path + ".name", Message: fmt.Sprintf("duplicate test name %q", tc.Name)})
		}
		seen[tc.Name] = true

		errs = append(errs, validateNode(&tc.Check, path+".check")...)
	}

	return errs
}

func validateNode(n *NodeSpec, path string) []ValidationError {
	var errs []ValidationError

	kinds := 0
	if n.Constant != nil {
		kinds++
	}
	if n.Not != nil {
		kinds++
	}
	if n.And != nil {
		kinds++
	}
	if n.Or != nil {
		kinds++
	}
	if n.Assert != nil {
		kinds++
	}

	switch {
	case kinds == 0:
		return append(errs, ValidationError{Code: ErrNodeEmpty, Path: path,
			Message: "node must set one of constant, not, and, or, assert"})
	case kinds > 1:
		errs = append(errs, ValidationError{Code: ErrNodeAmbiguous, Path: path,
			Message: "node must set exactly one of constant, not, and, or, assert"})
	}

	if (n.ShortCircuit != nil || n.IgnoreCertain != nil) && n.And == nil && n.Or == nil {
		errs = append(errs, ValidationError{Code: ErrNodeOptionMisuse, Path: path,
			Message: "short_circuit and ignore_certain apply only to and/or nodes"})
	}

	if n.Not != nil {
		errs = append(errs, validateNode(n.Not, path+".not")...)
	}
	for i := range n.And {
		errs = append(errs, validateNode(&n.And[i], fmt.Sprintf("%s.and[%d]", path, i))...)
	}
	for i := range n.Or {
		errs = append(errs, validateNode(&n.Or[i], fmt.Sprintf("%s.or[%d]", path, i))...)
	}
	if n.Assert != nil {
		errs = append(errs, validateAssert(n.Assert, path+".assert")...)
	}

	return errs
}

func validateAssert(a *AssertSpec, path string) []ValidationError {
	var errs []ValidationError

	switch a.Quantifier.Kind {
	case "all", "any":
		// Target is ignored for these kinds.
	case "exact":
		if a.Quantifier.Target < 0 {
			errs = append(errs, ValidationError{Code: ErrQuantifierTarget, Path: path + ".quantifier.target",
				Message: "exact target must be non-negative"})
		}
	default:
		errs = append(errs, ValidationError{Code: ErrQuantifierKind, Path: path + ".quantifier.kind",
			Message: fmt.Sprintf("unknown quantifier kind %q (want all, any, exact)", a.Quantifier.Kind)})
	}

	switch a.Assertion.Kind {
	case "true", "false":
		// No atoms.
	case "contains":
		if a.Assertion.Atom == "" {
			errs = append(errs, ValidationError{Code: ErrAssertionAtom, Path: path + ".assertion.atom",
				Message: "contains requires an atom"})
		}
	case "equals", "subset_of", "superset_of":
		// An empty atom set is legal (it matches the empty model).
	default:
		errs = append(errs, ValidationError{Code: ErrAssertionKind, Path: path + ".assertion.kind",
			Message: fmt.Sprintf("unknown assertion kind %q", a.Assertion.Kind)})
	}

	return errs
}
