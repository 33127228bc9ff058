package suite

import (
	"fmt"

	"github.com/roach88/attest/internal/assertion"
	"github.com/roach88/attest/internal/check"
	"github.com/roach88/attest/internal/quantifier"
)

// Compile builds the evaluable tree for a node spec. The spec must have
// passed Validate; structural defects surface as errors here regardless.
func Compile(n *NodeSpec) (check.Evaluable, error) {
	switch {
	case n.Constant != nil:
		return check.NewConstant(n.Constant.Value, n.Constant.Lazy), nil

	case n.Not != nil:
		inner, err := Compile(n.Not)
		if err != nil {
			return nil, err
		}
		return check.NewNot(inner), nil

	case n.And != nil:
		operands, err := compileAll(n.And)
		if err != nil {
			return nil, err
		}
		return check.NewJunction(check.Conjunction, junctionOptions(n), operands...), nil

	case n.Or != nil:
		operands, err := compileAll(n.Or)
		if err != nil {
			return nil, err
		}
		return check.NewJunction(check.Disjunction, junctionOptions(n), operands...), nil

	case n.Assert != nil:
		q, err := compileQuantifier(&n.Assert.Quantifier)
		if err != nil {
			return nil, err
		}
		a, err := compileAssertion(&n.Assert.Assertion)
		if err != nil {
			return nil, err
		}
		return check.NewAssert(q, a), nil

	default:
		return nil, fmt.Errorf("node selects no kind")
	}
}

func compileAll(specs []NodeSpec) ([]check.Evaluable, error) {
	operands := make([]check.Evaluable, len(specs))
	for i := range specs {
		op, err := Compile(&specs[i])
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i, err)
		}
		operands[i] = op
	}
	return operands, nil
}

func junctionOptions(n *NodeSpec) check.JunctionOptions {
	opts := check.DefaultJunctionOptions()
	if n.ShortCircuit != nil {
		opts.ShortCircuit = *n.ShortCircuit
	}
	if n.IgnoreCertain != nil {
		opts.IgnoreCertain = *n.IgnoreCertain
	}
	return opts
}

func compileQuantifier(q *QuantifierSpec) (quantifier.Quantifier, error) {
	switch q.Kind {
	case "all":
		return quantifier.NewAll(), nil
	case "any":
		return quantifier.NewAny(), nil
	case "exact":
		if q.Target < 0 {
			return nil, fmt.Errorf("exact target must be non-negative, got %d", q.Target)
		}
		return quantifier.NewExact(q.Target), nil
	default:
		return nil, fmt.Errorf("unknown quantifier kind %q", q.Kind)
	}
}

func compileAssertion(a *AssertionSpec) (assertion.Assertion, error) {
	switch a.Kind {
	case "true":
		return assertion.True{}, nil
	case "false":
		return assertion.False{}, nil
	case "contains":
		if a.Atom == "" {
			return nil, fmt.Errorf("contains requires an atom")
		}
		return assertion.Contains{Atom: a.Atom}, nil
	case "equals":
		return assertion.Equals{Atoms: a.Atoms}, nil
	case "subset_of":
		return assertion.SubsetOf{Atoms: a.Atoms}, nil
	case "superset_of":
		return assertion.SupersetOf{Atoms: a.Atoms}, nil
	default:
		return nil, fmt.Errorf("unknown assertion kind %q", a.Kind)
	}
}
