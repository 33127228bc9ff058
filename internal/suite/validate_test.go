package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anyTrueNode() NodeSpec {
	return NodeSpec{Assert: &AssertSpec{
		Quantifier: QuantifierSpec{Kind: "any"},
		Assertion:  AssertionSpec{Kind: "true"},
	}}
}

func validSuite() *Suite {
	return &Suite{
		Name:    "demo",
		Program: ProgramSpec{Clauses: [][]string{{"a", "b"}}},
		Tests: []TestCase{
			{Name: "sat", Check: anyTrueNode()},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.Empty(t, Validate(validSuite()))
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	s := &Suite{
		Program: ProgramSpec{Clauses: [][]string{{}}},
	}
	errs := Validate(s)
	codes := make(map[string]bool)
	for _, e := range errs {
		codes[e.Code] = true
	}
	assert.True(t, codes[ErrSuiteNameEmpty])
	assert.True(t, codes[ErrProgramInvalid])
	assert.True(t, codes[ErrSuiteNoTests])
}

func TestValidate_Errors(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name     string
		mutate   func(*Suite)
		wantCode string
		wantPath string
	}{
		{
			name:     "test name empty",
			mutate:   func(s *Suite) { s.Tests[0].Name = "" },
			wantCode: ErrTestNameEmpty,
			wantPath: "tests[0].name",
		},
		{
			name: "duplicate test name",
			mutate: func(s *Suite) {
				s.Tests = append(s.Tests, TestCase{Name: "sat", Check: anyTrueNode()})
			},
			wantCode: ErrTestNameDuplicate,
			wantPath: "tests[1].name",
		},
		{
			name:     "empty node",
			mutate:   func(s *Suite) { s.Tests[0].Check = NodeSpec{} },
			wantCode: ErrNodeEmpty,
			wantPath: "tests[0].check",
		},
		{
			name: "ambiguous node",
			mutate: func(s *Suite) {
				s.Tests[0].Check.Constant = &ConstantSpec{Value: true}
			},
			wantCode: ErrNodeAmbiguous,
			wantPath: "tests[0].check",
		},
		{
			name: "junction option on leaf",
			mutate: func(s *Suite) {
				s.Tests[0].Check.ShortCircuit = boolPtr(false)
			},
			wantCode: ErrNodeOptionMisuse,
			wantPath: "tests[0].check",
		},
		{
			name: "unknown quantifier kind",
			mutate: func(s *Suite) {
				s.Tests[0].Check.Assert.Quantifier.Kind = "most"
			},
			wantCode: ErrQuantifierKind,
			wantPath: "tests[0].check.assert.quantifier.kind",
		},
		{
			name: "negative exact target",
			mutate: func(s *Suite) {
				s.Tests[0].Check.Assert.Quantifier = QuantifierSpec{Kind: "exact", Target: -1}
			},
			wantCode: ErrQuantifierTarget,
			wantPath: "tests[0].check.assert.quantifier.target",
		},
		{
			name: "unknown assertion kind",
			mutate: func(s *Suite) {
				s.Tests[0].Check.Assert.Assertion.Kind = "matches"
			},
			wantCode: ErrAssertionKind,
			wantPath: "tests[0].check.assert.assertion.kind",
		},
		{
			name: "contains without atom",
			mutate: func(s *Suite) {
				s.Tests[0].Check.Assert.Assertion = AssertionSpec{Kind: "contains"}
			},
			wantCode: ErrAssertionAtom,
			wantPath: "tests[0].check.assert.assertion.atom",
		},
		{
			name: "nested node error carries path",
			mutate: func(s *Suite) {
				s.Tests[0].Check = NodeSpec{And: []NodeSpec{anyTrueNode(), {}}}
			},
			wantCode: ErrNodeEmpty,
			wantPath: "tests[0].check.and[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSuite()
			tt.mutate(s)
			errs := Validate(s)
			require.NotEmpty(t, errs)

			found := false
			for _, e := range errs {
				if e.Code == tt.wantCode && e.Path == tt.wantPath {
					found = true
				}
			}
			assert.True(t, found, "want code %s at %s, got %v", tt.wantCode, tt.wantPath, errs)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Code: ErrNodeEmpty, Path: "tests[0].check", Message: "boom"}
	assert.Equal(t, "[E220] tests[0].check: boom", e.Error())
}
