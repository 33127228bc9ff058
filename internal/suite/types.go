// Package suite defines declarative test suites: a propositional program
// plus a list of named checks over its models, loadable from YAML or CUE,
// compiled into evaluable trees and run against the SAT solver.
package suite

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is one test suite: a program and the checks to evaluate against its
// models. The same struct decodes from YAML files and CUE values, so both
// tag sets are carried.
type Suite struct {
	// Name uniquely identifies this suite.
	Name string `yaml:"name" json:"name"`

	// Description explains what this suite validates.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Program is the propositional program whose models are enumerated.
	Program ProgramSpec `yaml:"program" json:"program"`

	// Tests are the named checks, each compiled into an evaluable tree.
	Tests []TestCase `yaml:"tests" json:"tests"`
}

// ProgramSpec is a CNF program over named atoms. A literal is an atom name,
// prefixed with "~" for negation.
type ProgramSpec struct {
	Clauses [][]string `yaml:"clauses" json:"clauses"`
}

// TestCase is one named check.
type TestCase struct {
	Name  string   `yaml:"name" json:"name"`
	Check NodeSpec `yaml:"check" json:"check"`
}

// NodeSpec describes one node of a check tree. Exactly one of the node
// fields must be set; the junction options apply only to and/or nodes.
type NodeSpec struct {
	Constant *ConstantSpec `yaml:"constant,omitempty" json:"constant,omitempty"`
	Not      *NodeSpec     `yaml:"not,omitempty" json:"not,omitempty"`
	And      []NodeSpec    `yaml:"and,omitempty" json:"and,omitempty"`
	Or       []NodeSpec    `yaml:"or,omitempty" json:"or,omitempty"`
	Assert   *AssertSpec   `yaml:"assert,omitempty" json:"assert,omitempty"`

	// ShortCircuit and IgnoreCertain tune junction dispatch; unset means the
	// default (both on).
	ShortCircuit  *bool `yaml:"short_circuit,omitempty" json:"short_circuit,omitempty"`
	IgnoreCertain *bool `yaml:"ignore_certain,omitempty" json:"ignore_certain,omitempty"`
}

// ConstantSpec is a fixed-verdict leaf.
type ConstantSpec struct {
	Value bool `yaml:"value" json:"value"`
	Lazy  bool `yaml:"lazy,omitempty" json:"lazy,omitempty"`
}

// AssertSpec pairs a quantifier with an assertion.
type AssertSpec struct {
	Quantifier QuantifierSpec `yaml:"quantifier" json:"quantifier"`
	Assertion  AssertionSpec  `yaml:"assertion" json:"assertion"`
}

// QuantifierSpec selects an aggregation policy.
type QuantifierSpec struct {
	// Kind is one of "all", "any", "exact".
	Kind string `yaml:"kind" json:"kind"`

	// Target is the required count for "exact".
	Target int `yaml:"target,omitempty" json:"target,omitempty"`
}

// AssertionSpec selects a per-model predicate.
type AssertionSpec struct {
	// Kind is one of "true", "false", "contains", "equals", "subset_of",
	// "superset_of".
	Kind string `yaml:"kind" json:"kind"`

	// Atom is the atom for "contains".
	Atom string `yaml:"atom,omitempty" json:"atom,omitempty"`

	// Atoms is the atom set for "equals", "subset_of", "superset_of".
	Atoms []string `yaml:"atoms,omitempty" json:"atoms,omitempty"`
}

// Load reads and parses a suite YAML file. Unknown fields are rejected so
// typos surface as load errors, and the suite is validated before return.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a suite from YAML bytes with strict field checking.
func Parse(data []byte) (*Suite, error) {
	s, err := Decode(data)
	if err != nil {
		return nil, err
	}

	if errs := Validate(s); len(errs) > 0 {
		return nil, fmt.Errorf("invalid suite: %w", errs[0])
	}
	return s, nil
}

// Decode parses YAML bytes without validating. Callers that want every
// validation error, not just the first, decode then run Validate
// themselves.
func Decode(data []byte) (*Suite, error) {
	var s Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &s, nil
}
