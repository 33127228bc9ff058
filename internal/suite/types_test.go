package suite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "xor.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "xor", s.Name)
	assert.Len(t, s.Program.Clauses, 3)
	require.Len(t, s.Tests, 4)
	assert.Equal(t, "a-always-holds", s.Tests[0].Name)
	require.NotNil(t, s.Tests[0].Check.Assert)
	assert.Equal(t, "all", s.Tests[0].Check.Assert.Quantifier.Kind)
	require.NotNil(t, s.Tests[3].Check.Not)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read suite file")
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	data := []byte(`
name: typo
program:
  clauses: [[a]]
tests:
  - name: t
    check:
      asert:
        quantifier: {kind: all}
        assertion: {kind: "true"}
`)
	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_RejectsInvalidSuite(t *testing.T) {
	data := []byte(`
name: ""
program:
  clauses: [[a]]
tests:
  - name: t
    check:
      constant: {value: true}
`)
	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid suite")
	assert.Contains(t, err.Error(), "E200")
}

func TestParse_JunctionOptions(t *testing.T) {
	data := []byte(`
name: opts
program:
  clauses: [[a]]
tests:
  - name: t
    check:
      and:
        - constant: {value: true}
      short_circuit: false
      ignore_certain: false
`)
	s, err := Parse(data)
	require.NoError(t, err)
	check := s.Tests[0].Check
	require.NotNil(t, check.ShortCircuit)
	assert.False(t, *check.ShortCircuit)
	require.NotNil(t, check.IgnoreCertain)
	assert.False(t, *check.IgnoreCertain)
}
