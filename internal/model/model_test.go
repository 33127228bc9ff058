package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModel_New(t *testing.T) {
	m := New("b", "a", "b")
	assert.Equal(t, 2, m.Len(), "duplicates collapse")
	assert.True(t, m.Contains("a"))
	assert.True(t, m.Contains("b"))
	assert.False(t, m.Contains("c"))
}

func TestModel_Atoms_Sorted(t *testing.T) {
	m := New("c", "a", "b")
	assert.Equal(t, []string{"a", "b", "c"}, m.Atoms())
	assert.Equal(t, "a b c", m.String())
}

func TestModel_Empty(t *testing.T) {
	m := New()
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Atoms())
	assert.Equal(t, "", m.String())
}

func TestResult_String(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{"interrupted", Result{Interrupted: true}, "INTERRUPTED"},
		{"unsat", Result{Satisfiable: false, Exhausted: true}, "UNSATISFIABLE"},
		{"sat exhausted", Result{Satisfiable: true, Exhausted: true}, "SATISFIABLE (exhausted)"},
		{"sat cut short", Result{Satisfiable: true}, "SATISFIABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.String())
		})
	}
}
