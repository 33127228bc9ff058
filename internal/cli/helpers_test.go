package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const xorYAML = `name: xor
program:
  clauses:
    - [a]
    - [b, c]
    - [~b, ~c]
tests:
  - name: a-always-holds
    check:
      assert:
        quantifier:
          kind: all
        assertion:
          kind: contains
          atom: a
  - name: some-model-picks-b
    check:
      assert:
        quantifier:
          kind: any
        assertion:
          kind: contains
          atom: b
`

const xorCUE = `name: "xor-cue"
program: clauses: [["a"], ["b", "c"], ["~b", "~c"]]
tests: [{
	name: "exactly-two-models"
	check: assert: {
		quantifier: {kind: "exact", target: 2}
		assertion: kind: "true"
	}
}]
`

const failingYAML = `name: failing
program:
  clauses:
    - [a]
    - [b, c]
    - [~b, ~c]
tests:
  - name: every-model-picks-b
    check:
      assert:
        quantifier:
          kind: all
        assertion:
          kind: contains
          atom: b
`

// writeSuiteFile writes one suite file into dir and returns its path.
func writeSuiteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// executeCommand runs the root command with args and returns stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
