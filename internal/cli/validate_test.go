package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_OK(t *testing.T) {
	dir := t.TempDir()
	writeSuiteFile(t, dir, "xor.yaml", xorYAML)
	writeSuiteFile(t, dir, "xor.cue", xorCUE)

	out, err := executeCommand(t, "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "OK: 2 suite(s) in 2 file(s)")
	assert.Contains(t, out, "xor")
	assert.Contains(t, out, "xor-cue")
}

func TestValidateCommand_ReportsAllErrors(t *testing.T) {
	dir := t.TempDir()
	writeSuiteFile(t, dir, "bad.yaml", `
name: bad
program:
  clauses: [[a]]
tests:
  - name: ""
    check:
      constant: {value: true}
  - name: dup
    check: {}
`)

	out, err := executeCommand(t, "validate", dir, "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	data, merr := json.Marshal(resp.Data)
	require.NoError(t, merr)
	var res ValidationResult
	require.NoError(t, json.Unmarshal(data, &res))

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 2)
}

func TestValidateCommand_MissingPath(t *testing.T) {
	_, err := executeCommand(t, "validate", "/does/not/exist")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
