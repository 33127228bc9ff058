package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/attest/internal/store"
)

// archiveOne runs the xor suite into a fresh database and returns the
// database path plus one archived run ID.
func archiveOne(t *testing.T) (dbPath, runID string) {
	t.Helper()

	dir := t.TempDir()
	writeSuiteFile(t, dir, "xor.yaml", xorYAML)
	dbPath = filepath.Join(t.TempDir(), "attest.db")

	out, err := executeCommand(t, "run", dir, "--db", dbPath, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var report RunReport
	require.NoError(t, json.Unmarshal(data, &report))
	require.NotEmpty(t, report.Tests)
	return dbPath, report.Tests[0].RunID
}

func TestReplayCommand_Verified(t *testing.T) {
	dbPath, runID := archiveOne(t)

	out, err := executeCommand(t, "replay", runID, "--db", dbPath, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	data, merr := json.Marshal(resp.Data)
	require.NoError(t, merr)
	var report ReplayReport
	require.NoError(t, json.Unmarshal(data, &report))

	assert.True(t, report.Verified)
	assert.Empty(t, report.Mismatches)
	assert.Equal(t, runID, report.RunID)
}

func TestReplayCommand_Mismatch(t *testing.T) {
	dbPath, runID := archiveOne(t)

	// Flip the archived verdict directly.
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	_, err = st.DB().ExecContext(context.Background(),
		`UPDATE runs SET value = 1 - value WHERE id = ?`, runID)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	out, err := executeCommand(t, "replay", runID, "--db", dbPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "MISMATCH")
}

func TestReplayCommand_NotFound(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "attest.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	_, err = executeCommand(t, "replay", "missing", "--db", dbPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestListCommand_Empty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "attest.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	out, err := executeCommand(t, "list", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "no archived runs")
}
