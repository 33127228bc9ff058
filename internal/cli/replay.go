package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/attest/internal/store"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Database string
}

// ReplayReport is the output of the replay command.
type ReplayReport struct {
	RunID      string   `json:"run_id"`
	Suite      string   `json:"suite"`
	Test       string   `json:"test"`
	Value      bool     `json:"value"`
	Certain    bool     `json:"certain"`
	Verified   bool     `json:"verified"`
	Mismatches []string `json:"mismatches,omitempty"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay <run-id>",
		Short: "Replay an archived run and verify its verdict",
		Long: `Replay an archived run from the database.

The stored check spec is recompiled into a fresh tree and the stored
solver events are fed through it again. The replayed verdict and recording
hash must match the archived ones.

Exit codes:
  0 - Replay verified
  1 - Replay contradicted the archive
  2 - Command error (database or run not found, etc.)

Examples:
  attest replay --db ./attest.db 1b4e28ba-2fa1-11ec-8d3d-0242ac130003`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runReplay(opts *ReplayOptions, runID string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := st.Replay(ctx, runID)
	if store.IsNotFound(err) {
		return WrapExitError(ExitCommandError, fmt.Sprintf("run %q not found", runID), err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "replay failed", err)
	}

	report := ReplayReport{
		RunID:      res.Run.ID,
		Suite:      res.Run.Suite,
		Test:       res.Run.Test,
		Value:      res.Outcome.Value(),
		Certain:    res.Outcome.Certain(),
		Verified:   res.Verified,
		Mismatches: res.Mismatches,
	}

	if opts.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return WrapExitError(ExitCommandError, "failed to write output", err)
		}
	} else {
		if report.Verified {
			fmt.Fprintf(formatter.Writer, "VERIFIED  %s/%s (run %s)\n", report.Suite, report.Test, report.RunID)
		} else {
			fmt.Fprintf(formatter.Writer, "MISMATCH  %s/%s (run %s): %s\n",
				report.Suite, report.Test, report.RunID, strings.Join(report.Mismatches, ", "))
		}
	}

	if !report.Verified {
		return NewExitError(ExitFailure, "replay contradicted the archive")
	}
	return nil
}
