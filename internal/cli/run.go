package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/attest/internal/store"
	"github.com/roach88/attest/internal/suite"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Database string

	// IDGenerator overrides the run ID generator (for testing). If nil,
	// defaults to store.UUIDGenerator.
	IDGenerator store.IDGenerator
}

// TestReport is the per-test output of the run command.
type TestReport struct {
	Suite   string `json:"suite"`
	Test    string `json:"test"`
	Value   bool   `json:"value"`
	Certain bool   `json:"certain"`
	Passed  bool   `json:"passed"`
	RunID   string `json:"run_id,omitempty"`
}

// RunReport is the overall output of the run command.
type RunReport struct {
	Tests  []TestReport `json:"tests"`
	Total  int          `json:"total"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <path>",
		Short: "Run test suites against the solver",
		Long: `Run every suite found at the given path.

Each test compiles into a check tree and is evaluated against the models
of its suite's program. With --db, every run is archived with its captured
solver events for later replay.

Exit codes:
  0 - All tests passed
  1 - One or more tests failed
  2 - Command error (invalid suites, database error, etc.)

Examples:
  attest run ./suites
  attest run ./suites --db ./attest.db
  attest run suite.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuites(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "archive runs to this SQLite database")

	return cmd
}

func runSuites(opts *RunOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, loadErrors := LoadSuites(path)
	if result == nil || len(loadErrors) > 0 {
		if result != nil {
			for _, err := range loadErrors {
				formatter.VerboseLog("load error: %v", err)
			}
		}
		msg := loadErrors[0].Error()
		_ = formatter.Error(ErrCodeInvalid, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	var st *store.Store
	if opts.Database != "" {
		var err error
		st, err = store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
	}

	gen := opts.IDGenerator
	if gen == nil {
		gen = store.UUIDGenerator{}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	report := RunReport{}
	for _, s := range result.Suites {
		slog.Info("running suite", "suite", s.Name, "tests", len(s.Tests))

		results, err := suite.Run(ctx, s)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("suite %q failed", s.Name), err)
		}

		for i, res := range results {
			tr := TestReport{
				Suite:   res.Suite,
				Test:    res.Test,
				Value:   res.Outcome.Value(),
				Certain: res.Outcome.Certain(),
				Passed:  res.Passed,
			}

			if st != nil {
				run, err := store.NewRun(gen, res, &s.Tests[i].Check)
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to archive run", err)
				}
				if err := st.WriteRun(ctx, run, res.Events); err != nil {
					return WrapExitError(ExitCommandError, "failed to archive run", err)
				}
				tr.RunID = run.ID
			}

			report.Tests = append(report.Tests, tr)
			report.Total++
			if tr.Passed {
				report.Passed++
			} else {
				report.Failed++
			}
		}
	}

	if opts.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return WrapExitError(ExitCommandError, "failed to write output", err)
		}
	} else {
		for _, tr := range report.Tests {
			status := "FAIL"
			if tr.Passed {
				status = "PASS"
			}
			fmt.Fprintf(formatter.Writer, "%s  %s/%s", status, tr.Suite, tr.Test)
			if tr.RunID != "" {
				fmt.Fprintf(formatter.Writer, "  (run %s)", tr.RunID)
			}
			fmt.Fprintln(formatter.Writer)
		}
		fmt.Fprintf(formatter.Writer, "%d passed, %d failed, %d total\n",
			report.Passed, report.Failed, report.Total)
	}

	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d test(s) failed", report.Failed))
	}
	return nil
}
