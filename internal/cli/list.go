package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/attest/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Database string
}

// RunSummary is one row of the list command's output.
type RunSummary struct {
	RunID   string `json:"run_id"`
	Suite   string `json:"suite"`
	Test    string `json:"test"`
	Value   bool   `json:"value"`
	Certain bool   `json:"certain"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived runs",
		Long: `List every archived run in the database, ordered by suite and test.

Examples:
  attest list --db ./attest.db
  attest list --db ./attest.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
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

	runs, err := st.ListRuns(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	summaries := make([]RunSummary, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, RunSummary{
			RunID:   run.ID,
			Suite:   run.Suite,
			Test:    run.Test,
			Value:   run.Value,
			Certain: run.Certain,
		})
	}

	if opts.Format == "json" {
		if err := formatter.Success(summaries); err != nil {
			return WrapExitError(ExitCommandError, "failed to write output", err)
		}
		return nil
	}

	if len(summaries) == 0 {
		fmt.Fprintln(formatter.Writer, "no archived runs")
		return nil
	}
	for _, s := range summaries {
		verdict := "false"
		if s.Value {
			verdict = "true"
		}
		if !s.Certain {
			verdict += " (uncertain)"
		}
		fmt.Fprintf(formatter.Writer, "%s  %s/%s  %s\n", s.RunID, s.Suite, s.Test, verdict)
	}
	return nil
}
