package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ValidationResult holds validation results for the validate command.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Suites []string `json:"suites,omitempty"`
	Files  int      `json:"files"`
	Errors []string `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate test suites without running them",
		Long: `Validate suite files without solving anything.

Checks YAML/CUE syntax, strict field names, and suite structure, and
reports every error found rather than stopping at the first.

Exit codes:
  0 - All suites valid
  1 - Validation errors found
  2 - Command error (path not found, etc.)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, loadErrors := LoadSuites(path)
	if result == nil {
		// Path-level failure, nothing could be loaded.
		msg := loadErrors[0].Error()
		_ = formatter.Error(ErrCodeNotFound, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	res := ValidationResult{
		Valid: len(loadErrors) == 0,
		Files: result.FileCount,
	}
	for _, s := range result.Suites {
		res.Suites = append(res.Suites, s.Name)
	}
	for _, err := range loadErrors {
		res.Errors = append(res.Errors, err.Error())
	}

	if opts.Format == "json" {
		if err := formatter.Success(res); err != nil {
			return WrapExitError(ExitCommandError, "failed to write output", err)
		}
	} else {
		if res.Valid {
			fmt.Fprintf(formatter.Writer, "OK: %d suite(s) in %d file(s)\n", len(res.Suites), res.Files)
			for _, name := range res.Suites {
				fmt.Fprintf(formatter.Writer, "  %s\n", name)
			}
		} else {
			fmt.Fprintf(formatter.Writer, "INVALID: %d error(s)\n", len(res.Errors))
			fmt.Fprintln(formatter.Writer, strings.Join(res.Errors, "\n"))
		}
	}

	if !res.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%d validation error(s)", len(res.Errors)))
	}
	return nil
}
