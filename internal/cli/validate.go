package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibexa/solr-search-engine/internal/query"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid        bool     `json:"valid"`
	Errors       []string `json:"errors,omitempty"`
	Aggregations int      `json:"aggregations"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <query.yaml>",
		Short: "Validate a query document without rendering it",
		Long: `Validate a query document: YAML structure, criterion node types,
operators and value shapes.

Rendering-time checks (visitor availability per document type) are done by
build.`,
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
	formatter := newFormatter(opts, cmd)

	data, err := os.ReadFile(path)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeReadFailed, "failed to read query", err)
	}

	formatter.VerboseLog("Validating %s (%d bytes)", path, len(data))

	doc, err := query.ParseDocument(data)
	if err == nil {
		var q query.Query
		q, err = doc.Build()
		if err == nil {
			return outputValidateSuccess(formatter, len(q.Aggregations))
		}
	}

	return outputValidationError(formatter, err)
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, aggregations int) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Aggregations: aggregations})
	}

	fmt.Fprintln(formatter.Writer, "✓ Query valid")
	return nil
}

// outputValidationError outputs a validation failure. Validation failures
// exit with code 1.
func outputValidationError(formatter *OutputFormatter, err error) error {
	if formatter.Format == "json" {
		resp := CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Errors: []string{err.Error()}},
			Error: &CLIError{
				Code:    ErrCodeInvalidQuery,
				Message: err.Error(),
			},
			TraceID: formatter.TraceID,
		}
		if encErr := formatter.encode(resp); encErr != nil {
			return encErr
		}
		return WrapExitError(ExitFailure, "validation failed", err)
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	fmt.Fprintf(formatter.Writer, "  %s: %s\n", ErrCodeInvalidQuery, err.Error())

	return WrapExitError(ExitFailure, "validation failed", err)
}
