package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/shapes/internal/shape"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Shapes int               `json:"shapes"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError describes one shape that failed geometry validation.
type ValidationError struct {
	Index   int    `json:"index"`
	Kind    string `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <shape-file>",
		Short: "Check a shape file for degenerate geometry",
		Long: `Load a YAML or CUE shape file and check every shape's geometry.

Queries accept any shape, including circles without a center, negative radii
and skewed rectangles. validate reports those before they reach a report.

Exit codes:
  0 - All shapes valid
  1 - One or more shapes failed validation
  2 - Command error (file not found, parse error, etc.)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, file string, cmd *cobra.Command) error {
	logger := newLogger(opts, cmd.ErrOrStderr())
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	shapes, _, err := loadCollection(file)
	if err != nil {
		return loadFailure(formatter, err)
	}
	formatter.VerboseLog("Loaded %d shape(s) from %s", len(shapes), file)

	var findings []ValidationError
	for _, err := range shape.ValidateAll(shapes) {
		findings = append(findings, toValidationError(shapes, err))
	}
	logger.Debug("validation finished", "file", file, "shapes", len(shapes), "findings", len(findings))

	if len(findings) > 0 {
		return outputValidationErrors(formatter, len(shapes), findings)
	}
	return outputValidateSuccess(formatter, len(shapes))
}

// toValidationError flattens an error from shape.ValidateAll.
func toValidationError(shapes []shape.Shape, err error) ValidationError {
	ve := ValidationError{
		Index:   -1,
		Code:    ErrCodeGeneric,
		Message: err.Error(),
	}
	var indexed *shape.IndexedError
	if errors.As(err, &indexed) {
		ve.Index = indexed.Index
		ve.Kind = string(shapes[indexed.Index].Kind())
		ve.Message = indexed.Err.Error()
	}
	var ge *shape.GeometryError
	if errors.As(err, &ge) {
		ve.Code = string(ge.Code)
		ve.Message = ge.Message
	}
	return ve
}

func outputValidateSuccess(formatter *OutputFormatter, count int) error {
	if formatter.IsJSON() {
		return formatter.Success(ValidationResult{Valid: true, Shapes: count})
	}

	fmt.Fprintf(formatter.Writer, "✓ All %d shape(s) valid\n", count)
	return nil
}

// outputValidationErrors outputs every finding.
func outputValidationErrors(formatter *OutputFormatter, count int, errs []ValidationError) error {
	if formatter.IsJSON() {
		response := CLIResponse{
			Status: "error",
			Data: ValidationResult{
				Valid:  false,
				Shapes: count,
				Errors: errs,
			},
			Error: &CLIError{
				Code:    ErrCodeInvalidShapes,
				Message: fmt.Sprintf("%d of %d shape(s) invalid", len(errs), count),
			},
		}
		if err := formatter.Encode(response); err != nil {
			return err
		}

		// Validation failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	w := formatter.Writer
	fmt.Fprintf(w, "✗ %d of %d shape(s) invalid\n", len(errs), count)
	for _, e := range errs {
		fmt.Fprintf(w, "  shapes[%d] %s: [%s] %s\n", e.Index, e.Kind, e.Code, e.Message)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
