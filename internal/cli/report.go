package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/shapes/internal/canon"
	"github.com/roach88/shapes/internal/dataset"
	"github.com/roach88/shapes/internal/query"
	"github.com/roach88/shapes/internal/runid"
	"github.com/roach88/shapes/internal/shape"
)

// SampleSource names the built-in collection in report documents.
const SampleSource = "sample"

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	ShapesFile string
	Threshold  float64
	Point      string

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs runid.Generator
}

// ReportDocument is the JSON form of a report run.
type ReportDocument struct {
	RunID string `json:"run_id"`

	// Source is the shape file path, or "sample".
	Source string `json:"source"`

	// Fingerprint identifies the collection as loaded, before pruning.
	Fingerprint string `json:"fingerprint"`

	Shapes    int `json:"shapes"`
	Remaining int `json:"remaining"`

	// TotalArea has two decimals like the text report. It is a string so
	// that NaN and infinite totals from degenerate shapes still encode.
	TotalArea string `json:"total_area"`

	Sections []ReportSection `json:"sections"`

	total float64
}

// ReportSection is one rendered report.
type ReportSection struct {
	Header string   `json:"header"`
	Shapes []string `json:"shapes"`
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the standard queries over a shape collection",
		Long: `Run the standard query sequence over a shape collection:

  1. total area
  2. shapes in ascending order by size
  3. shapes from left to right
  4. remove shapes with area below the threshold, list the rest by kind
  5. shapes containing the query point

Without --shapes the built-in sample collection is used.

Examples:
  shapes report
  shapes report --shapes ./shapes.yaml --threshold 5 --point 1,2
  shapes report --shapes ./shapes.cue --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ShapesFile, "shapes", "", "YAML or CUE shape file (default: built-in sample)")
	cmd.Flags().Float64Var(&opts.Threshold, "threshold", 10, "remove shapes with area below this value")
	cmd.Flags().StringVar(&opts.Point, "point", "3,4", "query point for containment, as x,y")

	return cmd
}

func runReport(opts *ReportOptions, cmd *cobra.Command) error {
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	p, err := parsePoint(opts.Point)
	if err != nil {
		return commandError(formatter, ErrCodeInvalidFlag, err.Error(), nil)
	}

	shapes, source, err := loadCollection(opts.ShapesFile)
	if err != nil {
		return loadFailure(formatter, err)
	}
	logger.Debug("collection loaded", "source", source, "shapes", len(shapes))

	fp, err := canon.Fingerprint(shapes)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to fingerprint collection", err)
	}

	gen := opts.RunIDs
	if gen == nil {
		gen = runid.UUIDv7Generator{}
	}

	doc := buildReport(shapes, p, opts.Threshold)
	doc.RunID = gen.Generate()
	doc.Source = source
	doc.Fingerprint = fp

	logger.Info("report completed",
		"run_id", doc.RunID,
		"shapes", doc.Shapes,
		"remaining", doc.Remaining,
		"fingerprint", fp)

	if formatter.IsJSON() {
		return formatter.Encode(CLIResponse{
			Status: "ok",
			Data:   doc,
			RunID:  doc.RunID,
		})
	}

	formatter.Lines([]string{query.TotalAreaLine(doc.total)})
	for _, section := range doc.Sections {
		formatter.Lines([]string{section.Header})
		formatter.Lines(section.Shapes)
	}
	return nil
}

// buildReport runs the query sequence. shapes is reordered and pruned in place.
func buildReport(shapes []shape.Shape, p shape.Point, threshold float64) ReportDocument {
	total := query.TotalArea(shapes)
	doc := ReportDocument{
		Shapes:    len(shapes),
		TotalArea: string(canon.Fixed2(total)),
		total:     total,
	}

	reports := []query.Report{
		query.ReportAscending(shapes),
		query.ReportLeftToRight(shapes),
	}

	shapes = query.PruneBelow(shapes, threshold)
	doc.Remaining = len(shapes)

	reports = append(reports,
		query.ReportGrouped(query.PrunedHeader(threshold), shapes, shape.KindCircle, shape.KindRectangle, shape.KindPoint),
		query.ReportContaining(shapes, p),
	)

	doc.Sections = make([]ReportSection, len(reports))
	for i, r := range reports {
		lines := r.Lines()
		doc.Sections[i] = ReportSection{Header: lines[0], Shapes: lines[1:]}
	}
	return doc
}

// loadCollection returns the shapes of file, or the sample set when file is empty.
func loadCollection(file string) ([]shape.Shape, string, error) {
	if file == "" {
		return dataset.Sample(), SampleSource, nil
	}
	shapes, err := dataset.LoadFile(file)
	if err != nil {
		return nil, file, err
	}
	return shapes, file, nil
}

// loadFailure reports a shape file error using its dataset code when it has one.
func loadFailure(f *OutputFormatter, err error) error {
	var loadErr *dataset.LoadError
	if errors.As(err, &loadErr) {
		details := map[string]any{}
		if loadErr.Index >= 0 {
			details["index"] = loadErr.Index
		}
		if loadErr.Pos.IsValid() {
			details["file"] = loadErr.Pos.Filename()
			details["line"] = loadErr.Pos.Line()
		}
		if len(details) == 0 {
			details = nil
		}
		return commandError(f, loadErr.Code, loadErr.Error(), details)
	}
	return commandError(f, ErrCodeGeneric, err.Error(), nil)
}

// parsePoint parses "x,y".
func parsePoint(s string) (shape.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return shape.Point{}, fmt.Errorf("invalid point %q: expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return shape.Point{}, fmt.Errorf("invalid point %q: bad x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return shape.Point{}, fmt.Errorf("invalid point %q: bad y: %w", s, err)
	}
	return shape.NewPoint(x, y), nil
}
