package scenario

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"

	"github.com/roach88/shapes/internal/canon"
	"github.com/roach88/shapes/internal/dataset"
	"github.com/roach88/shapes/internal/query"
	"github.com/roach88/shapes/internal/shape"
	"github.com/roach88/shapes/internal/testutil"
)

// TotalTolerance is the slack allowed when checking expect.total, half of
// the last printed decimal.
const TotalTolerance = 0.005

// Runner executes scenarios. The zero value is not usable; use NewRunner.
type Runner struct {
	logger *slog.Logger
	seq    *testutil.Sequence
}

// NewRunner creates a runner that logs step progress to logger.
// A nil logger discards everything.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{logger: logger, seq: testutil.NewSequence()}
}

// Run executes s with logging suppressed.
func Run(s *Scenario) (*Result, error) {
	return NewRunner(nil).Run(s)
}

// Run loads the scenario's collection and executes every step in order.
//
// Failed expectations are recorded on the Result; an error is returned only
// when the scenario cannot run at all (for example an unreadable shapes file).
// Scenarios built in Go are validated like parsed ones.
func (r *Runner) Run(s *Scenario) (*Result, error) {
	if err := validateScenario(s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	shapes, err := loadShapes(s)
	if err != nil {
		return nil, fmt.Errorf("failed to load shapes: %w", err)
	}

	r.seq.Reset()
	r.logger.Debug("scenario starting", "name", s.Name, "shapes", len(shapes), "steps", len(s.Steps))

	result := NewResult()
	for i, step := range s.Steps {
		event, reported, remaining := r.execute(step, shapes)
		shapes = remaining
		result.Trace = append(result.Trace, event)

		for _, msg := range checkExpect(step, event, reported) {
			result.AddError(fmt.Sprintf("steps[%d] %s: %s", i, step.Op, msg))
		}
		r.logger.Debug("step completed", "seq", event.Seq, "op", step.Op, "count", event.Count)
	}

	fp, err := canon.Fingerprint(shapes)
	if err != nil {
		return nil, err
	}
	result.Fingerprint = fp

	r.logger.Info("scenario completed", "name", s.Name, "pass", result.Pass, "errors", len(result.Errors))
	return result, nil
}

func loadShapes(s *Scenario) ([]shape.Shape, error) {
	switch {
	case s.Sample:
		return dataset.Sample(), nil
	case s.ShapesFile != "":
		return dataset.LoadFile(s.ShapesFile)
	default:
		return dataset.BuildAll(s.Shapes)
	}
}

// execute runs one step and returns its trace event, the shapes it
// reported (if any), and the collection as the step left it.
func (r *Runner) execute(step Step, shapes []shape.Shape) (TraceEvent, []shape.Shape, []shape.Shape) {
	event := TraceEvent{Seq: r.seq.Next(), Op: step.Op}

	var report query.Report
	switch step.Op {
	case OpTotalArea:
		event.total = query.TotalArea(shapes)
		event.Lines = []string{query.TotalAreaLine(event.total)}
		event.Count = len(shapes)
		return event, nil, shapes
	case OpPruneBelow:
		before := len(shapes)
		shapes = query.PruneBelow(shapes, *step.Threshold)
		event.Count = len(shapes)
		event.Removed = before - len(shapes)
		return event, nil, shapes
	case OpReportAscending:
		report = query.ReportAscending(shapes)
	case OpReportLeftToRight:
		report = query.ReportLeftToRight(shapes)
	case OpReportContaining:
		report = query.ReportContaining(shapes, shape.NewPoint(step.Point.X, step.Point.Y))
	case OpList:
		report = query.Listing(step.Header, shapes)
	case OpGroup:
		kinds := make([]shape.Kind, len(step.Kinds))
		for i, k := range step.Kinds {
			kinds[i] = shape.Kind(k)
		}
		report = query.ReportGrouped(step.Header, shapes, kinds...)
	}

	event.Lines = report.Lines()
	event.Count = len(report.Shapes)
	return event, report.Shapes, shapes
}

// checkExpect returns one message per expectation that does not hold.
func checkExpect(step Step, event TraceEvent, reported []shape.Shape) []string {
	exp := step.Expect
	if exp == nil {
		return nil
	}

	var msgs []string
	if exp.Total != nil {
		if math.Abs(event.total-*exp.Total) > TotalTolerance {
			msgs = append(msgs, fmt.Sprintf("expected total %.2f, got %.2f", *exp.Total, event.total))
		}
	}
	if exp.Count != nil && *exp.Count != event.Count {
		msgs = append(msgs, fmt.Sprintf("expected count %d, got %d", *exp.Count, event.Count))
	}
	if exp.Kinds != nil {
		got := make([]string, len(reported))
		for i, s := range reported {
			got[i] = string(s.Kind())
		}
		if !slices.Equal(exp.Kinds, got) {
			msgs = append(msgs, fmt.Sprintf("expected kinds %v, got %v", exp.Kinds, got))
		}
	}
	if exp.Lines != nil {
		got := make([]string, len(reported))
		for i, s := range reported {
			got[i] = s.Describe()
		}
		if !slices.Equal(exp.Lines, got) {
			msgs = append(msgs, fmt.Sprintf("expected lines %q, got %q", exp.Lines, got))
		}
	}
	return msgs
}
