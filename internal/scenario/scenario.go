package scenario

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/shapes/internal/dataset"
	"github.com/roach88/shapes/internal/shape"
)

// Scenario is a named sequence of query steps over one shape collection.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario checks.
	Description string `yaml:"description"`

	// Sample selects the built-in reference collection.
	Sample bool `yaml:"sample,omitempty"`

	// ShapesFile is a YAML or CUE shape file.
	ShapesFile string `yaml:"shapes_file,omitempty"`

	// Shapes lists the collection inline.
	Shapes []dataset.ShapeSpec `yaml:"shapes,omitempty"`

	// Steps run in order against the same collection.
	Steps []Step `yaml:"steps"`
}

// Step is one query. Which parameters apply depends on Op.
type Step struct {
	Op        string             `yaml:"op"`
	Threshold *float64           `yaml:"threshold,omitempty"`
	Point     *dataset.PointSpec `yaml:"point,omitempty"`
	Header    string             `yaml:"header,omitempty"`
	Kinds     []string           `yaml:"kinds,omitempty"`

	// Expect is checked after the step runs. Nil means no check.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect holds the optional checks of a step. Only set fields are checked.
type Expect struct {
	// Total is the expected total_area result, compared to two decimals.
	Total *float64 `yaml:"total,omitempty"`

	// Count is the number of reported shapes, or of remaining shapes after prune_below.
	Count *int `yaml:"count,omitempty"`

	// Kinds is the expected kind of each reported shape, in order.
	Kinds []string `yaml:"kinds,omitempty"`

	// Lines is the expected description of each reported shape, in order.
	Lines []string `yaml:"lines,omitempty"`
}

// Operation names.
const (
	OpTotalArea         = "total_area"
	OpReportAscending   = "report_ascending"
	OpReportLeftToRight = "report_left_to_right"
	OpPruneBelow        = "prune_below"
	OpReportContaining  = "report_containing"
	OpList              = "list"
	OpGroup             = "group"
)

// LoadScenario reads and validates a scenario YAML file. A relative
// shapes_file is resolved against the directory of path.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	s, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if s.ShapesFile != "" && !filepath.IsAbs(s.ShapesFile) {
		s.ShapesFile = filepath.Join(filepath.Dir(path), s.ShapesFile)
	}
	return s, nil
}

// ParseScenario decodes and validates scenario YAML. Unknown fields are rejected.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	sources := 0
	if s.Sample {
		sources++
	}
	if s.ShapesFile != "" {
		sources++
	}
	if s.Shapes != nil {
		sources++
	}
	if sources != 1 {
		return fmt.Errorf("exactly one of sample, shapes_file or shapes is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	for i := range s.Steps {
		if err := validateStep(i, &s.Steps[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateStep(index int, st *Step) error {
	switch st.Op {
	case "":
		return fmt.Errorf("steps[%d]: op is required", index)
	case OpTotalArea, OpReportAscending, OpReportLeftToRight:
	case OpPruneBelow:
		if st.Threshold == nil {
			return fmt.Errorf("steps[%d]: threshold is required for prune_below", index)
		}
	case OpReportContaining:
		if st.Point == nil {
			return fmt.Errorf("steps[%d]: point is required for report_containing", index)
		}
	case OpList:
		if st.Header == "" {
			return fmt.Errorf("steps[%d]: header is required for list", index)
		}
	case OpGroup:
		if st.Header == "" {
			return fmt.Errorf("steps[%d]: header is required for group", index)
		}
		seen := make(map[string]bool, len(st.Kinds))
		for _, k := range st.Kinds {
			if _, err := shape.ParseKind(k); err != nil {
				return fmt.Errorf("steps[%d]: %w", index, err)
			}
			if seen[k] {
				return fmt.Errorf("steps[%d]: kind %q listed twice", index, k)
			}
			seen[k] = true
		}
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, st.Op)
	}

	if st.Expect != nil {
		if st.Expect.Total != nil && st.Op != OpTotalArea {
			return fmt.Errorf("steps[%d].expect: total only applies to total_area", index)
		}
		if !reportsShapes(st.Op) && (st.Expect.Kinds != nil || st.Expect.Lines != nil) {
			return fmt.Errorf("steps[%d].expect: kinds and lines do not apply to %s", index, st.Op)
		}
		if st.Expect.Count != nil && *st.Expect.Count < 0 {
			return fmt.Errorf("steps[%d].expect: count must be non-negative", index)
		}
	}
	return nil
}

// reportsShapes reports whether op produces a list of shapes to check.
func reportsShapes(op string) bool {
	return op != OpTotalArea && op != OpPruneBelow
}
