package scenario

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/shapes/internal/canon"
)

// Transcript renders a result as canonical JSON for golden comparison.
//
// Only the trace and the final fingerprint are included; pass/fail and error
// messages are checked by expectations, not by the golden file.
func Transcript(name string, result *Result) ([]byte, error) {
	trace := make(canon.Array, len(result.Trace))
	for i, event := range result.Trace {
		obj := canon.Object{
			"seq":   canon.Int(event.Seq),
			"op":    canon.String(event.Op),
			"count": canon.Int(event.Count),
		}
		if len(event.Lines) > 0 {
			obj["lines"] = canon.Strings(event.Lines)
		}
		if event.Removed > 0 {
			obj["removed"] = canon.Int(event.Removed)
		}
		trace[i] = obj
	}

	return canon.Marshal(canon.Object{
		"scenario_name": canon.String(name),
		"fingerprint":   canon.String(result.Fingerprint),
		"trace":         trace,
	})
}

// GoldenDir is the fixture directory used by RunWithGolden and AssertGolden,
// relative to the package under test.
const GoldenDir = "testdata/scenarios/golden"

// GoldenPath returns the golden file of a scenario file: a golden/
// directory next to it, holding {name}.golden.
func GoldenPath(scenarioFile string) string {
	base := filepath.Base(scenarioFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(scenarioFile), "golden", name+".golden")
}

// RunWithGolden executes a scenario and compares its transcript against
// {GoldenDir}/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/scenario -update
func RunWithGolden(t *testing.T, s *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(s)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, s.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against its golden file without re-running.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := Transcript(name, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}
