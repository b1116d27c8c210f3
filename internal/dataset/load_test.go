package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/shapes/internal/shape"
	"github.com/roach88/shapes/internal/testutil"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func requireLoadError(t *testing.T, err error, code string) *LoadError {
	t.Helper()
	require.Error(t, err)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "expected *LoadError, got %T: %v", err, err)
	assert.Equal(t, code, loadErr.Code, loadErr.Error())
	return loadErr
}

func TestSample(t *testing.T) {
	shapes := Sample()
	require.Len(t, shapes, 5)
	assert.Equal(t, shape.KindRectangle, shapes[0].Kind())

	shapes[0] = shape.NewPoint(0, 0)
	assert.Equal(t, shape.KindRectangle, Sample()[0].Kind(), "each call returns a fresh collection")
}

func TestLoadFile_SampleYAML(t *testing.T) {
	shapes, err := LoadFile("testdata/sample.yaml")
	require.NoError(t, err)
	assert.Empty(t, testutil.DiffShapes(Sample(), shapes))
}

func TestLoadFile_SampleCUE(t *testing.T) {
	shapes, err := LoadFile("testdata/sample.cue")
	require.NoError(t, err)
	assert.Empty(t, testutil.DiffShapes(Sample(), shapes))
}

func TestLoadFile_MixedYAML(t *testing.T) {
	shapes, err := LoadFile("testdata/mixed.yaml")
	require.NoError(t, err)
	require.Len(t, shapes, 3)

	assert.Equal(t, shape.NewPoint(1, 1), shapes[0])

	orphan, ok := shapes[1].(shape.Circle)
	require.True(t, ok)
	assert.Nil(t, orphan.Center, "circle without center loads with a nil center")

	// Loading is structural only; the negative radius is kept.
	assert.Equal(t, -1.0, shapes[2].(shape.Circle).Radius)
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	requireLoadError(t, err, ErrCodeNotFound)
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "shapes.json", `{"shapes": []}`)
	_, err := LoadFile(path)
	lerr := requireLoadError(t, err, ErrCodeUnsupported)
	assert.Contains(t, lerr.Message, ".json")
}

func TestLoadYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"empty file", "", ErrCodeNoShapes},
		{"no shapes key", "other: 1\n", ErrCodeParseFailed},
		{"missing shapes list", "shapes:\n", ErrCodeNoShapes},
		{"unknown field", "shapes:\n  - kind: circle\n    raduis: 2\n", ErrCodeParseFailed},
		{"unknown kind", "shapes:\n  - kind: triangle\n", ErrCodeUnknownKind},
		{"circle without radius", "shapes:\n  - kind: circle\n    center: {x: 0, y: 0}\n", ErrCodeMissingField},
		{"point without y", "shapes:\n  - kind: point\n    x: 1\n", ErrCodeMissingField},
		{"rectangle missing corner", "shapes:\n  - kind: rectangle\n    top_left: {x: 0, y: 1}\n", ErrCodeMissingField},
		{"malformed", "shapes: [\n", ErrCodeParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML([]byte(tt.content))
			requireLoadError(t, err, tt.code)
		})
	}
}

func TestLoadYAML_ErrorNamesIndex(t *testing.T) {
	content := "shapes:\n  - kind: point\n    x: 1\n    y: 1\n  - kind: hexagon\n"
	_, err := LoadYAML([]byte(content))
	lerr := requireLoadError(t, err, ErrCodeUnknownKind)
	assert.Equal(t, 1, lerr.Index)
	assert.Contains(t, lerr.Error(), "shapes[1]")
}

func TestLoadYAML_EmptyList(t *testing.T) {
	shapes, err := LoadYAML([]byte("shapes: []\n"))
	require.NoError(t, err)
	assert.Empty(t, shapes)
}

func TestLoadCUE_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"syntax error", "shapes: [", ErrCodeParseFailed},
		{"no shapes", "other: 1", ErrCodeNoShapes},
		{"shapes not a list", "shapes: {a: 1}", ErrCodeParseFailed},
		{"missing kind", `shapes: [{radius: 1}]`, ErrCodeMissingField},
		{"kind not a string", `shapes: [{kind: 3}]`, ErrCodeParseFailed},
		{"radius not a number", `shapes: [{kind: "circle", radius: "big"}]`, ErrCodeParseFailed},
		{"center missing y", `shapes: [{kind: "circle", radius: 1, center: {x: 1}}]`, ErrCodeMissingField},
		{"unknown kind", `shapes: [{kind: "hexagon"}]`, ErrCodeUnknownKind},
		{"unknown field", `shapes: [{kind: "circle", center: {x: 0, y: 0}, raduis: 2}]`, ErrCodeParseFailed},
		{"unknown point field", `shapes: [{kind: "circle", radius: 1, center: {x: 0, y: 0, z: 0}}]`, ErrCodeParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCUE("shapes.cue", []byte(tt.content))
			requireLoadError(t, err, tt.code)
		})
	}
}

func TestLoadCUE_ErrorCarriesPosition(t *testing.T) {
	content := "shapes: [\n\t{kind: \"circle\", radius: \"big\"},\n]\n"
	_, err := LoadCUE("positions.cue", []byte(content))
	lerr := requireLoadError(t, err, ErrCodeParseFailed)

	require.True(t, lerr.Pos.IsValid())
	assert.Equal(t, 2, lerr.Pos.Line())
	assert.Contains(t, lerr.Error(), "positions.cue:2:")
}

func TestLoadCUE_UnknownFieldNamesFieldAndPosition(t *testing.T) {
	content := "shapes: [\n\t{kind: \"point\", x: 0, y: 0},\n\t{kind: \"circle\",\n\t\traduis: 2},\n]\n"
	_, err := LoadCUE("typo.cue", []byte(content))
	lerr := requireLoadError(t, err, ErrCodeParseFailed)

	assert.Equal(t, 1, lerr.Index)
	assert.Contains(t, lerr.Message, `unknown field "raduis"`)
	require.True(t, lerr.Pos.IsValid())
	assert.Equal(t, 4, lerr.Pos.Line())
}

func TestLoadCUE_BuildErrorsCarryPosition(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"unknown kind", "shapes: [\n\t{kind: \"point\", x: 0, y: 0},\n\t{kind: \"hexagon\"},\n]\n", ErrCodeUnknownKind},
		{"missing radius", "shapes: [\n\t{kind: \"point\", x: 0, y: 0},\n\t{kind: \"circle\"},\n]\n", ErrCodeMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCUE("build.cue", []byte(tt.content))
			lerr := requireLoadError(t, err, tt.code)

			assert.Equal(t, 1, lerr.Index)
			require.True(t, lerr.Pos.IsValid())
			assert.Equal(t, 3, lerr.Pos.Line())
			assert.Contains(t, lerr.Error(), "build.cue:3:")
		})
	}
}

func TestLoadCUE_HiddenFieldsAllowed(t *testing.T) {
	content := `shapes: [{kind: "point", _note: "origin", x: 0, y: 0}]`
	shapes, err := LoadCUE("hidden.cue", []byte(content))
	require.NoError(t, err)
	assert.Equal(t, []shape.Shape{shape.NewPoint(0, 0)}, shapes)
}

func TestLoadCUE_EvaluatesExpressions(t *testing.T) {
	content := `
_r: 2
shapes: [{kind: "circle", center: {x: 0, y: 0}, radius: _r * 2}]
`
	shapes, err := LoadCUE("expr.cue", []byte(content))
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Equal(t, 4.0, shapes[0].(shape.Circle).Radius)
}
