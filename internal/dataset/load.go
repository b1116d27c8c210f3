package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/shapes/internal/shape"
)

// LoadFile reads a shape collection, choosing the decoder by file extension.
func LoadFile(path string) ([]shape.Shape, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fileError(ErrCodeNotFound, "shape file not found: %s", path)
	}
	if err != nil {
		return nil, fileError(ErrCodeGeneric, "reading shape file: %v", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAML(data)
	case ".cue":
		return LoadCUE(path, data)
	default:
		return nil, fileError(ErrCodeUnsupported, "unsupported shape file extension %q: use .yaml, .yml or .cue", ext)
	}
}

// LoadYAML decodes a YAML shape file. Unknown fields are rejected to catch
// typos such as "raduis".
func LoadYAML(data []byte) ([]shape.Shape, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fileError(ErrCodeNoShapes, "shape file is empty")
		}
		return nil, fileError(ErrCodeParseFailed, "parsing YAML: %v", err)
	}
	if file.Shapes == nil {
		return nil, fileError(ErrCodeNoShapes, "shapes list is required")
	}
	return BuildAll(file.Shapes)
}

// LoadCUE evaluates a CUE shape file. filename is used for error positions.
func LoadCUE(filename string, data []byte) ([]shape.Shape, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fileError(ErrCodeParseFailed, "building CUE value: %v", err)
	}

	list := value.LookupPath(cue.ParsePath("shapes"))
	if !list.Exists() {
		return nil, fileError(ErrCodeNoShapes, "shapes list is required")
	}
	iter, err := list.List()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: "shapes must be a list", Index: -1, Pos: list.Pos()}
	}

	shapes := []shape.Shape{}
	for i := 0; iter.Next(); i++ {
		elem := iter.Value()
		spec, err := specFromCUE(elem, i)
		if err != nil {
			return nil, err
		}
		s, err := spec.Build(i)
		if err != nil {
			var loadErr *LoadError
			if errors.As(err, &loadErr) && !loadErr.Pos.IsValid() {
				loadErr.Pos = elem.Pos()
			}
			return nil, err
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// Field names accepted in CUE shape files, matching the YAML tags of
// ShapeSpec and PointSpec.
var (
	shapeFields = []string{"kind", "x", "y", "center", "radius", "top_left", "bottom_left", "top_right", "bottom_right"}
	pointFields = []string{"x", "y"}
)

// checkFields rejects regular fields outside allowed, like the strict YAML
// decoder does. Hidden fields and definitions are not regular fields.
func checkFields(v cue.Value, allowed []string, index int) error {
	iter, err := v.Fields()
	if err != nil {
		return &LoadError{Code: ErrCodeParseFailed, Message: "expected a struct", Index: index, Pos: v.Pos()}
	}
	for iter.Next() {
		if label := iter.Label(); !slices.Contains(allowed, label) {
			return &LoadError{
				Code:    ErrCodeParseFailed,
				Message: fmt.Sprintf("unknown field %q", label),
				Index:   index,
				Pos:     iter.Value().Pos(),
			}
		}
	}
	return nil
}

// specFromCUE reads one list element field by field so that errors carry
// the CUE position of the offending value.
func specFromCUE(v cue.Value, index int) (ShapeSpec, error) {
	var spec ShapeSpec
	if err := checkFields(v, shapeFields, index); err != nil {
		return spec, err
	}

	kindVal := v.LookupPath(cue.ParsePath("kind"))
	if !kindVal.Exists() {
		return spec, &LoadError{Code: ErrCodeMissingField, Message: "kind is required", Index: index, Pos: v.Pos()}
	}
	kind, err := kindVal.String()
	if err != nil {
		return spec, &LoadError{Code: ErrCodeParseFailed, Message: "kind must be a string", Index: index, Pos: kindVal.Pos()}
	}
	spec.Kind = kind

	if spec.X, err = lookupFloat(v, "x", index); err != nil {
		return spec, err
	}
	if spec.Y, err = lookupFloat(v, "y", index); err != nil {
		return spec, err
	}
	if spec.Radius, err = lookupFloat(v, "radius", index); err != nil {
		return spec, err
	}

	points := []struct {
		field string
		dst   **PointSpec
	}{
		{"center", &spec.Center},
		{"top_left", &spec.TopLeft},
		{"bottom_left", &spec.BottomLeft},
		{"top_right", &spec.TopRight},
		{"bottom_right", &spec.BottomRight},
	}
	for _, p := range points {
		if *p.dst, err = lookupPoint(v, p.field, index); err != nil {
			return spec, err
		}
	}

	return spec, nil
}

// lookupFloat returns nil when field is absent.
func lookupFloat(v cue.Value, field string, index int) (*float64, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return nil, nil
	}
	f, err := fv.Float64()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: field + " must be a number", Index: index, Pos: fv.Pos()}
	}
	return &f, nil
}

// lookupPoint returns nil when field is absent; x and y are both required when present.
func lookupPoint(v cue.Value, field string, index int) (*PointSpec, error) {
	pv := v.LookupPath(cue.ParsePath(field))
	if !pv.Exists() {
		return nil, nil
	}
	if err := checkFields(pv, pointFields, index); err != nil {
		return nil, err
	}
	x, err := lookupFloat(pv, "x", index)
	if err != nil {
		return nil, err
	}
	y, err := lookupFloat(pv, "y", index)
	if err != nil {
		return nil, err
	}
	if x == nil || y == nil {
		return nil, &LoadError{Code: ErrCodeMissingField, Message: field + " requires x and y", Index: index, Pos: pv.Pos()}
	}
	return &PointSpec{X: *x, Y: *y}, nil
}
