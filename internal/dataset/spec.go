package dataset

import (
	"github.com/roach88/shapes/internal/shape"
)

// PointSpec is the file form of a point.
type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ShapeSpec is the file form of one shape. Which fields are required
// depends on Kind.
type ShapeSpec struct {
	Kind string `yaml:"kind"`

	// point
	X *float64 `yaml:"x,omitempty"`
	Y *float64 `yaml:"y,omitempty"`

	// circle
	Center *PointSpec `yaml:"center,omitempty"`
	Radius *float64   `yaml:"radius,omitempty"`

	// rectangle
	TopLeft     *PointSpec `yaml:"top_left,omitempty"`
	BottomLeft  *PointSpec `yaml:"bottom_left,omitempty"`
	TopRight    *PointSpec `yaml:"top_right,omitempty"`
	BottomRight *PointSpec `yaml:"bottom_right,omitempty"`
}

// File is the top-level structure of a shape file.
type File struct {
	Shapes []ShapeSpec `yaml:"shapes"`
}

func (p PointSpec) point() shape.Point {
	return shape.NewPoint(p.X, p.Y)
}

// Build converts a spec into a shape. index is used in error messages only.
func (s ShapeSpec) Build(index int) (shape.Shape, error) {
	kind, err := shape.ParseKind(s.Kind)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeUnknownKind, Message: err.Error(), Index: index}
	}

	missing := func(field string) error {
		return &LoadError{
			Code:    ErrCodeMissingField,
			Message: string(kind) + " requires " + field,
			Index:   index,
		}
	}

	switch kind {
	case shape.KindPoint:
		if s.X == nil {
			return nil, missing("x")
		}
		if s.Y == nil {
			return nil, missing("y")
		}
		return shape.NewPoint(*s.X, *s.Y), nil

	case shape.KindCircle:
		if s.Radius == nil {
			return nil, missing("radius")
		}
		if s.Center == nil {
			return shape.Circle{Radius: *s.Radius}, nil
		}
		return shape.NewCircle(s.Center.point(), *s.Radius), nil

	default:
		corners := []struct {
			name string
			spec *PointSpec
		}{
			{"top_left", s.TopLeft},
			{"bottom_left", s.BottomLeft},
			{"top_right", s.TopRight},
			{"bottom_right", s.BottomRight},
		}
		for _, c := range corners {
			if c.spec == nil {
				return nil, missing(c.name)
			}
		}
		return shape.NewRectangle(s.TopLeft.point(), s.BottomLeft.point(), s.TopRight.point(), s.BottomRight.point()), nil
	}
}

// BuildAll converts every spec, stopping at the first error.
func BuildAll(specs []ShapeSpec) ([]shape.Shape, error) {
	shapes := make([]shape.Shape, 0, len(specs))
	for i, spec := range specs {
		s, err := spec.Build(i)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}
