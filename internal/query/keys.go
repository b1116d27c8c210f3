package query

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/roach88/shapes/internal/shape"
)

// PointSizeKey is the size key of a point-shape.
// A point has no radius or length, so it ranks with zero-sized shapes.
const PointSizeKey = 0.0

// MissingCenterX is the X key of a circle without a center; such circles sort first.
const MissingCenterX = -math.MaxFloat64

// KeyFunc maps a shape to the scalar it is ordered by.
type KeyFunc func(shape.Shape) float64

// KeyTable holds one KeyFunc per shape kind.
type KeyTable map[shape.Kind]KeyFunc

// Key returns the key of s.
// It panics if the table has no entry for the kind of s.
func (t KeyTable) Key(s shape.Shape) float64 {
	fn, ok := t[s.Kind()]
	if !ok {
		panic(fmt.Sprintf("query: no key function for shape kind %q", s.Kind()))
	}
	return fn(s)
}

// Compare orders a and b by their keys. NaN keys sort before every number.
func (t KeyTable) Compare(a, b shape.Shape) int {
	return cmp.Compare(t.Key(a), t.Key(b))
}

// SizeKeys orders shapes by size: circle radius, rectangle length.
var SizeKeys = KeyTable{
	shape.KindPoint: func(shape.Shape) float64 {
		return PointSizeKey
	},
	shape.KindCircle: func(s shape.Shape) float64 {
		return s.(shape.Circle).Radius
	},
	shape.KindRectangle: func(s shape.Shape) float64 {
		return s.(shape.Rectangle).Length()
	},
}

// XKeys orders shapes from left to right: circle center X, rectangle
// horizontal midpoint, point X.
var XKeys = KeyTable{
	shape.KindPoint: func(s shape.Shape) float64 {
		return s.(shape.Point).X
	},
	shape.KindCircle: func(s shape.Shape) float64 {
		c := s.(shape.Circle)
		if c.Center == nil {
			return MissingCenterX
		}
		return c.Center.X
	},
	shape.KindRectangle: func(s shape.Shape) float64 {
		r := s.(shape.Rectangle)
		return (r.TopLeft.X + r.BottomRight.X) / 2
	},
}

// SortBy stably sorts shapes in place by the keys in table.
func SortBy(shapes []shape.Shape, table KeyTable) {
	slices.SortStableFunc(shapes, table.Compare)
}

// IsSortedBy reports whether shapes is in non-decreasing key order.
func IsSortedBy(shapes []shape.Shape, table KeyTable) bool {
	return slices.IsSortedFunc(shapes, table.Compare)
}
