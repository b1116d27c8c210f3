package query

import (
	"slices"

	"github.com/roach88/shapes/internal/shape"
)

// TotalArea returns the sum of the areas of shapes. An empty collection yields 0.
func TotalArea(shapes []shape.Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}

// ReportAscending sorts shapes in place by SizeKeys and reports the new order.
func ReportAscending(shapes []shape.Shape) Report {
	SortBy(shapes, SizeKeys)
	return Listing(HeaderAscending, shapes)
}

// ReportLeftToRight sorts shapes in place by XKeys and reports the new order.
func ReportLeftToRight(shapes []shape.Shape) Report {
	SortBy(shapes, XKeys)
	return Listing(HeaderLeftToRight, shapes)
}

// PruneBelow removes, in place, every shape whose area is strictly less than
// threshold and returns the shortened collection.
//
// Survivors keep their relative order. The backing array of shapes is reused
// and the vacated tail is zeroed, so callers must continue with the returned
// slice:
//
//	shapes = query.PruneBelow(shapes, 10)
func PruneBelow(shapes []shape.Shape, threshold float64) []shape.Shape {
	return slices.DeleteFunc(shapes, func(s shape.Shape) bool {
		return s.Area() < threshold
	})
}

// Containing returns the shapes that contain p, in collection order.
// The collection is not modified.
func Containing(shapes []shape.Shape, p shape.Point) []shape.Shape {
	var matched []shape.Shape
	for _, s := range shapes {
		if s.Contains(p) {
			matched = append(matched, s)
		}
	}
	return matched
}

// ReportContaining reports the shapes that contain p without reordering the collection.
func ReportContaining(shapes []shape.Shape, p shape.Point) Report {
	return Report{Header: ContainingHeader(p), Shapes: Containing(shapes, p)}
}

// ReportGrouped lists shapes grouped by kind, in the order kinds are given,
// keeping collection order within a group. Shapes of unlisted kinds are
// omitted. With no kinds, every kind is listed in shape.Kinds order.
// The collection is not modified.
func ReportGrouped(header string, shapes []shape.Shape, kinds ...shape.Kind) Report {
	if len(kinds) == 0 {
		kinds = shape.Kinds
	}
	grouped := make([]shape.Shape, 0, len(shapes))
	for _, k := range kinds {
		for _, s := range shapes {
			if s.Kind() == k {
				grouped = append(grouped, s)
			}
		}
	}
	return Report{Header: header, Shapes: grouped}
}
