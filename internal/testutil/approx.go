package testutil

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/roach88/shapes/internal/shape"
)

// Tolerance is the absolute float tolerance used when comparing computed geometry.
const Tolerance = 1e-9

// ApproxFloats treats float64 values within Tolerance of each other as equal.
var ApproxFloats = cmpopts.EquateApprox(0, Tolerance)

// shapeOpts also treats nil and empty collections as equal, since pruning
// returns an empty slice over the original backing array.
var shapeOpts = cmp.Options{ApproxFloats, cmpopts.EquateEmpty()}

// DiffShapes returns a human-readable diff between two shape collections,
// or "" when they are equal within Tolerance.
//
// Circle centers are compared by value, not by pointer identity.
func DiffShapes(want, got []shape.Shape) string {
	return cmp.Diff(want, got, shapeOpts)
}

// Descriptions renders every shape with Describe, for readable assertions on order.
func Descriptions(shapes []shape.Shape) []string {
	out := make([]string, len(shapes))
	for i, s := range shapes {
		out[i] = s.Describe()
	}
	return out
}
