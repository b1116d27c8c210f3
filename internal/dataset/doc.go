// Package dataset supplies shape collections to the reporting engine.
//
// Sample returns the reference five-shape collection. LoadFile reads a
// collection from a YAML (.yaml, .yml) or CUE (.cue) file:
//
//	shapes:
//	  - kind: rectangle
//	    top_left: {x: 0, y: 4}
//	    bottom_left: {x: 0, y: 0}
//	    top_right: {x: 6, y: 4}
//	    bottom_right: {x: 6, y: 0}
//	  - kind: circle
//	    center: {x: 0, y: 0}
//	    radius: 2
//	  - kind: point
//	    x: 1
//	    y: 1
//
// The CUE form uses the same field names:
//
//	shapes: [
//		{kind: "circle", center: {x: 0, y: 0}, radius: 2},
//	]
//
// Loading checks structure only (known kinds, required fields, no unknown
// fields in either format; CUE hidden fields are allowed). Geometric
// invariants are left to shape.Validate, so a file may describe a negative
// radius and still load. A circle without a center loads as a circle with a
// nil Center.
package dataset
