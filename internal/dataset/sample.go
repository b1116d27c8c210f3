package dataset

import "github.com/roach88/shapes/internal/shape"

// Sample returns a fresh copy of the reference collection: one 6x4 rectangle
// followed by four circles.
func Sample() []shape.Shape {
	return []shape.Shape{
		shape.NewRectangle(shape.NewPoint(0, 4), shape.NewPoint(0, 0), shape.NewPoint(6, 4), shape.NewPoint(6, 0)),
		shape.NewCircle(shape.NewPoint(0, 0), 2),
		shape.NewCircle(shape.NewPoint(5, 1), 3),
		shape.NewCircle(shape.NewPoint(-2, 4), 1.5),
		shape.NewCircle(shape.NewPoint(3, 3), 2.5),
	}
}
