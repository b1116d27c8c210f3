package shape

import "fmt"

// Point is a pair of real coordinates.
//
// It is both a standalone shape and the building block of circles and rectangles.
type Point struct {
	X float64
	Y float64
}

// NewPoint creates a point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Area is always zero for a point.
func (p Point) Area() float64 {
	return 0
}

// Contains reports whether q is exactly p.
func (p Point) Contains(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Describe renders the point as a shape.
func (p Point) Describe() string {
	return fmt.Sprintf("Point(x=%s, y=%s, area=%s)", formatReal(p.X), formatReal(p.Y), formatReal(p.Area()))
}

// Kind returns KindPoint.
func (p Point) Kind() Kind {
	return KindPoint
}

// String renders the coordinates only, e.g. "(3.00, 4.00)".
func (p Point) String() string {
	return "(" + formatReal(p.X) + ", " + formatReal(p.Y) + ")"
}

func (p Point) sealed() {}
