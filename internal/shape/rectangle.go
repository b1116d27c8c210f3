package shape

import "fmt"

// Rectangle is an axis-aligned rectangle given by its four corners.
//
// The corners are expected to agree with each other (TopRight.X equals
// BottomRight.X, TopLeft.Y equals TopRight.Y, and so on). The constructor does
// not check this; see Validate.
type Rectangle struct {
	TopLeft     Point
	BottomLeft  Point
	TopRight    Point
	BottomRight Point
}

// NewRectangle creates a rectangle from its corners.
func NewRectangle(topLeft, bottomLeft, topRight, bottomRight Point) Rectangle {
	return Rectangle{
		TopLeft:     topLeft,
		BottomLeft:  bottomLeft,
		TopRight:    topRight,
		BottomRight: bottomRight,
	}
}

// Length is the horizontal extent, TopRight.X - TopLeft.X.
func (r Rectangle) Length() float64 {
	return r.TopRight.X - r.TopLeft.X
}

// Height is the vertical extent, TopLeft.Y - BottomLeft.Y.
func (r Rectangle) Height() float64 {
	return r.TopLeft.Y - r.BottomLeft.Y
}

// Area returns length·height. Inverted corners yield a negative area.
func (r Rectangle) Area() float64 {
	return r.Length() * r.Height()
}

// Contains reports whether p lies within the rectangle, bounds inclusive.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.TopLeft.X && p.X <= r.TopRight.X &&
		p.Y >= r.BottomLeft.Y && p.Y <= r.TopLeft.Y
}

// Describe renders the corners, the derived extents and the area.
func (r Rectangle) Describe() string {
	return fmt.Sprintf("Rectangle(topLeft=%s, bottomLeft=%s, topRight=%s, bottomRight=%s, length=%s, height=%s, area=%s)",
		r.TopLeft, r.BottomLeft, r.TopRight, r.BottomRight,
		formatReal(r.Length()), formatReal(r.Height()), formatReal(r.Area()))
}

// Kind returns KindRectangle.
func (r Rectangle) Kind() Kind {
	return KindRectangle
}

func (r Rectangle) String() string {
	return r.Describe()
}

func (r Rectangle) sealed() {}
