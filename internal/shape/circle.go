package shape

import (
	"fmt"
	"math"
)

// Circle is a center point and a radius.
//
// Center may be nil for a circle built without one; such a circle contains
// nothing. Radius is not checked for positivity.
type Circle struct {
	Center *Point
	Radius float64
}

// NewCircle creates a circle centered at center.
func NewCircle(center Point, radius float64) Circle {
	return Circle{Center: &center, Radius: radius}
}

// Area returns π·r².
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Contains reports whether p is inside or on the circle.
// The comparison uses squared distances, so no square root is taken.
func (c Circle) Contains(p Point) bool {
	if c.Center == nil {
		return false
	}
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Describe renders center, radius and area.
func (c Circle) Describe() string {
	center := "none"
	if c.Center != nil {
		center = c.Center.String()
	}
	return fmt.Sprintf("Circle(center=%s, radius=%s, area=%s)", center, formatReal(c.Radius), formatReal(c.Area()))
}

// Kind returns KindCircle.
func (c Circle) Kind() Kind {
	return KindCircle
}

func (c Circle) String() string {
	return c.Describe()
}

func (c Circle) sealed() {}
