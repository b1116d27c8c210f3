package shape

import (
	"fmt"
	"strconv"
)

// Kind identifies a shape variant.
type Kind string

const (
	KindPoint     Kind = "point"
	KindCircle    Kind = "circle"
	KindRectangle Kind = "rectangle"
)

// Kinds lists every variant in declaration order.
var Kinds = []Kind{KindPoint, KindCircle, KindRectangle}

// Valid reports whether k names a known variant.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind converts a variant name into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown shape kind %q: must be one of %v", s, Kinds)
	}
	return k, nil
}

// Shape is the capability set shared by every variant.
//
// The interface is sealed: only Point, Circle and Rectangle implement it, so
// per-variant tables keyed by Kind are total.
type Shape interface {
	// Area returns the surface of the shape. Pure, no side effects.
	Area() float64

	// Contains reports whether p lies within or on the boundary of the shape.
	Contains(p Point) bool

	// Describe renders the defining fields and the computed area.
	Describe() string

	// Kind returns the variant tag.
	Kind() Kind

	sealed()
}

// formatReal renders v with the fixed two-decimal precision used in every description.
func formatReal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
