package shape

import (
	"errors"
	"fmt"
	"math"
)

// GeometryError reports a shape whose fields violate its geometric invariants.
//
// Constructors never return it. It is produced only by Validate, for callers
// that opt into rejecting degenerate input.
type GeometryError struct {
	// Code identifies the violated invariant.
	Code GeometryErrorCode

	// Kind is the variant of the offending shape.
	Kind Kind

	// Message is a human-readable description.
	Message string
}

// GeometryErrorCode categorizes geometry violations.
type GeometryErrorCode string

const (
	// ErrCodeNonFinite indicates a NaN or infinite coordinate or radius.
	ErrCodeNonFinite GeometryErrorCode = "NON_FINITE"

	// ErrCodeNonPositiveRadius indicates a circle with radius <= 0.
	ErrCodeNonPositiveRadius GeometryErrorCode = "NON_POSITIVE_RADIUS"

	// ErrCodeMissingCenter indicates a circle without a center.
	ErrCodeMissingCenter GeometryErrorCode = "MISSING_CENTER"

	// ErrCodeMisalignedCorners indicates corners that do not form an axis-aligned rectangle.
	ErrCodeMisalignedCorners GeometryErrorCode = "MISALIGNED_CORNERS"

	// ErrCodeDegenerateRectangle indicates a rectangle with zero or negative length or height.
	ErrCodeDegenerateRectangle GeometryErrorCode = "DEGENERATE_RECTANGLE"
)

// Error implements the error interface.
func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Code, e.Kind, e.Message)
}

// IsGeometryError reports whether err is a GeometryError with the given code.
func IsGeometryError(err error, code GeometryErrorCode) bool {
	var ge *GeometryError
	if errors.As(err, &ge) {
		return ge.Code == code
	}
	return false
}

// Validate checks the invariants of s and returns the first violation found.
func Validate(s Shape) error {
	switch v := s.(type) {
	case Point:
		return validatePoint(v, KindPoint)
	case Circle:
		return validateCircle(v)
	case Rectangle:
		return validateRectangle(v)
	default:
		return fmt.Errorf("unsupported shape type %T", s)
	}
}

// IndexedError ties a validation error to the position of its shape in a collection.
type IndexedError struct {
	Index int
	Err   error
}

func (e *IndexedError) Error() string {
	return fmt.Sprintf("shapes[%d]: %v", e.Index, e.Err)
}

func (e *IndexedError) Unwrap() error {
	return e.Err
}

// ValidateAll validates every shape and returns one *IndexedError per
// violation, in collection order.
func ValidateAll(shapes []Shape) []error {
	var errs []error
	for i, s := range shapes {
		if err := Validate(s); err != nil {
			errs = append(errs, &IndexedError{Index: i, Err: err})
		}
	}
	return errs
}

func validatePoint(p Point, kind Kind) error {
	if !finite(p.X) || !finite(p.Y) {
		return &GeometryError{
			Code:    ErrCodeNonFinite,
			Kind:    kind,
			Message: fmt.Sprintf("has non-finite coordinate (%v, %v)", p.X, p.Y),
		}
	}
	return nil
}

func validateCircle(c Circle) error {
	if c.Center == nil {
		return &GeometryError{Code: ErrCodeMissingCenter, Kind: KindCircle, Message: "has no center"}
	}
	if err := validatePoint(*c.Center, KindCircle); err != nil {
		return err
	}
	if !finite(c.Radius) {
		return &GeometryError{
			Code:    ErrCodeNonFinite,
			Kind:    KindCircle,
			Message: fmt.Sprintf("has non-finite radius %v", c.Radius),
		}
	}
	if c.Radius <= 0 {
		return &GeometryError{
			Code:    ErrCodeNonPositiveRadius,
			Kind:    KindCircle,
			Message: fmt.Sprintf("has radius %s, must be > 0", formatReal(c.Radius)),
		}
	}
	return nil
}

func validateRectangle(r Rectangle) error {
	for _, corner := range []Point{r.TopLeft, r.BottomLeft, r.TopRight, r.BottomRight} {
		if err := validatePoint(corner, KindRectangle); err != nil {
			return err
		}
	}

	aligned := r.TopLeft.X == r.BottomLeft.X &&
		r.TopRight.X == r.BottomRight.X &&
		r.TopLeft.Y == r.TopRight.Y &&
		r.BottomLeft.Y == r.BottomRight.Y
	if !aligned {
		return &GeometryError{
			Code:    ErrCodeMisalignedCorners,
			Kind:    KindRectangle,
			Message: "corners do not form an axis-aligned rectangle",
		}
	}

	if r.Length() <= 0 || r.Height() <= 0 {
		return &GeometryError{
			Code:    ErrCodeDegenerateRectangle,
			Kind:    KindRectangle,
			Message: fmt.Sprintf("has length %s and height %s, both must be > 0", formatReal(r.Length()), formatReal(r.Height())),
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
