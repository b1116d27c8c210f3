// Package shape defines the geometric values managed by the reporting engine.
//
// Three variants implement the sealed Shape interface:
//
//   - Point: a degenerate shape with zero area that contains only itself
//   - Circle: a center point and a radius
//   - Rectangle: four axis-aligned corners
//
// Every variant reports its area, answers boundary-inclusive containment
// queries, and renders a description in which all real numbers carry exactly
// two decimal places:
//
//	Point(x=1.00, y=2.00, area=0.00)
//	Circle(center=(0.00, 0.00), radius=2.00, area=12.57)
//	Rectangle(topLeft=(0.00, 4.00), bottomLeft=(0.00, 0.00), topRight=(6.00, 4.00), bottomRight=(6.00, 0.00), length=6.00, height=4.00, area=24.00)
//
// # Permissive Construction
//
// Constructors accept any input. A negative radius or inconsistent rectangle
// corners produce mathematically consistent but meaningless areas and
// containment answers; nothing is corrected silently. Callers that want to
// reject such values run Validate or ValidateAll explicitly.
//
// # Point Containment
//
// A point contains another point only under exact component-wise equality of
// the float64 coordinates. No epsilon is applied.
package shape
