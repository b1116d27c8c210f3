// Package query implements the reports and transformations run over a
// caller-owned collection of shapes.
//
// Every function is stateless and retains nothing past the call. Operations
// that reorder or shrink the collection do so in place on the slice the
// caller passed in:
//
//   - TotalArea sums the area of every shape
//   - ReportAscending sorts by size key and reports
//   - ReportLeftToRight sorts by X key and reports
//   - PruneBelow drops every shape whose area is below a threshold
//   - ReportContaining reports the shapes that contain a point, without reordering
//
// # Key Tables
//
// "Size" and "X position" are not defined uniformly across variants, so the
// two sorting reports look up a per-variant key function in SizeKeys and
// XKeys. Both tables cover every shape.Kind. The point entries are policy:
// a point's size is PointSizeKey (zero) and its X key is its own X coordinate.
//
// Sorting is stable, so shapes with equal keys keep their relative order and
// applying a report twice yields the same order.
//
// # Empty Input
//
// Every operation accepts an empty or nil collection: the total is zero,
// reports carry only their header, and pruning returns the input unchanged.
package query
