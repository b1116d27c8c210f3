package query

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/roach88/shapes/internal/shape"
)

// Report headers.
const (
	HeaderAscending   = "-> Shapes in ascending order by size (circle radius, rectangle length):"
	HeaderLeftToRight = "-> Shapes from left to right (by X):"
)

// ContainingHeader names the query point of a containment report.
func ContainingHeader(p shape.Point) string {
	return fmt.Sprintf("-> Shapes containing point %s:", p)
}

// PrunedHeader introduces a listing taken after PruneBelow.
func PrunedHeader(threshold float64) string {
	return fmt.Sprintf("-> After removing shapes with area < %.2f:", threshold)
}

// TotalAreaLine renders a total computed by TotalArea.
func TotalAreaLine(total float64) string {
	return fmt.Sprintf("-> Total area is %.2f", total)
}

// Report is a header followed by the shapes it lists.
//
// Shapes is a snapshot: later mutations of the collection a report was taken
// from do not change it.
type Report struct {
	Header string
	Shapes []shape.Shape
}

// Listing reports shapes in their current order.
func Listing(header string, shapes []shape.Shape) Report {
	return Report{Header: header, Shapes: slices.Clone(shapes)}
}

// Lines returns the header followed by one description per shape.
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r.Shapes)+1)
	lines = append(lines, r.Header)
	for _, s := range r.Shapes {
		lines = append(lines, s.Describe())
	}
	return lines
}

// String renders the report as newline-terminated lines.
func (r Report) String() string {
	var b strings.Builder
	for _, line := range r.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the rendered report to w.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
