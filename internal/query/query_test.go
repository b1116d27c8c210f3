package query

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/shapes/internal/shape"
	"github.com/roach88/shapes/internal/testutil"
)

var (
	rect      = shape.NewRectangle(shape.NewPoint(0, 4), shape.NewPoint(0, 0), shape.NewPoint(6, 4), shape.NewPoint(6, 0))
	circleR2  = shape.NewCircle(shape.NewPoint(0, 0), 2)
	circleR3  = shape.NewCircle(shape.NewPoint(5, 1), 3)
	circleR1  = shape.NewCircle(shape.NewPoint(-2, 4), 1.5)
	circleR2h = shape.NewCircle(shape.NewPoint(3, 3), 2.5)
)

// sampleShapes returns a fresh copy of the reference collection.
func sampleShapes() []shape.Shape {
	return []shape.Shape{rect, circleR2, circleR3, circleR1, circleR2h}
}

func TestTotalArea_Sample(t *testing.T) {
	total := TotalArea(sampleShapes())
	assert.InDelta(t, 21.5*math.Pi+24, total, 1e-9)
	assert.Equal(t, "-> Total area is 91.54", TotalAreaLine(total))
}

func TestTotalArea_EqualsSumOfAreas(t *testing.T) {
	collections := [][]shape.Shape{
		sampleShapes(),
		{shape.NewPoint(1, 1), shape.NewPoint(2, 2)},
		{circleR3},
		{rect, shape.NewRectangle(shape.NewPoint(6, 4), shape.NewPoint(6, 0), shape.NewPoint(0, 4), shape.NewPoint(0, 0))},
	}

	for _, shapes := range collections {
		var want float64
		for _, s := range shapes {
			want += s.Area()
		}
		assert.InDelta(t, want, TotalArea(shapes), testutil.Tolerance)
	}
}

func TestTotalArea_Empty(t *testing.T) {
	assert.Equal(t, 0.0, TotalArea(nil))
	assert.Equal(t, 0.0, TotalArea([]shape.Shape{}))
}

func TestReportAscending(t *testing.T) {
	shapes := sampleShapes()
	report := ReportAscending(shapes)

	want := []shape.Shape{circleR1, circleR2, circleR2h, circleR3, rect}
	assert.Empty(t, testutil.DiffShapes(want, shapes), "collection is sorted in place")
	assert.True(t, IsSortedBy(shapes, SizeKeys))

	require.Len(t, report.Lines(), 6)
	assert.Equal(t, HeaderAscending, report.Lines()[0])
	assert.Equal(t, testutil.Descriptions(want), report.Lines()[1:])
}

func TestReportAscending_Idempotent(t *testing.T) {
	shapes := sampleShapes()
	first := ReportAscending(shapes).String()
	second := ReportAscending(shapes).String()
	assert.Equal(t, first, second)
}

func TestReportAscending_StableTies(t *testing.T) {
	a := shape.NewCircle(shape.NewPoint(9, 9), 2)
	b := shape.NewCircle(shape.NewPoint(1, 1), 2)
	sameLength := shape.NewRectangle(shape.NewPoint(0, 10), shape.NewPoint(0, 0), shape.NewPoint(2, 10), shape.NewPoint(2, 0))

	shapes := []shape.Shape{a, sameLength, b}
	ReportAscending(shapes)

	assert.Equal(t, testutil.Descriptions([]shape.Shape{a, sameLength, b}), testutil.Descriptions(shapes))
}

func TestReportAscending_PointsRankAsZeroSize(t *testing.T) {
	p := shape.NewPoint(100, 100)
	shapes := []shape.Shape{circleR1, rect, p}
	ReportAscending(shapes)

	assert.Equal(t, shape.Shape(p), shapes[0])
	assert.Equal(t, PointSizeKey, SizeKeys.Key(p))
}

func TestReportLeftToRight(t *testing.T) {
	shapes := sampleShapes()
	report := ReportLeftToRight(shapes)

	// rect's midpoint X is 3, equal to circleR2h's center; the tie keeps input order.
	want := []shape.Shape{circleR1, circleR2, rect, circleR2h, circleR3}
	assert.Empty(t, testutil.DiffShapes(want, shapes))
	assert.True(t, IsSortedBy(shapes, XKeys))
	assert.Equal(t, HeaderLeftToRight, report.Header)
}

func TestReportLeftToRight_AfterAscending(t *testing.T) {
	shapes := sampleShapes()
	ReportAscending(shapes)
	ReportLeftToRight(shapes)

	want := []shape.Shape{circleR1, circleR2, circleR2h, rect, circleR3}
	assert.Empty(t, testutil.DiffShapes(want, shapes))
}

func TestReportLeftToRight_Idempotent(t *testing.T) {
	shapes := sampleShapes()
	ReportLeftToRight(shapes)
	once := testutil.Descriptions(shapes)
	ReportLeftToRight(shapes)
	assert.Equal(t, once, testutil.Descriptions(shapes))
}

func TestXKeys(t *testing.T) {
	assert.Equal(t, 3.0, XKeys.Key(rect))
	assert.Equal(t, 5.0, XKeys.Key(circleR3))
	assert.Equal(t, -7.5, XKeys.Key(shape.NewPoint(-7.5, 2)))
	assert.Equal(t, MissingCenterX, XKeys.Key(shape.Circle{Radius: 1}))
}

func TestReportLeftToRight_MissingCenterSortsFirst(t *testing.T) {
	orphan := shape.Circle{Radius: 1}
	shapes := []shape.Shape{circleR1, orphan}
	ReportLeftToRight(shapes)

	assert.Equal(t, shape.KindCircle, shapes[0].Kind())
	assert.Nil(t, shapes[0].(shape.Circle).Center)
}

func TestKeyTable_MissingKindPanics(t *testing.T) {
	partial := KeyTable{shape.KindCircle: SizeKeys[shape.KindCircle]}
	assert.Panics(t, func() { partial.Key(shape.NewPoint(0, 0)) })
}

func TestKeyTables_CoverEveryKind(t *testing.T) {
	for _, k := range shape.Kinds {
		assert.Contains(t, SizeKeys, k)
		assert.Contains(t, XKeys, k)
	}
}

func TestPruneBelow_Sample(t *testing.T) {
	shapes := sampleShapes()
	shapes = PruneBelow(shapes, 10.0)

	want := []shape.Shape{rect, circleR2, circleR3, circleR2h}
	assert.Empty(t, testutil.DiffShapes(want, shapes), "only the r=1.5 circle is removed, order is kept")
}

func TestPruneBelow_RemovesExactlyBelowThreshold(t *testing.T) {
	thresholds := []float64{0, 7.07, 7.1, 12.6, 24, 24.0001, 1000}

	for _, threshold := range thresholds {
		original := sampleShapes()
		var want []shape.Shape
		for _, s := range original {
			if s.Area() >= threshold {
				want = append(want, s)
			}
		}

		got := PruneBelow(sampleShapes(), threshold)
		assert.Empty(t, testutil.DiffShapes(want, got), "threshold %v", threshold)
	}
}

func TestPruneBelow_Idempotent(t *testing.T) {
	shapes := PruneBelow(sampleShapes(), 20)
	again := PruneBelow(shapes, 20)
	assert.Empty(t, testutil.DiffShapes(shapes, again))
}

func TestPruneBelow_Points(t *testing.T) {
	shapes := []shape.Shape{shape.NewPoint(1, 1), circleR2}

	kept := PruneBelow(shapes, 0)
	assert.Len(t, kept, 2, "area 0 is not below threshold 0")

	kept = PruneBelow(kept, 0.5)
	require.Len(t, kept, 1)
	assert.Equal(t, shape.KindCircle, kept[0].Kind())
}

func TestPruneBelow_ZeroesVacatedTail(t *testing.T) {
	shapes := sampleShapes()
	kept := PruneBelow(shapes, 20)

	require.Len(t, kept, 2)
	for _, s := range shapes[len(kept):] {
		assert.Nil(t, s)
	}
}

func TestPruneBelow_Empty(t *testing.T) {
	assert.Empty(t, PruneBelow(nil, 10))
	assert.Empty(t, PruneBelow([]shape.Shape{}, 10))
}

func TestPruneBelow_NaNThresholdRemovesNothing(t *testing.T) {
	assert.Len(t, PruneBelow(sampleShapes(), math.NaN()), 5)
}

func TestReportContaining_Sample(t *testing.T) {
	shapes := sampleShapes()
	before := testutil.Descriptions(shapes)

	report := ReportContaining(shapes, shape.NewPoint(3, 4))

	assert.Equal(t, "-> Shapes containing point (3.00, 4.00):", report.Header)
	assert.Empty(t, testutil.DiffShapes([]shape.Shape{rect, circleR2h}, report.Shapes))
	assert.Equal(t, before, testutil.Descriptions(shapes), "collection is not reordered")
}

func TestContaining_MatchesPredicate(t *testing.T) {
	points := []shape.Point{
		shape.NewPoint(0, 0),
		shape.NewPoint(5, 1),
		shape.NewPoint(-2, 4),
		shape.NewPoint(6, 4),
		shape.NewPoint(2, 2),
	}
	shapes := sampleShapes()

	for _, p := range points {
		t.Run(p.String(), func(t *testing.T) {
			var want []shape.Shape
			for _, s := range shapes {
				if s.Contains(p) {
					want = append(want, s)
				}
			}
			assert.Empty(t, testutil.DiffShapes(want, Containing(shapes, p)))
		})
	}
}

func TestReportContaining_NoMatch(t *testing.T) {
	report := ReportContaining(sampleShapes(), shape.NewPoint(100, 100))
	assert.Empty(t, report.Shapes)
	assert.Equal(t, []string{"-> Shapes containing point (100.00, 100.00):"}, report.Lines())
}

func TestReportContaining_Empty(t *testing.T) {
	report := ReportContaining(nil, shape.NewPoint(0, 0))
	assert.Len(t, report.Lines(), 1)
}

func TestReportGrouped(t *testing.T) {
	shapes := PruneBelow(sampleShapes(), 10)
	report := ReportGrouped(PrunedHeader(10), shapes, shape.KindCircle, shape.KindRectangle)

	assert.Equal(t, "-> After removing shapes with area < 10.00:", report.Header)
	assert.Empty(t, testutil.DiffShapes([]shape.Shape{circleR2, circleR3, circleR2h, rect}, report.Shapes))
	assert.Equal(t, shape.KindRectangle, shapes[0].Kind(), "collection is not reordered")
}

func TestReportGrouped_DefaultKinds(t *testing.T) {
	p := shape.NewPoint(1, 1)
	report := ReportGrouped("-> all", []shape.Shape{rect, circleR2, p})
	assert.Empty(t, testutil.DiffShapes([]shape.Shape{p, circleR2, rect}, report.Shapes))
}

func TestReport_SnapshotIsolatedFromCollection(t *testing.T) {
	shapes := sampleShapes()
	report := ReportAscending(shapes)
	PruneBelow(shapes, 1000)

	for _, s := range report.Shapes {
		assert.NotNil(t, s)
	}
}

func TestReport_WriteTo(t *testing.T) {
	report := Listing("-> header", []shape.Shape{shape.NewPoint(1, 2), circleR2})

	var buf bytes.Buffer
	n, err := report.WriteTo(&buf)
	require.NoError(t, err)

	want := "-> header\nPoint(x=1.00, y=2.00, area=0.00)\nCircle(center=(0.00, 0.00), radius=2.00, area=12.57)\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), n)
}
