package survey

import (
	"fmt"
	"math"

	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/floats"
)

// Metrics holds the derived survey scalars. Lengths are in ground units
// (metres for a metric survey), the area in square kilometres.
type Metrics struct {
	// EdgeLengthCrossline spans the first inline row (corner 0 → corner 3);
	// EdgeLengthInline spans the first crossline column (corner 0 → corner 2).
	EdgeLengthCrossline float64 `json:"edge_length_xl"`
	EdgeLengthInline    float64 `json:"edge_length_il"`

	BinSizeInline    float64 `json:"bin_size_il"`
	BinSizeCrossline float64 `json:"bin_size_xl"`

	AreaSqKm           float64 `json:"area_sq_km"`
	OrientationDegrees float64 `json:"orientation_degrees"`

	InlineRange    string `json:"iline_range"`
	CrosslineRange string `json:"xline_range"`

	XCoordinateRange string `json:"x_coordinate_range"`
	YCoordinateRange string `json:"y_coordinate_range"`
}

// ComputeMetrics derives the survey scalars from the corners in native
// (unpermuted) order plus the full distinct index sets.
//
// The orientation is a compass-style bearing with a deliberate three-way
// normalization inherited from the survey's undocumented axis convention.
// It is preserved exactly, not simplified.
func ComputeMetrics(corners [4]Corner, sgs float64, inlines, crosslines []int32) (Metrics, error) {
	var m Metrics

	p0 := corners[0].Point
	p2 := corners[2].Point
	p3 := corners[3].Point

	if p3.Equal(p0) {
		return m, degenerate("corner 3 coincides with corner 0")
	}
	if sgs == 0 {
		sgs = 1.0
	}

	len1 := planar.Distance(p0, p3)
	len2 := planar.Distance(p0, p2)
	m.EdgeLengthCrossline = len1
	m.EdgeLengthInline = len2

	if n := len(inlines); n > 1 {
		m.BinSizeInline = round2((len2 / float64(n-1)) / math.Abs(sgs))
	}
	if n := len(crosslines); n > 1 {
		m.BinSizeCrossline = round2((len1 / float64(n-1)) / math.Abs(sgs))
	}

	m.AreaSqKm = round2(len1 * len2 / 1e6)

	theta := math.Atan2(p3[1]-p0[1], p3[0]-p0[0]) * 180 / math.Pi
	var bearing float64
	switch {
	case theta < 0:
		bearing = 270 + theta
	case theta <= 90:
		bearing = 90 - theta
	default:
		bearing = 450 - theta
	}
	m.OrientationDegrees = round2(bearing)

	xs := make([]float64, 4)
	ys := make([]float64, 4)
	for i, c := range corners {
		xs[i] = c.Point[0]
		ys[i] = c.Point[1]
	}
	m.XCoordinateRange = fmt.Sprintf("%.2f - %.2f", floats.Min(xs), floats.Max(xs))
	m.YCoordinateRange = fmt.Sprintf("%.2f - %.2f", floats.Min(ys), floats.Max(ys))

	m.InlineRange = indexRange(inlines)
	m.CrosslineRange = indexRange(crosslines)

	return m, nil
}

func indexRange(vs []int32) string {
	if len(vs) == 0 {
		return ""
	}
	// distinct sets arrive sorted
	return fmt.Sprintf("%d - %d", vs[0], vs[len(vs)-1])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
