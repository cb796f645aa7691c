package survey

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/floats"
)

// MapPoint is one deduplicated trace with both raw and scaled coordinates,
// ready for plotting.
type MapPoint struct {
	Inline    int32   `json:"inline"`
	Crossline int32   `json:"crossline"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRaw      float64 `json:"x_raw"`
	YRaw      float64 `json:"y_raw"`
}

// BoundaryResult is the full survey-boundary answer: the closed ring, the
// corner index labels in winding order, the complete index sets, the bounding
// extent and the derived metrics.
type BoundaryResult struct {
	Boundary         orb.Ring `json:"boundary"`
	CornerInlines    []int32  `json:"iline_cood"`
	CornerCrosslines []int32  `json:"xline_cood"`
	AllInlines       []int32  `json:"all_inlines"`
	AllCrosslines    []int32  `json:"all_xlines"`
	XMin             float64  `json:"x_min"`
	XMax             float64  `json:"x_max"`
	YMin             float64  `json:"y_min"`
	YMax             float64  `json:"y_max"`
	SGS              float64  `json:"sgs"`
	Metrics
}

// GridLineSet is the grid-line answer, one entry per inline and crossline
// with at least two traces.
type GridLineSet struct {
	Inlines    []GridLine `json:"inlines"`
	Crosslines []GridLine `json:"xlines"`
}

// Resolver turns a freshly loaded header table into the four geometry
// answers. It holds no derived state: every call re-loads and re-computes, so
// concurrent requests need no synchronization.
type Resolver struct {
	loader    Loader
	tolerance float64
}

// NewResolver builds a resolver on top of the given loader. A tolerance of 0
// selects DefaultEdgeTolerance.
func NewResolver(loader Loader, tolerance float64) *Resolver {
	if tolerance <= 0 {
		tolerance = DefaultEdgeTolerance
	}
	return &Resolver{loader: loader, tolerance: tolerance}
}

// load fetches and deduplicates the table. Loader failures surface as
// ErrSourceUnavailable; an empty table is a geometry problem, not a source
// problem.
func (r *Resolver) load(ctx context.Context) (*HeaderTable, error) {
	table, err := r.loader.LoadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	table = table.Dedup()
	if len(table.Records) == 0 {
		return nil, degenerate("empty header table")
	}
	return table, nil
}

// MapPoints returns every deduplicated trace with scaled coordinates.
func (r *Resolver) MapPoints(ctx context.Context) ([]MapPoint, error) {
	table, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]MapPoint, len(table.Records))
	for i, rec := range table.Records {
		pt := table.ScaledPoint(i)
		points[i] = MapPoint{
			Inline:    rec.Inline,
			Crossline: rec.Crossline,
			X:         pt[0],
			Y:         pt[1],
			XRaw:      rec.CDPX,
			YRaw:      rec.CDPY,
		}
	}
	return points, nil
}

// Boundary returns the closed boundary polygon with corner labels, index
// sets, extent and metrics.
func (r *Resolver) Boundary(ctx context.Context) (*BoundaryResult, error) {
	table, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	corners, err := ExtractCorners(table)
	if err != nil {
		return nil, err
	}
	ring := BoundaryRing(corners)

	inlines := table.DistinctInlines()
	crosslines := table.DistinctCrosslines()

	metrics, err := ComputeMetrics(corners, table.SGS, inlines, crosslines)
	if err != nil {
		return nil, err
	}

	res := &BoundaryResult{
		Boundary:      ring,
		AllInlines:    inlines,
		AllCrosslines: crosslines,
		SGS:           table.EffectiveSGS(),
		Metrics:       metrics,
	}
	for _, idx := range windingOrder {
		res.CornerInlines = append(res.CornerInlines, corners[idx].Inline)
		res.CornerCrosslines = append(res.CornerCrosslines, corners[idx].Crossline)
	}

	xs := make([]float64, 4)
	ys := make([]float64, 4)
	for i := 0; i < 4; i++ {
		xs[i] = ring[i][0]
		ys[i] = ring[i][1]
	}
	res.XMin, res.XMax = floats.Min(xs), floats.Max(xs)
	res.YMin, res.YMax = floats.Min(ys), floats.Max(ys)

	return res, nil
}

// GridLines returns the full inline and crossline polylines.
func (r *Resolver) GridLines(ctx context.Context) (*GridLineSet, error) {
	table, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	inlines, crosslines := BuildGridLines(table)
	return &GridLineSet{Inlines: inlines, Crosslines: crosslines}, nil
}

// EdgeLineSets returns, per boundary edge in top/right/bottom/left order, the
// sorted grid-line indices whose traces touch that edge within tolerance.
func (r *Resolver) EdgeLineSets(ctx context.Context) ([4]EdgeLines, error) {
	var out [4]EdgeLines

	table, err := r.load(ctx)
	if err != nil {
		return out, err
	}
	corners, err := ExtractCorners(table)
	if err != nil {
		return out, err
	}
	inlines, crosslines := BuildGridLines(table)
	return AssociateEdges(BoundaryRing(corners), inlines, crosslines, r.tolerance), nil
}
