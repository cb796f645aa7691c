// Package spatial indexes scaled trace positions for point and viewport
// queries from the map frontend.
package spatial

import (
	"github.com/dhconnelly/rtreego"

	"github.com/geoseis/surveymap/internal/survey"
)

// R-tree entries need non-zero extent; traces are points, so give each a
// tiny box around its position.
const pointExtent = 0.001

type indexedTrace struct {
	point survey.MapPoint
}

// Bounds implements rtreego.Spatial.
func (tr *indexedTrace) Bounds() rtreego.Rect {
	origin := rtreego.Point{tr.point.X - pointExtent/2, tr.point.Y - pointExtent/2}
	rect, _ := rtreego.NewRect(origin, []float64{pointExtent, pointExtent})
	return rect
}

// TraceIndex answers nearest-trace and viewport queries over the deduplicated
// scaled map points. Build once per request; the index holds no state beyond
// the points it was given.
type TraceIndex struct {
	rtree *rtreego.Rtree
}

// NewTraceIndex bulk-loads the points into an R-tree.
func NewTraceIndex(points []survey.MapPoint) *TraceIndex {
	entries := make([]rtreego.Spatial, len(points))
	for i := range points {
		entries[i] = &indexedTrace{point: points[i]}
	}
	return &TraceIndex{rtree: rtreego.NewTree(2, 25, 50, entries...)}
}

// Nearest returns the trace closest to the given ground position. ok is false
// only for an empty index.
func (ix *TraceIndex) Nearest(x, y float64) (survey.MapPoint, bool) {
	got := ix.rtree.NearestNeighbor(rtreego.Point{x, y})
	if got == nil {
		return survey.MapPoint{}, false
	}
	return got.(*indexedTrace).point, true
}

// Within returns all traces inside the axis-aligned box, for viewport
// filtering. Order is unspecified.
func (ix *TraceIndex) Within(minX, minY, maxX, maxY float64) []survey.MapPoint {
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		return nil
	}
	rect, err := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{w, h})
	if err != nil {
		return nil
	}

	matches := ix.rtree.SearchIntersect(rect)
	out := make([]survey.MapPoint, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.(*indexedTrace).point)
	}
	return out
}

// Size reports the number of indexed traces.
func (ix *TraceIndex) Size() int {
	return ix.rtree.Size()
}
