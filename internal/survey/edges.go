package survey

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// DefaultEdgeTolerance is how close (in ground units) a grid-line point must
// come to a boundary edge for the line to be labelled on that edge.
const DefaultEdgeTolerance = 50.0

// EdgeLines lists the grid-line indices associated with one boundary edge,
// each slice sorted ascending.
type EdgeLines struct {
	Inlines    []int32 `json:"inlines"`
	Crosslines []int32 `json:"xlines"`
}

// AssociateEdges assigns every grid line to the first boundary edge (in top,
// right, bottom, left order) that any of its points approaches within
// tolerance. Once a line is assigned, the remaining edges are not checked:
// first match wins, including the near-corner ties. Distances are clamped
// point-to-segment, not point-to-infinite-line.
func AssociateEdges(ring orb.Ring, inlines, crosslines []GridLine, tolerance float64) [4]EdgeLines {
	if tolerance <= 0 {
		tolerance = DefaultEdgeTolerance
	}
	edges := Edges(ring)

	var out [4]EdgeLines
	for _, line := range inlines {
		if e, ok := matchEdge(edges, line, tolerance); ok {
			out[e].Inlines = append(out[e].Inlines, line.Index)
		}
	}
	for _, line := range crosslines {
		if e, ok := matchEdge(edges, line, tolerance); ok {
			out[e].Crosslines = append(out[e].Crosslines, line.Index)
		}
	}
	return out
}

func matchEdge(edges [4]orb.LineString, line GridLine, tolerance float64) (EdgeID, bool) {
	for e, seg := range edges {
		for _, pt := range line.Points {
			if planar.DistanceFrom(seg, pt) < tolerance {
				return EdgeID(e), true
			}
		}
	}
	return 0, false
}
