package survey

import "github.com/paulmach/orb"

// windingOrder permutes the native corner indices {top-left, bottom-right,
// bottom-left, top-right} into polygon winding top-left → top-right →
// bottom-right → bottom-left. The frontend's axis labelling depends on this
// exact order; do not re-derive it.
var windingOrder = [4]int{0, 3, 1, 2}

// BoundaryRing orders the four corner points into the fixed winding and
// closes the ring, so ring[0] always equals ring[4].
func BoundaryRing(corners [4]Corner) orb.Ring {
	ring := make(orb.Ring, 0, 5)
	for _, idx := range windingOrder {
		ring = append(ring, corners[idx].Point)
	}
	ring = append(ring, ring[0])
	return ring
}

// EdgeID identifies one of the four boundary edges, in the order they are
// walked when associating grid lines.
type EdgeID int

const (
	EdgeTop EdgeID = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e EdgeID) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	}
	return "unknown"
}

// Edges splits a closed boundary ring into its four segments in top, right,
// bottom, left order.
func Edges(ring orb.Ring) [4]orb.LineString {
	var edges [4]orb.LineString
	for i := 0; i < 4; i++ {
		edges[i] = orb.LineString{ring[i], ring[i+1]}
	}
	return edges
}
