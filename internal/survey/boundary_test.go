package survey

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestBoundaryRingWindingAndClosure(t *testing.T) {
	// Native corner layout: 0=top-left, 1=bottom-right, 2=bottom-left,
	// 3=top-right.
	corners := [4]Corner{
		{Index: 0, Point: orb.Point{0, 0}},
		{Index: 1, Point: orb.Point{1000, 1000}},
		{Index: 2, Point: orb.Point{0, 1000}},
		{Index: 3, Point: orb.Point{1000, 0}},
	}

	ring := BoundaryRing(corners)
	if len(ring) != 5 {
		t.Fatalf("ring has %d points, want 5", len(ring))
	}
	if !ring[0].Equal(ring[4]) {
		t.Errorf("ring is not closed: ring[0]=%v ring[4]=%v", ring[0], ring[4])
	}

	want := orb.Ring{{0, 0}, {1000, 0}, {1000, 1000}, {0, 1000}, {0, 0}}
	for i := range want {
		if !ring[i].Equal(want[i]) {
			t.Errorf("ring[%d] = %v, want %v", i, ring[i], want[i])
		}
	}
}

func TestEdgesOrder(t *testing.T) {
	ring := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	edges := Edges(ring)

	tests := []struct {
		id   EdgeID
		a, b orb.Point
	}{
		{EdgeTop, orb.Point{0, 0}, orb.Point{10, 0}},
		{EdgeRight, orb.Point{10, 0}, orb.Point{10, 10}},
		{EdgeBottom, orb.Point{10, 10}, orb.Point{0, 10}},
		{EdgeLeft, orb.Point{0, 10}, orb.Point{0, 0}},
	}
	for _, tt := range tests {
		seg := edges[tt.id]
		if !seg[0].Equal(tt.a) || !seg[1].Equal(tt.b) {
			t.Errorf("%s edge = %v, want [%v %v]", tt.id, seg, tt.a, tt.b)
		}
	}
}
