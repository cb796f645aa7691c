package survey

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
)

func TestBuildGridLines(t *testing.T) {
	table := gridTable(t, 100, 200, 3, 3, 0)

	inlines, crosslines := BuildGridLines(table)
	if len(inlines) != 3 {
		t.Fatalf("got %d inline lines, want 3", len(inlines))
	}
	if len(crosslines) != 3 {
		t.Fatalf("got %d crossline lines, want 3", len(crosslines))
	}

	for _, line := range inlines {
		if len(line.Points) != 3 {
			t.Errorf("inline %d has %d points, want 3", line.Index, len(line.Points))
		}
	}

	// Ascending index order, points in native row order.
	if diff := cmp.Diff([]int32{100, 101, 102}, lineIndices(inlines)); diff != "" {
		t.Errorf("inline order mismatch (-want +got):\n%s", diff)
	}
	want := orb.LineString{{0, 0}, {1, 0}, {2, 0}}
	if diff := cmp.Diff(want, inlines[0].Points); diff != "" {
		t.Errorf("inline 100 points mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildGridLinesDropsSinglePointLines(t *testing.T) {
	table := &HeaderTable{
		Records: []TraceRecord{
			{Inline: 1, Crossline: 10, CDPX: 0, CDPY: 0},
			{Inline: 1, Crossline: 11, CDPX: 1, CDPY: 0},
			{Inline: 2, Crossline: 10, CDPX: 0, CDPY: 1}, // inline 2 has one trace
		},
	}

	inlines, crosslines := BuildGridLines(table)
	for _, line := range inlines {
		if line.Index == 2 {
			t.Error("single-point inline 2 should be excluded")
		}
	}
	if len(inlines) != 1 {
		t.Errorf("got %d inline lines, want 1", len(inlines))
	}
	// Crossline 10 spans both inlines; crossline 11 has a single trace.
	if diff := cmp.Diff([]int32{10}, lineIndices(crosslines)); diff != "" {
		t.Errorf("crossline indices mismatch (-want +got):\n%s", diff)
	}
}

func lineIndices(lines []GridLine) []int32 {
	out := make([]int32, len(lines))
	for i, l := range lines {
		out[i] = l.Index
	}
	return out
}
