package survey

import (
	"sort"

	"github.com/paulmach/orb"
)

// GridLine is one inline or crossline index with the ordered ground positions
// of its traces. Lines always carry at least two points; a single trace has no
// direction and is dropped during building.
type GridLine struct {
	Index  int32          `json:"index"`
	Points orb.LineString `json:"points"`
}

// BuildGridLines groups the deduplicated table by inline and by crossline.
// Point order within a line follows native storage order, not any spatial
// sort; lines are returned in ascending index order. Groups with fewer than
// two points are excluded entirely.
func BuildGridLines(t *HeaderTable) (inlines, crosslines []GridLine) {
	inlines = groupLines(t, func(r TraceRecord) int32 { return r.Inline })
	crosslines = groupLines(t, func(r TraceRecord) int32 { return r.Crossline })
	return inlines, crosslines
}

func groupLines(t *HeaderTable, pick func(TraceRecord) int32) []GridLine {
	groups := make(map[int32]orb.LineString)
	for i, rec := range t.Records {
		idx := pick(rec)
		groups[idx] = append(groups[idx], t.ScaledPoint(i))
	}

	lines := make([]GridLine, 0, len(groups))
	for idx, pts := range groups {
		if len(pts) < 2 {
			continue
		}
		lines = append(lines, GridLine{Index: idx, Points: pts})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Index < lines[j].Index })
	return lines
}
