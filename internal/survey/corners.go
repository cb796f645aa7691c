package survey

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Corner is one of the four designated extreme traces of the survey.
// Index 0-3 corresponds to {top-left, bottom-right, bottom-left, top-right}
// in the native trace layout.
type Corner struct {
	Index     int
	Inline    int32
	Crossline int32
	Point     orb.Point // scaled
	Raw       orb.Point // unscaled, as stored in the header
}

// ExtractCorners picks the four corner traces of a deduplicated table at the
// fixed native-order positions {0, N-1, N-C, C-1}, where C is the distinct
// crossline count.
//
// This assumes a fully populated rectangular grid stored row-major per inline.
// If the source is not contiguous per inline the result is only approximate;
// that is accepted, not corrected.
func ExtractCorners(t *HeaderTable) ([4]Corner, error) {
	var corners [4]Corner

	n := len(t.Records)
	if n == 0 {
		return corners, degenerate("empty header table")
	}
	if n < 4 {
		return corners, degenerate(fmt.Sprintf("only %d traces", n))
	}
	c := len(t.DistinctCrosslines())
	if c <= 1 {
		return corners, degenerate(fmt.Sprintf("%d distinct crosslines, need at least 2", c))
	}

	positions := [4]int{0, n - 1, n - c, c - 1}
	for i, pos := range positions {
		rec := t.Records[pos]
		corners[i] = Corner{
			Index:     i,
			Inline:    rec.Inline,
			Crossline: rec.Crossline,
			Point:     t.ScaledPoint(pos),
			Raw:       orb.Point{rec.CDPX, rec.CDPY},
		}
	}
	return corners, nil
}
