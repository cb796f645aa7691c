package survey

import (
	"context"
	"sort"

	"github.com/paulmach/orb"
)

// TraceRecord is one row of the trace-header table: the grid position of a
// trace and its raw (unscaled) CDP ground coordinates.
type TraceRecord struct {
	Inline    int32   `json:"inline"`
	Crossline int32   `json:"crossline"`
	CDPX      float64 `json:"cdp_x"`
	CDPY      float64 `json:"cdp_y"`
}

// HeaderTable is the trace-header table in native storage order, plus the
// coordinate scalar read from the first trace header. Records are immutable
// once loaded.
type HeaderTable struct {
	Records []TraceRecord
	SGS     float64
}

// Loader produces a fresh header table. Implementations wrap the actual
// source (the sqlite header store in this repo); the core never caches the
// result between calls.
type Loader interface {
	LoadTable(ctx context.Context) (*HeaderTable, error)
}

// EffectiveSGS returns the scalar with the zero-means-identity default
// applied. Use this wherever the scalar itself appears in a formula (bin size
// division); ApplySGS already handles the zero case for coordinates.
func (t *HeaderTable) EffectiveSGS() float64 {
	if t.SGS == 0 {
		return 1.0
	}
	return t.SGS
}

// Dedup returns a table with one representative row per (inline, crossline)
// pair, keeping the first occurrence and preserving native storage order.
func (t *HeaderTable) Dedup() *HeaderTable {
	type key struct{ il, xl int32 }
	seen := make(map[key]bool, len(t.Records))
	out := make([]TraceRecord, 0, len(t.Records))
	for _, rec := range t.Records {
		k := key{rec.Inline, rec.Crossline}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, rec)
	}
	return &HeaderTable{Records: out, SGS: t.SGS}
}

// ScaledPoint returns the ground-unit position of record i.
func (t *HeaderTable) ScaledPoint(i int) orb.Point {
	rec := t.Records[i]
	return orb.Point{ApplySGS(rec.CDPX, t.SGS), ApplySGS(rec.CDPY, t.SGS)}
}

// DistinctInlines returns the sorted set of inline index values.
func (t *HeaderTable) DistinctInlines() []int32 {
	return distinct(t.Records, func(r TraceRecord) int32 { return r.Inline })
}

// DistinctCrosslines returns the sorted set of crossline index values.
func (t *HeaderTable) DistinctCrosslines() []int32 {
	return distinct(t.Records, func(r TraceRecord) int32 { return r.Crossline })
}

func distinct(recs []TraceRecord, pick func(TraceRecord) int32) []int32 {
	seen := make(map[int32]bool)
	var out []int32
	for _, r := range recs {
		v := pick(r)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
