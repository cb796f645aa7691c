package survey

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoader returns a fixed table or error.
type stubLoader struct {
	table *HeaderTable
	err   error
}

func (s *stubLoader) LoadTable(ctx context.Context) (*HeaderTable, error) {
	return s.table, s.err
}

// synthetic3x3 is the reference survey: inlines 100-102, crosslines 200-202,
// unit spacing, unit scalar.
func synthetic3x3(t *testing.T) *Resolver {
	t.Helper()
	return NewResolver(&stubLoader{table: gridTable(t, 100, 200, 3, 3, 1)}, 0)
}

func TestResolverMapPoints(t *testing.T) {
	points, err := synthetic3x3(t).MapPoints(context.Background())
	require.NoError(t, err)
	require.Len(t, points, 9)

	assert.Equal(t, int32(100), points[0].Inline)
	assert.Equal(t, int32(200), points[0].Crossline)
	assert.Equal(t, 0.0, points[0].X)
	assert.Equal(t, points[0].XRaw, points[0].X, "unit scalar leaves coordinates unchanged")
}

func TestResolverMapPointsDeduplicates(t *testing.T) {
	table := gridTable(t, 100, 200, 3, 3, 1)
	table.Records = append(table.Records, TraceRecord{Inline: 100, Crossline: 200, CDPX: 99, CDPY: 99})
	r := NewResolver(&stubLoader{table: table}, 0)

	points, err := r.MapPoints(context.Background())
	require.NoError(t, err)
	assert.Len(t, points, 9, "duplicate (100,200) row must not survive")
}

func TestResolverBoundary(t *testing.T) {
	res, err := synthetic3x3(t).Boundary(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Boundary, 5)
	assert.True(t, res.Boundary[0].Equal(res.Boundary[4]), "ring must close")

	assert.Equal(t, []int32{100, 100, 102, 102}, res.CornerInlines)
	assert.Equal(t, []int32{200, 202, 202, 200}, res.CornerCrosslines)
	assert.Equal(t, []int32{100, 101, 102}, res.AllInlines)
	assert.Equal(t, []int32{200, 201, 202}, res.AllCrosslines)

	assert.Equal(t, 1.0, res.SGS)
	assert.Equal(t, 1.0, res.BinSizeInline)
	assert.Equal(t, 1.0, res.BinSizeCrossline)
	// A 2x2 ground-unit square rounds to zero square kilometres.
	assert.Equal(t, 0.0, res.AreaSqKm)
	assert.Equal(t, "100 - 102", res.InlineRange)
	assert.Equal(t, "200 - 202", res.CrosslineRange)

	assert.Equal(t, 0.0, res.XMin)
	assert.Equal(t, 2.0, res.XMax)
	assert.Equal(t, 0.0, res.YMin)
	assert.Equal(t, 2.0, res.YMax)
}

func TestResolverGridLines(t *testing.T) {
	set, err := synthetic3x3(t).GridLines(context.Background())
	require.NoError(t, err)

	require.Len(t, set.Inlines, 3)
	require.Len(t, set.Crosslines, 3)
	for _, line := range set.Inlines {
		assert.Len(t, line.Points, 3)
	}
	for _, line := range set.Crosslines {
		assert.Len(t, line.Points, 3)
	}
}

func TestResolverEdgeLineSets(t *testing.T) {
	// With unit spacing every line is within the 50-unit tolerance of the
	// top edge, so first-match assigns everything there.
	sets, err := synthetic3x3(t).EdgeLineSets(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int32{100, 101, 102}, sets[EdgeTop].Inlines)
	assert.Equal(t, []int32{200, 201, 202}, sets[EdgeTop].Crosslines)
	for _, e := range []EdgeID{EdgeRight, EdgeBottom, EdgeLeft} {
		assert.Empty(t, sets[e].Inlines)
		assert.Empty(t, sets[e].Crosslines)
	}
}

func TestResolverSourceUnavailable(t *testing.T) {
	r := NewResolver(&stubLoader{err: errors.New("no such file")}, 0)

	_, err := r.Boundary(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestResolverDegenerateTable(t *testing.T) {
	r := NewResolver(&stubLoader{table: &HeaderTable{}}, 0)

	_, err := r.MapPoints(context.Background())
	assert.ErrorIs(t, err, ErrDegenerateSurvey)
}
