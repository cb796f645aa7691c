package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geoseis/surveymap/internal/survey"
	"github.com/geoseis/surveymap/internal/testutil"
)

type fixedLoader struct {
	table *survey.HeaderTable
	err   error
}

func (f *fixedLoader) LoadTable(ctx context.Context) (*survey.HeaderTable, error) {
	return f.table, f.err
}

// testTable is a 3x3 survey with 10-unit spacing: inlines 100-102 along y,
// crosslines 200-202 along x.
func testTable() *survey.HeaderTable {
	table := &survey.HeaderTable{SGS: 1}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			table.Records = append(table.Records, survey.TraceRecord{
				Inline:    int32(100 + r),
				Crossline: int32(200 + c),
				CDPX:      float64(c * 10),
				CDPY:      float64(r * 10),
			})
		}
	}
	return table
}

func testServer(loader survey.Loader) *Server {
	return NewServer(survey.NewResolver(loader, 0), "headers.db", "m")
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.ServeMux().ServeHTTP(w, req)
	return w
}

func TestMapData(t *testing.T) {
	s := testServer(&fixedLoader{table: testTable()})
	w := get(t, s, "/map-data")
	testutil.AssertStatusCode(t, w.Code, http.StatusOK)

	var points []survey.MapPoint
	testutil.DecodeJSON(t, w, &points)
	if len(points) != 9 {
		t.Errorf("got %d points, want 9", len(points))
	}
}

func TestMapDataBBoxFilter(t *testing.T) {
	s := testServer(&fixedLoader{table: testTable()})

	w := get(t, s, "/map-data?bbox=-1,-1,11,11")
	testutil.AssertStatusCode(t, w.Code, http.StatusOK)
	var points []survey.MapPoint
	testutil.DecodeJSON(t, w, &points)
	if len(points) != 4 {
		t.Errorf("got %d points in 2x2 viewport, want 4", len(points))
	}

	w = get(t, s, "/map-data?bbox=garbage")
	testutil.AssertStatusCode(t, w.Code, http.StatusBadRequest)
}

func TestSurveyBoundary(t *testing.T) {
	s := testServer(&fixedLoader{table: testTable()})
	w := get(t, s, "/survey-boundary")
	testutil.AssertStatusCode(t, w.Code, http.StatusOK)

	var res struct {
		Boundary   [][2]float64 `json:"boundary"`
		AllInlines []int32      `json:"all_inlines"`
		BinSizeIL  float64      `json:"bin_size_il"`
		AreaSqKm   float64      `json:"area_sq_km"`
		SGS        float64      `json:"sgs"`
	}
	testutil.DecodeJSON(t, w, &res)

	if len(res.Boundary) != 5 {
		t.Fatalf("boundary has %d points, want 5", len(res.Boundary))
	}
	if res.Boundary[0] != res.Boundary[4] {
		t.Error("boundary ring is not closed")
	}
	if len(res.AllInlines) != 3 {
		t.Errorf("all_inlines = %v, want 3 entries", res.AllInlines)
	}
	if res.BinSizeIL != 10 {
		t.Errorf("bin_size_il = %v, want 10", res.BinSizeIL)
	}
	if res.SGS != 1 {
		t.Errorf("sgs = %v, want 1", res.SGS)
	}
}

func TestSurveyBoundaryUnitsParam(t *testing.T) {
	s := testServer(&fixedLoader{table: testTable()})
	w := get(t, s, "/survey-boundary?units=ft")
	testutil.AssertStatusCode(t, w.Code, http.StatusOK)

	var res struct {
		BinSizeIL float64 `json:"bin_size_il"`
	}
	testutil.DecodeJSON(t, w, &res)
	if res.BinSizeIL < 32.8 || res.BinSizeIL > 32.9 {
		t.Errorf("bin_size_il = %v, want ~32.81 ft", res.BinSizeIL)
	}
}

func TestGridData(t *testing.T) {
	s := testServer(&fixedLoader{table: testTable()})
	w := get(t, s, "/grid-data-all")
	testutil.AssertStatusCode(t, w.Code, http.StatusOK)

	var res gridDataResponse
	testutil.DecodeJSON(t, w, &res)
	if res.TotalInlines != 3 || res.TotalCrosslines != 3 {
		t.Errorf("totals = (%d, %d), want (3, 3)", res.TotalInlines, res.TotalCrosslines)
	}
	if len(res.Inlines[0].HoverInfo) != 3 {
		t.Errorf("hover_info has %d entries, want 3", len(res.Inlines[0].HoverInfo))
	}
	if res.Inlines[0].Inline != 100 {
		t.Errorf("first inline = %d, want 100", res.Inlines[0].Inline)
	}
}

func TestBoundaryEdgeLines(t *testing.T) {
	s := testServer(&fixedLoader{table: testTable()})
	w := get(t, s, "/boundary-edge-lines")
	testutil.AssertStatusCode(t, w.Code, http.StatusOK)

	var res map[string]survey.EdgeLines
	testutil.DecodeJSON(t, w, &res)
	for _, edge := range []string{"top", "right", "bottom", "left"} {
		if _, ok := res[edge]; !ok {
			t.Errorf("response missing %q edge", edge)
		}
	}
	// 20-unit survey, 50-unit tolerance: everything lands on the first edge.
	if len(res["top"].Inlines) != 3 {
		t.Errorf("top edge inlines = %v, want 3 entries", res["top"].Inlines)
	}
}

func TestNearestTrace(t *testing.T) {
	s := testServer(&fixedLoader{table: testTable()})

	w := get(t, s, "/nearest-trace?x=19&y=1")
	testutil.AssertStatusCode(t, w.Code, http.StatusOK)
	var res nearestTraceResponse
	testutil.DecodeJSON(t, w, &res)
	if res.Trace.Inline != 100 || res.Trace.Crossline != 202 {
		t.Errorf("nearest trace = (il=%d, xl=%d), want (il=100, xl=202)",
			res.Trace.Inline, res.Trace.Crossline)
	}

	w = get(t, s, "/nearest-trace?x=abc")
	testutil.AssertStatusCode(t, w.Code, http.StatusBadRequest)
}

func TestGeometryErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		loader survey.Loader
		want   int
	}{
		{"degenerate survey", &fixedLoader{table: &survey.HeaderTable{
			Records: []survey.TraceRecord{{Inline: 1, Crossline: 1}},
		}}, http.StatusUnprocessableEntity},
		{"source unavailable", &fixedLoader{err: errors.New("no such file")}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, testServer(tt.loader), "/survey-boundary")
			testutil.AssertStatusCode(t, w.Code, tt.want)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s := testServer(&fixedLoader{table: testTable()})
	req := httptest.NewRequest(http.MethodPost, "/map-data", nil)
	w := httptest.NewRecorder()
	s.ServeMux().ServeHTTP(w, req)
	testutil.AssertStatusCode(t, w.Code, http.StatusMethodNotAllowed)
}

func TestConfig(t *testing.T) {
	s := testServer(&fixedLoader{table: testTable()})
	w := get(t, s, "/config")
	testutil.AssertStatusCode(t, w.Code, http.StatusOK)

	var res map[string]string
	testutil.DecodeJSON(t, w, &res)
	if res["units"] != "m" {
		t.Errorf("units = %q, want m", res["units"])
	}
	if res["store_path"] != "headers.db" {
		t.Errorf("store_path = %q, want headers.db", res["store_path"])
	}
}
