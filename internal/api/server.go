// Package api exposes the survey geometry resolver over HTTP for the map
// frontend.
package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/geoseis/surveymap/internal/httputil"
	"github.com/geoseis/surveymap/internal/spatial"
	"github.com/geoseis/surveymap/internal/survey"
	"github.com/geoseis/surveymap/internal/units"
	"github.com/geoseis/surveymap/internal/version"
)

type Server struct {
	resolver  *survey.Resolver
	storePath string
	units     string
}

// NewServer wires the resolver into an API server. units is the default
// distance unit for metric output; requests may override per call.
func NewServer(resolver *survey.Resolver, storePath, defaultUnits string) *Server {
	if !units.IsValid(defaultUnits) {
		defaultUnits = units.Metres
	}
	return &Server{
		resolver:  resolver,
		storePath: storePath,
		units:     defaultUnits,
	}
}

func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/map-data", s.handleMapData)
	mux.HandleFunc("/survey-boundary", s.handleSurveyBoundary)
	mux.HandleFunc("/grid-data-all", s.handleGridData)
	mux.HandleFunc("/boundary-edge-lines", s.handleBoundaryEdgeLines)
	mux.HandleFunc("/nearest-trace", s.handleNearestTrace)
	mux.HandleFunc("/config", s.handleConfig)
	return mux
}

// writeGeometryError maps resolver failures onto HTTP statuses: a degenerate
// survey is the client's data problem (422), a missing source is ours (503).
func writeGeometryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, survey.ErrDegenerateSurvey):
		httputil.UnprocessableEntity(w, err.Error())
	case errors.Is(err, survey.ErrSourceUnavailable):
		httputil.ServiceUnavailable(w, err.Error())
	default:
		httputil.InternalServerError(w, err.Error())
	}
}

// requestUnits picks the distance units for a request, falling back to the
// server default on absent or unknown values.
func (s *Server) requestUnits(r *http.Request) string {
	if u := r.URL.Query().Get("units"); units.IsValid(u) {
		return u
	}
	return s.units
}

func (s *Server) handleMapData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	points, err := s.resolver.MapPoints(r.Context())
	if err != nil {
		writeGeometryError(w, err)
		return
	}

	// Optional viewport filter: bbox=minX,minY,maxX,maxY.
	if bbox := r.URL.Query().Get("bbox"); bbox != "" {
		box, err := parseBBox(bbox)
		if err != nil {
			httputil.BadRequest(w, err.Error())
			return
		}
		points = spatial.NewTraceIndex(points).Within(box[0], box[1], box[2], box[3])
	}

	httputil.WriteJSONOK(w, points)
}

func (s *Server) handleSurveyBoundary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	res, err := s.resolver.Boundary(r.Context())
	if err != nil {
		writeGeometryError(w, err)
		return
	}

	// Bin sizes and edge lengths convert at the boundary; coordinates stay
	// in ground units because the ring is drawn, not read.
	u := s.requestUnits(r)
	res.BinSizeInline = units.ConvertDistance(res.BinSizeInline, u)
	res.BinSizeCrossline = units.ConvertDistance(res.BinSizeCrossline, u)
	res.EdgeLengthInline = units.ConvertDistance(res.EdgeLengthInline, u)
	res.EdgeLengthCrossline = units.ConvertDistance(res.EdgeLengthCrossline, u)

	httputil.WriteJSONOK(w, res)
}

// inlineLine and crosslineLine shape grid lines the way the frontend labels
// them, with per-point hover text.
type inlineLine struct {
	Inline    int32        `json:"inline"`
	Points    [][2]float64 `json:"points"`
	HoverInfo []string     `json:"hover_info"`
}

type crosslineLine struct {
	Crossline int32        `json:"xline"`
	Points    [][2]float64 `json:"points"`
	HoverInfo []string     `json:"hover_info"`
}

type gridDataResponse struct {
	Inlines         []inlineLine    `json:"inlines"`
	Crosslines      []crosslineLine `json:"xlines"`
	TotalInlines    int             `json:"total_inlines"`
	TotalCrosslines int             `json:"total_xlines"`
}

func (s *Server) handleGridData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	set, err := s.resolver.GridLines(r.Context())
	if err != nil {
		writeGeometryError(w, err)
		return
	}

	resp := gridDataResponse{
		Inlines:         make([]inlineLine, 0, len(set.Inlines)),
		Crosslines:      make([]crosslineLine, 0, len(set.Crosslines)),
		TotalInlines:    len(set.Inlines),
		TotalCrosslines: len(set.Crosslines),
	}
	for _, line := range set.Inlines {
		pts, hover := hoverPoints("INLINE", line)
		resp.Inlines = append(resp.Inlines, inlineLine{Inline: line.Index, Points: pts, HoverInfo: hover})
	}
	for _, line := range set.Crosslines {
		pts, hover := hoverPoints("XLINE", line)
		resp.Crosslines = append(resp.Crosslines, crosslineLine{Crossline: line.Index, Points: pts, HoverInfo: hover})
	}

	httputil.WriteJSONOK(w, resp)
}

func hoverPoints(label string, line survey.GridLine) ([][2]float64, []string) {
	pts := make([][2]float64, len(line.Points))
	hover := make([]string, len(line.Points))
	for i, p := range line.Points {
		pts[i] = [2]float64{p[0], p[1]}
		hover[i] = fmt.Sprintf("%s: %d<br>X: %.2f<br>Y: %.2f", label, line.Index, p[0], p[1])
	}
	return pts, hover
}

func (s *Server) handleBoundaryEdgeLines(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	sets, err := s.resolver.EdgeLineSets(r.Context())
	if err != nil {
		writeGeometryError(w, err)
		return
	}

	// Keyed by edge position, the order the frontend draws labels in.
	resp := map[string]survey.EdgeLines{
		survey.EdgeTop.String():    sets[survey.EdgeTop],
		survey.EdgeRight.String():  sets[survey.EdgeRight],
		survey.EdgeBottom.String(): sets[survey.EdgeBottom],
		survey.EdgeLeft.String():   sets[survey.EdgeLeft],
	}
	httputil.WriteJSONOK(w, resp)
}

type nearestTraceResponse struct {
	Trace    survey.MapPoint `json:"trace"`
	Distance float64         `json:"distance"`
}

func (s *Server) handleNearestTrace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	y, errY := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if errX != nil || errY != nil {
		httputil.BadRequest(w, "x and y query parameters are required numbers")
		return
	}

	points, err := s.resolver.MapPoints(r.Context())
	if err != nil {
		writeGeometryError(w, err)
		return
	}

	trace, ok := spatial.NewTraceIndex(points).Nearest(x, y)
	if !ok {
		httputil.NotFound(w, "survey has no traces")
		return
	}

	dx, dy := trace.X-x, trace.Y-y
	httputil.WriteJSONOK(w, nearestTraceResponse{
		Trace:    trace,
		Distance: math.Sqrt(dx*dx + dy*dy),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	httputil.WriteJSONOK(w, map[string]interface{}{
		"units":      s.units,
		"store_path": s.storePath,
		"version":    version.String(),
	})
}

func parseBBox(raw string) ([4]float64, error) {
	var box [4]float64
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return box, fmt.Errorf("bbox must be minX,minY,maxX,maxY, got %q", raw)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return box, fmt.Errorf("bad bbox component %q", p)
		}
		box[i] = v
	}
	if box[2] <= box[0] || box[3] <= box[1] {
		return box, fmt.Errorf("bbox has empty extent")
	}
	return box, nil
}
