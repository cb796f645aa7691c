// survey-plot renders offline visual checks of a header store: an
// interactive HTML scatter of all trace positions (go-echarts) and a PNG of
// the boundary ring with the grid lines (gonum/plot). Useful for eyeballing
// corner extraction and edge association without the frontend.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/geoseis/surveymap/internal/headerdb"
	"github.com/geoseis/surveymap/internal/survey"
)

var (
	dbPath = flag.String("db", "headers.db", "Path to the trace-header store")
	outDir = flag.String("out", ".", "Output directory")
)

func main() {
	flag.Parse()

	db, err := headerdb.NewDB(*dbPath)
	if err != nil {
		log.Fatalf("failed to open header store %s: %v", *dbPath, err)
	}
	defer db.Close()

	ctx := context.Background()
	resolver := survey.NewResolver(db, 0)

	points, err := resolver.MapPoints(ctx)
	if err != nil {
		log.Fatalf("failed to load map points: %v", err)
	}
	boundary, err := resolver.Boundary(ctx)
	if err != nil {
		log.Fatalf("failed to resolve boundary: %v", err)
	}
	grid, err := resolver.GridLines(ctx)
	if err != nil {
		log.Fatalf("failed to build grid lines: %v", err)
	}

	htmlFile := filepath.Join(*outDir, "survey-traces.html")
	if err := writeTraceScatter(htmlFile, points, boundary); err != nil {
		log.Fatalf("failed to write %s: %v", htmlFile, err)
	}
	log.Printf("wrote %s", htmlFile)

	pngFile := filepath.Join(*outDir, "survey-outline.png")
	if err := writeOutlinePNG(pngFile, boundary, grid); err != nil {
		log.Fatalf("failed to write %s: %v", pngFile, err)
	}
	log.Printf("wrote %s", pngFile)
}

func writeTraceScatter(path string, points []survey.MapPoint, boundary *survey.BoundaryResult) error {
	data := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.ScatterData{Value: []interface{}{p.X, p.Y}})
	}
	cornerData := make([]opts.ScatterData, 0, 4)
	for _, p := range boundary.Boundary[:4] {
		cornerData = append(cornerData, opts.ScatterData{Value: []interface{}{p[0], p[1]}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Survey traces",
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Survey traces",
			Subtitle: fmt.Sprintf("traces=%d area=%.2fkm² orientation=%.2f°",
				len(points), boundary.AreaSqKm, boundary.OrientationDegrees),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Y", NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("traces", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	scatter.AddSeries("corners", cornerData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return scatter.Render(f)
}

func writeOutlinePNG(path string, boundary *survey.BoundaryResult, grid *survey.GridLineSet) error {
	p := plot.New()
	p.Title.Text = "Survey outline"
	p.X.Label.Text = "X (ground units)"
	p.Y.Label.Text = "Y (ground units)"

	for _, line := range append(append([]survey.GridLine{}, grid.Inlines...), grid.Crosslines...) {
		pts := make(plotter.XYs, len(line.Points))
		for i, pt := range line.Points {
			pts[i] = plotter.XY{X: pt[0], Y: pt[1]}
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.Color = color.Gray{Y: 200}
		p.Add(l)
	}

	ring := make(plotter.XYs, len(boundary.Boundary))
	for i, pt := range boundary.Boundary {
		ring[i] = plotter.XY{X: pt[0], Y: pt[1]}
	}
	outline, err := plotter.NewLine(ring)
	if err != nil {
		return err
	}
	outline.Width = vg.Points(2)
	p.Add(outline)

	return p.Save(8*vg.Inch, 8*vg.Inch, path)
}
