// Package plot renders the views/likes chart and persists it as a PNG artifact.
package plot

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Chart dimensions keep a 10:6 aspect ratio.
const (
	Width  = 1000
	Height = 600
)

// Renderer draws scatter-plus-fit-line charts.
type Renderer struct {
	Width, Height int
	DotWidth      float64
	LineWidth     float64
}

// NewRenderer returns a renderer with the default size and styling.
func NewRenderer() *Renderer {
	return &Renderer{Width: Width, Height: Height, DotWidth: 3, LineWidth: 2}
}

// Point is one (views, likes) pair.
type Point struct {
	X, Y float64
}

// LinePoints pairs views with their predictions, ordered by ascending views.
// Ties keep input order.
func LinePoints(views, predictions []float64) []Point {
	n := len(views)
	if len(predictions) < n {
		n = len(predictions)
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{X: views[i], Y: predictions[i]}
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
	return pts
}

// Title returns the chart heading for a category title.
func Title(categoryTitle string) string {
	return fmt.Sprintf("Likes vs Views for %s", categoryTitle)
}

// Render draws every (views, likes) point and the fitted line through
// (views, predictions), and returns PNG bytes.
func (r *Renderer) Render(views, likes, predictions []float64, title string) ([]byte, error) {
	if len(views) == 0 || len(views) != len(likes) || len(views) != len(predictions) {
		return nil, fmt.Errorf("render: mismatched series lengths views=%d likes=%d predictions=%d", len(views), len(likes), len(predictions))
	}
	line := LinePoints(views, predictions)
	lx := make([]float64, len(line))
	ly := make([]float64, len(line))
	for i, p := range line {
		lx[i], ly[i] = p.X, p.Y
	}

	graph := chart.Chart{
		Title:  Title(title),
		Width:  r.Width,
		Height: r.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: "Views", Range: paddedRange(views, views)},
		YAxis: chart.YAxis{Name: "Likes", Range: paddedRange(likes, ly)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "Actual Likes",
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    r.DotWidth,
					DotColor:    drawing.ColorBlue.WithAlpha(128),
				},
				XValues: views,
				YValues: likes,
			},
			chart.ContinuousSeries{
				Name: "Predicted Likes",
				Style: chart.Style{
					StrokeColor: drawing.ColorRed,
					StrokeWidth: r.LineWidth,
				},
				XValues: lx,
				YValues: ly,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// paddedRange spans every value in the given series. A flat span is widened
// so the axis has a non-zero range.
func paddedRange(series ...[]float64) *chart.ContinuousRange {
	first := true
	var lo, hi float64
	for _, s := range series {
		for _, v := range s {
			if first {
				lo, hi, first = v, v, false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if lo == hi {
		pad := 1.0
		if lo != 0 {
			pad = abs(lo) * 0.05
		}
		lo, hi = lo-pad, hi+pad
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
