// Package insight derives the rounded summary reported for one analysis.
package insight

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/likelens/internal/dataset"
	"github.com/KaramelBytes/likelens/internal/regression"
	"gonum.org/v1/gonum/stat"
)

// ReferenceViews is the view count probed for PredictedLikesAt100k.
const ReferenceViews = 100000

// Report is the rounded numeric summary of one category analysis.
type Report struct {
	PredictedLikesAt100k float64 `json:"predicted_likes_for_100k_views"`
	Slope                float64 `json:"slope"`
	Intercept            float64 `json:"intercept"`
	TotalRows            int     `json:"total_videos"`
	AverageViews         float64 `json:"average_views"`
	AverageLikes         float64 `json:"average_likes"`
	RSquared             float64 `json:"r_squared"`
}

// Round rounds to two decimals on the exact value of v, ties to even, so
// 2.675 (stored just below) becomes 2.67. Every reported value goes through it.
func Round(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Aggregate summarizes tbl under model. predictions must be index-aligned
// with tbl rows.
func Aggregate(tbl *dataset.Table, model regression.Model, predictions []float64) Report {
	r := Report{
		PredictedLikesAt100k: Round(model.PredictOne(ReferenceViews)),
		Slope:                Round(model.Slope),
		Intercept:            Round(model.Intercept),
		TotalRows:            tbl.Len(),
	}
	if tbl.Len() == 0 {
		return r
	}
	r.AverageViews = Round(stat.Mean(tbl.Views, nil))
	r.AverageLikes = Round(stat.Mean(tbl.Likes, nil))
	r.RSquared = Round(rSquared(tbl.Likes, predictions))
	return r
}

// rSquared is 1 - SSres/SStot. A constant response scores 1 when fitted
// exactly and 0 otherwise.
func rSquared(y, pred []float64) float64 {
	if len(y) == 0 || len(y) != len(pred) {
		return 0
	}
	mean := stat.Mean(y, nil)
	var ssRes, ssTot float64
	for i := range y {
		d := y[i] - pred[i]
		ssRes += d * d
		m := y[i] - mean
		ssTot += m * m
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}

// Markdown renders the report as a compact text block.
func (r Report) Markdown(title string) string {
	var b strings.Builder
	b.WriteString("[CATEGORY]\n")
	if title != "" {
		b.WriteString(fmt.Sprintf("%s\n", title))
	}
	b.WriteString("\n[DATASET]\n")
	b.WriteString(fmt.Sprintf("- Total videos: %d\n", r.TotalRows))
	b.WriteString(fmt.Sprintf("- Average views: %.2f\n", r.AverageViews))
	b.WriteString(fmt.Sprintf("- Average likes: %.2f\n", r.AverageLikes))
	b.WriteString("\n[REGRESSION: likes ~ views]\n")
	b.WriteString(fmt.Sprintf("- Slope: %.2f\n", r.Slope))
	b.WriteString(fmt.Sprintf("- Intercept: %.2f\n", r.Intercept))
	b.WriteString(fmt.Sprintf("- R²: %.2f\n", r.RSquared))
	b.WriteString(fmt.Sprintf("- Predicted likes at %d views: %.2f\n", ReferenceViews, r.PredictedLikesAt100k))
	return b.String()
}
