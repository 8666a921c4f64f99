package insight

import (
	"math"
	"strings"
	"testing"

	"github.com/KaramelBytes/likelens/internal/dataset"
	"github.com/KaramelBytes/likelens/internal/regression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(views, likes []float64) *dataset.Table {
	recs := make([][]string, len(views))
	for i := range recs {
		recs[i] = []string{"", ""}
	}
	return &dataset.Table{Columns: []string{"views", "likes"}, Records: recs, Views: views, Likes: likes}
}

func TestAggregateThreeVideos(t *testing.T) {
	tbl := table([]float64{1000, 2000, 3000}, []float64{50, 90, 160})
	m, err := regression.Fit(tbl.Views, tbl.Likes)
	require.NoError(t, err)

	r := Aggregate(tbl, m, m.Predict(tbl.Views))
	assert.Equal(t, 3, r.TotalRows)
	assert.Equal(t, 2000.0, r.AverageViews)
	assert.Equal(t, 100.0, r.AverageLikes)
	assert.Equal(t, -10.0, r.Intercept)
	assert.Equal(t, 5490.0, r.PredictedLikesAt100k)
	assert.Equal(t, Round(m.Slope), r.Slope)
	assert.InDelta(t, 0.055, r.Slope, 0.0051)
	assert.Greater(t, r.RSquared, 0.9)
	assert.LessOrEqual(t, r.RSquared, 1.0)
}

func TestAggregateIsDeterministic(t *testing.T) {
	tbl := table([]float64{12, 340, 5600, 78000}, []float64{1, 13, 190, 2411})
	m, err := regression.Fit(tbl.Views, tbl.Likes)
	require.NoError(t, err)
	a := Aggregate(tbl, m, m.Predict(tbl.Views))
	b := Aggregate(tbl, m, m.Predict(tbl.Views))
	assert.Equal(t, a, b)
	for _, v := range []float64{a.Slope, a.Intercept, a.AverageViews, a.AverageLikes, a.PredictedLikesAt100k, a.RSquared} {
		assert.Equal(t, v, Round(v), "value %v is not idempotent under Round", v)
	}
}

func TestRound(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1.234, 1.23},
		{1.236, 1.24},
		{-8.3333, -8.33},
		{2.5, 2.5},
		{0.125, 0.12},
		{0.375, 0.38},
		{1.115, 1.11},
		{2.675, 2.67},
		{1.005, 1},
		{-1.115, -1.11},
		{100000, 100000},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Round(c.in), "Round(%v)", c.in)
	}
	assert.True(t, math.IsNaN(Round(math.NaN())))
}

func TestRSquaredConstantResponse(t *testing.T) {
	assert.Equal(t, 1.0, rSquared([]float64{3, 3}, []float64{3, 3}))
	assert.Equal(t, 0.0, rSquared([]float64{3, 3}, []float64{2, 4}))
	assert.Equal(t, 0.0, rSquared([]float64{1, 2}, []float64{1}))
}

func TestMarkdown(t *testing.T) {
	r := Report{PredictedLikesAt100k: 5490, Slope: 0.06, Intercept: -10, TotalRows: 3, AverageViews: 2000, AverageLikes: 100, RSquared: 0.98}
	md := r.Markdown("Food: Culinary Delights")
	for _, want := range []string{
		"Food: Culinary Delights",
		"- Total videos: 3",
		"- Intercept: -10.00",
		"- Predicted likes at 100000 views: 5490.00",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}
