package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/likelens/internal/category"
	"github.com/KaramelBytes/likelens/internal/dataset"
	"github.com/KaramelBytes/likelens/internal/insight"
	"github.com/KaramelBytes/likelens/internal/plot"
	"github.com/KaramelBytes/likelens/internal/regression"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	Loader
	calls int
}

func (c *countingLoader) Load(ref string) (*dataset.Table, error) {
	c.calls++
	return c.Loader.Load(ref)
}

type countingStore struct {
	ArtifactStore
	calls int
}

func (c *countingStore) Save(cat string, png []byte) (plot.Artifact, error) {
	c.calls++
	return c.ArtifactStore.Save(cat, png)
}

type fixture struct {
	analyzer  *Analyzer
	loader    *countingLoader
	store     *countingStore
	staticDir string
}

func newFixture(t *testing.T, files map[string]string) fixture {
	t.Helper()
	dataDir := t.TempDir()
	staticDir := filepath.Join(t.TempDir(), "static")
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(body), 0o644))
	}
	reg, err := category.NewRegistry(
		category.Descriptor{Key: "food", DatasetRef: "food.csv", Title: "Food: Culinary Delights"},
		category.Descriptor{Key: "nolikes", DatasetRef: "nolikes.csv", Title: "No Likes"},
		category.Descriptor{Key: "single", DatasetRef: "single.csv", Title: "Single"},
		category.Descriptor{Key: "missing", DatasetRef: "missing.csv", Title: "Missing"},
	)
	require.NoError(t, err)
	loader := &countingLoader{Loader: dataset.NewLoader(dataDir, dataset.DefaultOptions())}
	store := &countingStore{ArtifactStore: plot.NewStore(staticDir, "/static")}
	a := NewAnalyzer(reg, loader, plot.NewRenderer(), store, zerolog.Nop())
	return fixture{analyzer: a, loader: loader, store: store, staticDir: staticDir}
}

var fixtureFiles = map[string]string{
	"food.csv":    "video_id,views,likes\na,1000,50\nb,2000,90\nc,3000,160\n",
	"nolikes.csv": "video_id,views\na,1000\n",
	"single.csv":  "views,likes\n1000,50\n",
}

func TestAnalyzeThreeVideos(t *testing.T) {
	f := newFixture(t, fixtureFiles)
	rep, err := f.analyzer.Analyze("food")
	require.NoError(t, err)

	assert.Equal(t, "food", rep.Category)
	assert.Equal(t, "Food: Culinary Delights", rep.Title)
	assert.Equal(t, 3, rep.Insights.TotalRows)
	assert.Equal(t, 2000.0, rep.Insights.AverageViews)
	assert.Equal(t, 100.0, rep.Insights.AverageLikes)
	assert.Equal(t, -10.0, rep.Insights.Intercept)
	assert.InDelta(t, 0.055, rep.Insights.Slope, 0.0051)
	assert.Equal(t, "/static/food_views_likes_plot.png", rep.Plot.URL)

	info, err := os.Stat(filepath.Join(f.staticDir, "food_views_likes_plot.png"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestAnalyzeTwiceIsIdempotent(t *testing.T) {
	f := newFixture(t, fixtureFiles)
	first, err := f.analyzer.Analyze("food")
	require.NoError(t, err)
	second, err := f.analyzer.Analyze("food")
	require.NoError(t, err)

	assert.Equal(t, first.Insights, second.Insights)
	assert.Equal(t, first.Plot, second.Plot)
	assert.Equal(t, 2, f.store.calls)

	entries, err := os.ReadDir(f.staticDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAnalyzeUnknownCategory(t *testing.T) {
	f := newFixture(t, fixtureFiles)
	_, err := f.analyzer.Analyze("Food")
	assert.ErrorIs(t, err, category.ErrNotFound)
	assert.Zero(t, f.loader.calls)
	assert.Zero(t, f.store.calls)
}

func TestAnalyzeMissingLikesColumn(t *testing.T) {
	f := newFixture(t, fixtureFiles)
	rep, err := f.analyzer.Analyze("nolikes")
	assert.Nil(t, rep)
	assert.ErrorIs(t, err, dataset.ErrSchemaInvalid)
	var se *dataset.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, []string{"likes"}, se.Missing)
	assert.Zero(t, f.store.calls)
	_, statErr := os.Stat(filepath.Join(f.staticDir, "nolikes_views_likes_plot.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestAnalyzeSingleRowIsDegenerate(t *testing.T) {
	f := newFixture(t, fixtureFiles)
	_, err := f.analyzer.Analyze("single")
	assert.ErrorIs(t, err, regression.ErrDegenerateInput)
	assert.Zero(t, f.store.calls)
}

func TestAnalyzeUnavailableDataset(t *testing.T) {
	f := newFixture(t, fixtureFiles)
	_, err := f.analyzer.Analyze("missing")
	assert.ErrorIs(t, err, dataset.ErrDataUnavailable)
	assert.Zero(t, f.store.calls)
}

func TestPlottedLineMatchesPredictions(t *testing.T) {
	views := []float64{3000, 1000, 2000}
	likes := []float64{160, 50, 90}
	m, err := regression.Fit(views, likes)
	require.NoError(t, err)
	preds := m.Predict(views)
	for _, p := range plot.LinePoints(views, preds) {
		assert.Equal(t, m.PredictOne(p.X), p.Y)
	}
}

func TestCompose(t *testing.T) {
	a := plot.Artifact{Key: "k", URL: "/static/k.png"}
	ins := insight.Report{TotalRows: 2}
	rep := Compose("food", a, ins, "Food")
	assert.Equal(t, Report{Category: "food", Title: "Food", Plot: a, Insights: ins}, rep)
}
