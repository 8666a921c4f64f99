// Package pipeline runs the per-request category analysis: registry lookup,
// dataset load, regression fit, insight aggregation, chart rendering and
// result composition.
package pipeline

import (
	"fmt"
	"time"

	"github.com/KaramelBytes/likelens/internal/category"
	"github.com/KaramelBytes/likelens/internal/dataset"
	"github.com/KaramelBytes/likelens/internal/insight"
	"github.com/KaramelBytes/likelens/internal/plot"
	"github.com/KaramelBytes/likelens/internal/regression"
	"github.com/rs/zerolog"
)

// Loader reads a dataset ref into a validated table.
type Loader interface {
	Load(ref string) (*dataset.Table, error)
}

// Renderer draws the chart PNG.
type Renderer interface {
	Render(views, likes, predictions []float64, title string) ([]byte, error)
}

// ArtifactStore persists the chart under the category key.
type ArtifactStore interface {
	Save(category string, png []byte) (plot.Artifact, error)
}

// Analyzer wires the pipeline stages. It holds no per-request state and is
// safe for concurrent use when its collaborators are.
type Analyzer struct {
	registry *category.Registry
	loader   Loader
	renderer Renderer
	store    ArtifactStore
	log      zerolog.Logger
}

// NewAnalyzer returns an Analyzer over the given collaborators.
func NewAnalyzer(reg *category.Registry, loader Loader, renderer Renderer, store ArtifactStore, log zerolog.Logger) *Analyzer {
	return &Analyzer{registry: reg, loader: loader, renderer: renderer, store: store, log: log}
}

// Registry returns the category registry the analyzer resolves keys against.
func (a *Analyzer) Registry() *category.Registry { return a.registry }

// Analyze runs the full pipeline for key. Errors match category.ErrNotFound,
// dataset.ErrDataUnavailable, dataset.ErrSchemaInvalid or
// regression.ErrDegenerateInput; nothing is written unless every stage
// before rendering succeeded.
func (a *Analyzer) Analyze(key string) (*Report, error) {
	start := time.Now()
	desc, err := a.registry.Lookup(key)
	if err != nil {
		return nil, err
	}
	log := a.log.With().Str("category", key).Str("dataset", desc.DatasetRef).Logger()

	tbl, err := a.loader.Load(desc.DatasetRef)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	log.Debug().Int("rows", tbl.Len()).Msg("dataset loaded")

	model, err := regression.Fit(tbl.Views, tbl.Likes)
	if err != nil {
		return nil, fmt.Errorf("fit %s: %w", key, err)
	}
	predictions := model.Predict(tbl.Views)
	insights := insight.Aggregate(tbl, model, predictions)

	png, err := a.renderer.Render(tbl.Views, tbl.Likes, predictions, desc.Title)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", key, err)
	}
	artifact, err := a.store.Save(key, png)
	if err != nil {
		return nil, fmt.Errorf("save plot %s: %w", key, err)
	}

	rep := Compose(key, artifact, insights, desc.Title)
	rep.Warnings = tbl.Warnings
	log.Info().
		Int("rows", insights.TotalRows).
		Float64("slope", model.Slope).
		Float64("intercept", model.Intercept).
		Dur("elapsed", time.Since(start)).
		Msg("analysis complete")
	return &rep, nil
}
