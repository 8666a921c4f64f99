package cmd

import (
	"fmt"

	"github.com/KaramelBytes/likelens/internal/category"
	"github.com/KaramelBytes/likelens/internal/dataset"
	"github.com/KaramelBytes/likelens/internal/pipeline"
	"github.com/KaramelBytes/likelens/internal/plot"
	"github.com/KaramelBytes/likelens/internal/server"
)

// newAnalyzer wires the pipeline from the loaded configuration.
func newAnalyzer() (*pipeline.Analyzer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("no configuration loaded")
	}
	opt, err := cfg.DatasetOptions()
	if err != nil {
		return nil, err
	}
	return pipeline.NewAnalyzer(
		category.Default(),
		dataset.NewLoader(cfg.DatasetDir, opt),
		plot.NewRenderer(),
		plot.NewStore(cfg.StaticDir, server.StaticPrefix),
		logger,
	), nil
}
