package pipeline

import (
	"github.com/KaramelBytes/likelens/internal/insight"
	"github.com/KaramelBytes/likelens/internal/plot"
)

// Report is the composed result of one category analysis.
type Report struct {
	Category string         `json:"category"`
	Title    string         `json:"category_title"`
	Plot     plot.Artifact  `json:"plot"`
	Insights insight.Report `json:"insights"`
	Warnings []string       `json:"warnings,omitempty"`
}

// Compose assembles a Report without computing anything.
func Compose(category string, artifact plot.Artifact, insights insight.Report, title string) Report {
	return Report{Category: category, Title: title, Plot: artifact, Insights: insights}
}
