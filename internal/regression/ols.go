// Package regression fits a single-predictor ordinary least squares line.
package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrDegenerateInput is returned when the predictor has no variance
	// (fewer than two rows, or every value identical).
	ErrDegenerateInput = errors.New("degenerate input: predictor has zero variance")
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("predictor and response lengths differ")
)

// Model is a fitted line y = Slope*x + Intercept.
type Model struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// Fit computes slope = cov(x, y) / var(x) and intercept = mean(y) - slope*mean(x).
func Fit(x, y []float64) (Model, error) {
	if len(x) != len(y) {
		return Model{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return Model{}, fmt.Errorf("%w: %d row(s)", ErrDegenerateInput, len(x))
	}
	if constant(x) {
		return Model{}, fmt.Errorf("%w: all %d values equal %g", ErrDegenerateInput, len(x), x[0])
	}
	variance := stat.Variance(x, nil)
	if variance == 0 || math.IsNaN(variance) {
		return Model{}, ErrDegenerateInput
	}
	slope := stat.Covariance(x, y, nil) / variance
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return Model{}, fmt.Errorf("%w: slope is not finite", ErrDegenerateInput)
	}
	intercept := stat.Mean(y, nil) - slope*stat.Mean(x, nil)
	return Model{Slope: slope, Intercept: intercept}, nil
}

// PredictOne evaluates the line at x.
func (m Model) PredictOne(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// Predict evaluates the line at every x, preserving order.
func (m Model) Predict(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = m.PredictOne(v)
	}
	return out
}

func constant(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}
