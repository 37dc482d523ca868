package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Line is a fitted line y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// NaNLine is returned when a fit cannot be computed.
var NaNLine = Line{Slope: math.NaN(), Intercept: math.NaN()}

// Fit computes the ordinary least-squares line through (x[i], y[i]).
// Non-finite inputs propagate into a non-finite line rather than panicking,
// as do mismatched lengths and fewer than two observations.
func Fit(x, y []float64) Line {
	if len(x) != len(y) || len(x) < 2 {
		return NaNLine
	}
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NaNLine
		}
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	return Line{Slope: slope, Intercept: intercept}
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Valid reports whether both coefficients are finite.
func (l Line) Valid() bool {
	return isFinite(l.Slope) && isFinite(l.Intercept)
}

// DoublingTime converts the slope of a log2 fit (per second) into the number
// of periods needed to double. A zero slope yields +Inf and a NaN slope NaN.
func DoublingTime(slope, intervalSeconds float64) float64 {
	return 1 / (slope * intervalSeconds)
}

// Log2 returns the base-2 logarithm of every value. Zero maps to -Inf and
// negative values to NaN.
func Log2(values []float64) []float64 {
	logs := make([]float64, len(values))
	for i, v := range values {
		logs[i] = math.Log2(v)
	}
	return logs
}

// SumSquaredError returns the sum of squared residuals between actual and
// predicted. A NaN prediction counts as 0. Only the common prefix of the two
// slices is compared.
func SumSquaredError(actual, predicted []float64) float64 {
	n := len(actual)
	if len(predicted) < n {
		n = len(predicted)
	}

	sse := 0.0
	for i := 0; i < n; i++ {
		p := predicted[i]
		if math.IsNaN(p) {
			p = 0
		}
		diff := actual[i] - p
		sse += diff * diff
	}
	return sse
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
