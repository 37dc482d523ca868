package timeseries

import (
	"math"

	"github.com/sartorproj/epitrend/stats"
)

// TrendModel identifies the curve chosen by FitTrend.
type TrendModel int

const (
	// TrendLinear fits value against time.
	TrendLinear TrendModel = iota
	// TrendLog fits log2(value) against time, i.e. exponential growth.
	TrendLog
)

func (m TrendModel) String() string {
	switch m {
	case TrendLinear:
		return "linear"
	case TrendLog:
		return "log"
	}
	return "unknown"
}

// TrendResult is the model selected by FitTrend.
type TrendResult struct {
	Series *Series
	Model  TrendModel
	Line   stats.Line // fit in the model's space (log2 for TrendLog)
	Error  float64    // sum of squared errors against the input
}

// Trend returns the better fitting trend curve, or nil when there is not
// enough data or neither model can be fitted.
func (s *Series) Trend() *Series {
	if r := s.FitTrend(); r != nil {
		return r.Series
	}
	return nil
}

// FitTrend fits a linear and an exponential model to the RegressionWindow
// points preceding the last point and returns the one with the lower squared
// error over the whole series. The linear model must be strictly better to
// win. It returns nil with fewer than Options.TrendMinPoints points or when
// both fits are degenerate.
func (s *Series) FitTrend() *TrendResult {
	points := s.pointsView()
	if len(points) < s.opts.TrendMinPoints {
		return nil
	}

	linear := s.fitTrend(points, TrendLinear)
	log := s.fitTrend(points, TrendLog)

	if linear != nil && (log == nil || linear.Error < log.Error) {
		return linear
	}
	return log
}

func (s *Series) fitTrend(points []Point, model TrendModel) *TrendResult {
	n := len(points)
	start := n - 1 - s.opts.RegressionWindow
	if start < 0 {
		start = 0
	}
	window := points[start : n-1]

	x := make([]float64, len(window))
	y := make([]float64, len(window))
	for i, p := range window {
		x[i] = float64(p.Timestamp())
		y[i] = p.Value
	}
	if model == TrendLog {
		y = stats.Log2(y)
	}

	line := stats.Fit(x, y)
	if !line.Valid() {
		return nil
	}

	trend := make([]Point, n)
	actual := make([]float64, n)
	predicted := make([]float64, n)
	for i, p := range points {
		v := math.Max(0, line.At(float64(p.Timestamp())))
		if model == TrendLog {
			v = math.Exp(v * math.Ln2)
		}
		trend[i] = Point{Moment: p.Moment, Value: v}
		actual[i] = p.Value
		predicted[i] = v
	}

	return &TrendResult{
		Series: materialized(s.label+" (Trend)", s.period, s.opts, trend),
		Model:  model,
		Line:   line,
		Error:  stats.SumSquaredError(actual, predicted),
	}
}
