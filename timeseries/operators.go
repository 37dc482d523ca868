package timeseries

import (
	"fmt"
	"math"

	"github.com/sartorproj/epitrend/stats"
)

// Change returns the period-over-period increase, labeled "New <label>".
//
// The first point is copied from the input: a region only appears in the
// data once it has a case, so its implicit predecessor is 0. Later points are
// max(0, v[i]-v[i-1]); downward corrections are clamped. The last point is
// computed immediately from the tail of the input, the rest on first access.
func (s *Series) Change() *Series {
	name := "New " + s.label

	last, prev := s.tail()
	if !last.ok {
		return empty(name, s.period, s.opts)
	}

	lastChange := last.point.Value
	if prev.ok {
		lastChange = math.Max(0, last.point.Value-prev.point.Value)
	}

	gen := func() []Point {
		points := s.pointsView()
		if len(points) == 0 {
			return nil
		}

		diffs := stats.ClampMin(stats.Diff(pointValues(points)), 0)
		deltas := make([]Point, len(points))
		deltas[0] = points[0]
		for i, d := range diffs {
			deltas[i+1] = Point{Moment: points[i+1].Moment, Value: d}
		}
		return deltas
	}

	return generated(name, s.period, s.opts, gen, &lastPoint{
		point: Point{Moment: last.point.Moment, Value: lastChange},
		ok:    true,
	})
}

// Smooth returns the trailing moving average over Options.SmoothWindow points,
// labeled "<label> (N <unit> avg)". Negative inputs count as 0. Fewer points
// than the window yield an empty series.
func (s *Series) Smooth() *Series {
	window := s.opts.SmoothWindow
	name := fmt.Sprintf("%s (%d %s avg)", s.label, window, s.period.SmoothLabel)

	points := s.pointsView()
	if len(points) < window {
		return empty(name, s.period, s.opts)
	}

	averages := stats.MovingAverage(stats.ClampMin(pointValues(points), 0), window)
	smoothed := make([]Point, len(averages))
	for i, avg := range averages {
		smoothed[i] = Point{Moment: points[i+window-1].Moment, Value: avg}
	}

	return materialized(name, s.period, s.opts, smoothed)
}

// DoublingInterval estimates, for each point, the number of periods the
// quantity needs to double at its recent growth rate. Each estimate comes from
// a least-squares fit of log2(value) over the trailing window. Estimates that
// are not positive, not finite or above Options.MaxDoublingPeriods become NaN.
//
// The last point uses the trailing RegressionWindow points and is computed
// immediately; the sliding estimates are computed on first access.
func (s *Series) DoublingInterval() *Series {
	name := s.label + " " + s.period.DoublingLabel
	window := s.opts.RegressionWindow

	points := s.pointsView()
	n := len(points)
	if n < window {
		return empty(name, s.period, s.opts)
	}

	interval := s.period.Seconds()
	limit := s.opts.MaxDoublingPeriods

	lastDouble := Point{
		Moment: points[n-1].Moment,
		Value:  doublingTime(points[n-window:], interval, limit),
	}

	gen := func() []Point {
		doublings := make([]Point, 0, n-window+1)
		for i := window; i < n-1; i++ {
			doublings = append(doublings, Point{
				Moment: points[i].Moment,
				Value:  doublingTime(points[i-window:i+1], interval, limit),
			})
		}
		return append(doublings, lastDouble)
	}

	return generated(name, s.period, s.opts, gen, &lastPoint{point: lastDouble, ok: true})
}

func doublingTime(window []Point, interval, limit float64) float64 {
	x := make([]float64, len(window))
	y := make([]float64, len(window))
	for i, p := range window {
		x[i] = float64(p.Timestamp())
		y[i] = p.Value
	}

	line := stats.Fit(x, stats.Log2(y))
	value := stats.DoublingTime(line.Slope, interval)
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 || value > limit {
		return math.NaN()
	}
	return value
}

func pointValues(points []Point) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	return values
}
