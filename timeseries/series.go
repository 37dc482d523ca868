package timeseries

import (
	"time"

	"gonum.org/v1/gonum/floats"
)

// Kind identifies how a series obtains its points.
type Kind int

const (
	// KindEmpty has no points.
	KindEmpty Kind = iota
	// KindMaterialized holds raw input or eagerly computed points.
	KindMaterialized
	// KindGenerator computes its points on first access.
	KindGenerator
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindMaterialized:
		return "materialized"
	case KindGenerator:
		return "generator"
	}
	return "unknown"
}

type lastPoint struct {
	point Point
	ok    bool
}

// Series is a labeled sequence of points ordered by moment. Points are
// computed at most once and never change afterwards. Every operator returns a
// new Series.
type Series struct {
	label  string
	period *Period
	opts   Options
	kind   Kind

	raw    []RawPair
	points *Lazy[[]Point]
	last   *Lazy[lastPoint]
}

// FromFormattedDates creates a daily series from raw pairs using the default
// options. Empty input yields an empty series.
func FromFormattedDates(label string, raw []RawPair) *Series {
	return FromFormattedDatesWithOptions(label, raw, nil)
}

// FromFormattedDatesWithOptions is FromFormattedDates with explicit options.
// A nil opts means DefaultOptions.
func FromFormattedDatesWithOptions(label string, raw []RawPair, opts *Options) *Series {
	if len(raw) == 0 {
		return Empty(label, Daily, opts)
	}
	return fromRaw(label, raw, Daily, resolveOptions(opts))
}

// FromDateMap creates a daily series from values keyed by "MM/DD/YYYY".
func FromDateMap(label string, values map[string]float64, opts *Options) (*Series, error) {
	raw, err := PairsFromDateMap(values)
	if err != nil {
		return nil, err
	}
	return FromFormattedDatesWithOptions(label, raw, opts), nil
}

// Empty returns a series without points. A nil period means Daily.
func Empty(label string, period *Period, opts *Options) *Series {
	return empty(label, resolvePeriod(period), resolveOptions(opts))
}

// Generate returns a series whose points are produced by gen on first access.
// The generated points are sorted by moment and duplicate moments collapsed.
// A nil period means Daily.
func Generate(label string, period *Period, opts *Options, gen func() []Point) *Series {
	return generated(label, resolvePeriod(period), resolveOptions(opts), func() []Point {
		return normalize(gen())
	}, nil)
}

func empty(label string, period *Period, opts Options) *Series {
	return &Series{
		label:  label,
		period: period,
		opts:   opts,
		kind:   KindEmpty,
		points: Ready[[]Point](nil),
		last:   Ready(lastPoint{}),
	}
}

func fromRaw(label string, raw []RawPair, period *Period, opts Options) *Series {
	raw = append([]RawPair(nil), raw...)
	return &Series{
		label:  label,
		period: period,
		opts:   opts,
		kind:   KindMaterialized,
		raw:    raw,
		points: NewLazy(func() []Point {
			return period.Convert(raw)
		}),
		last: NewLazy(func() lastPoint {
			last, _ := rawTail(raw, period)
			return last
		}),
	}
}

func materialized(label string, period *Period, opts Options, points []Point) *Series {
	s := &Series{
		label:  label,
		period: period,
		opts:   opts,
		kind:   KindMaterialized,
		points: Ready(points),
	}
	s.last = NewLazy(func() lastPoint {
		last, _ := pointsTail(points)
		return last
	})
	return s
}

// generated builds a generator-backed series. A nil last derives the last
// point from the generated points.
func generated(label string, period *Period, opts Options, gen func() []Point, last *lastPoint) *Series {
	s := &Series{
		label:  label,
		period: period,
		opts:   opts,
		kind:   KindGenerator,
		points: NewLazy(gen),
	}
	if last != nil {
		s.last = Ready(*last)
	} else {
		s.last = NewLazy(func() lastPoint {
			last, _ := pointsTail(s.points.Get())
			return last
		})
	}
	return s
}

// Label returns the series label.
func (s *Series) Label() string {
	return s.label
}

// Period returns the series period.
func (s *Series) Period() *Period {
	return s.period
}

// Options returns a copy of the operator options.
func (s *Series) Options() Options {
	return s.opts
}

// Kind returns the variant of the series.
func (s *Series) Kind() Kind {
	return s.kind
}

// Formatter returns the display formatter of the series period.
func (s *Series) Formatter() func(time.Time) string {
	return s.period.Format
}

// Points returns a copy of the points, computing them if needed.
func (s *Series) Points() []Point {
	points := s.pointsView()
	if points == nil {
		return nil
	}
	return append([]Point(nil), points...)
}

// pointsView returns the cached points without copying. Callers must not
// modify the result.
func (s *Series) pointsView() []Point {
	switch s.kind {
	case KindEmpty:
		return nil
	case KindMaterialized, KindGenerator:
		return s.points.Get()
	}
	return nil
}

// Materialized reports whether the points have been computed.
func (s *Series) Materialized() bool {
	return s.points.Computed()
}

// Len returns the number of points.
func (s *Series) Len() int {
	return len(s.pointsView())
}

// Values returns the point values in order.
func (s *Series) Values() []float64 {
	return pointValues(s.pointsView())
}

// LastPoint returns the most recent point. It does not materialize a
// raw-backed series.
func (s *Series) LastPoint() (Point, bool) {
	if s.kind == KindEmpty {
		return Point{}, false
	}
	last := s.last.Get()
	return last.point, last.ok
}

// LastValue returns the value of the most recent point.
func (s *Series) LastValue() (float64, bool) {
	p, ok := s.LastPoint()
	return p.Value, ok
}

// Sum returns the sum of all values.
func (s *Series) Sum() float64 {
	return floats.Sum(s.Values())
}

// Today returns the last value when it falls in the same period as now.
func (s *Series) Today(now time.Time) (float64, bool) {
	p, ok := s.LastPoint()
	if !ok || !p.Moment.Equal(s.period.Truncate(now)) {
		return 0, false
	}
	return p.Value, true
}

// tail returns the last two points without materializing raw-backed series.
func (s *Series) tail() (last, prev lastPoint) {
	switch {
	case s.kind == KindEmpty:
		return lastPoint{}, lastPoint{}
	case s.raw != nil && !s.points.Computed():
		return rawTail(s.raw, s.period)
	}
	return pointsTail(s.pointsView())
}

// rawTail scans raw pairs for the last two distinct periods, with the same
// tie-breaking as Period.Convert.
func rawTail(raw []RawPair, period *Period) (last, prev lastPoint) {
	for _, r := range raw {
		p := period.ConvertPoint(r)
		switch {
		case !last.ok || p.Moment.After(last.point.Moment):
			prev = last
			last = lastPoint{point: p, ok: true}
		case p.Moment.Equal(last.point.Moment):
			last.point = p
		case !prev.ok || !p.Moment.Before(prev.point.Moment):
			prev = lastPoint{point: p, ok: true}
		}
	}
	return last, prev
}

func pointsTail(points []Point) (last, prev lastPoint) {
	n := len(points)
	if n >= 1 {
		last = lastPoint{point: points[n-1], ok: true}
	}
	if n >= 2 {
		prev = lastPoint{point: points[n-2], ok: true}
	}
	return last, prev
}
