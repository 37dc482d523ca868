package timeseries

import (
	"slices"
	"time"
)

// DateKeyLayout is the layout of date keys in raw region data ("MM/DD/YYYY").
const DateKeyLayout = "01/02/2006"

// Point is a single observation. Moment is the start of the period (UTC
// midnight for daily data). Value may be NaN when undefined for that period.
type Point struct {
	Moment time.Time
	Value  float64
}

// Timestamp returns the moment in epoch seconds.
func (p Point) Timestamp() int64 {
	return p.Moment.Unix()
}

// RawPair is a [timestamp, value] input element, timestamp in epoch seconds.
type RawPair struct {
	Timestamp int64
	Value     float64
}

// Period describes the cadence of a series and how raw input is converted
// and displayed.
type Period struct {
	Name          string        // Identifier, e.g. "daily"
	Layout        string        // time layout used to render a moment
	Interval      time.Duration // Length of one period
	DoublingLabel string        // Suffix of doubling interval labels
	SmoothLabel   string        // Unit named in smoothed labels
}

// Daily is the period of all series built from daily counts.
var Daily = &Period{
	Name:          "daily",
	Layout:        "01/02",
	Interval:      24 * time.Hour,
	DoublingLabel: "Days to Double",
	SmoothLabel:   "day",
}

func resolvePeriod(period *Period) *Period {
	if period == nil {
		return Daily
	}
	return period
}

// String returns the period name.
func (p *Period) String() string {
	if p == nil {
		return "<nil>"
	}
	return p.Name
}

// Format renders a moment for display.
func (p *Period) Format(moment time.Time) string {
	return moment.UTC().Format(p.Layout)
}

// FormatTimestamp renders epoch seconds for display.
func (p *Period) FormatTimestamp(timestamp int64) string {
	return p.Format(time.Unix(timestamp, 0))
}

// Seconds returns the duration of one period in seconds.
func (p *Period) Seconds() float64 {
	return p.Interval.Seconds()
}

// Truncate returns the start of the period containing t.
func (p *Period) Truncate(t time.Time) time.Time {
	return t.UTC().Truncate(p.Interval)
}

// ConvertPoint converts a single raw pair into a point.
func (p *Period) ConvertPoint(raw RawPair) Point {
	return Point{
		Moment: p.Truncate(time.Unix(raw.Timestamp, 0)),
		Value:  raw.Value,
	}
}

// Convert turns raw pairs into points ordered by moment. When several pairs
// fall into the same period the one given last wins.
func (p *Period) Convert(raw []RawPair) []Point {
	points := make([]Point, len(raw))
	for i, r := range raw {
		points[i] = p.ConvertPoint(r)
	}
	return normalize(points)
}

// normalize sorts points by moment and collapses duplicate moments, keeping
// the last occurrence. The input slice is reordered in place.
func normalize(points []Point) []Point {
	slices.SortStableFunc(points, func(a, b Point) int {
		return a.Moment.Compare(b.Moment)
	})

	out := points[:0]
	for _, pt := range points {
		if len(out) > 0 && out[len(out)-1].Moment.Equal(pt.Moment) {
			out[len(out)-1] = pt
			continue
		}
		out = append(out, pt)
	}
	return out
}

// ParseDateKey parses a "MM/DD/YYYY" date key as UTC midnight.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate.Wrap(err, key)
	}
	return t, nil
}

// PairsFromDateMap converts a date-keyed map into raw pairs ordered by
// calendar date.
func PairsFromDateMap(values map[string]float64) ([]RawPair, error) {
	pairs := make([]RawPair, 0, len(values))
	for key, v := range values {
		t, err := ParseDateKey(key)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, RawPair{Timestamp: t.Unix(), Value: v})
	}

	slices.SortFunc(pairs, func(a, b RawPair) int {
		switch {
		case a.Timestamp < b.Timestamp:
			return -1
		case a.Timestamp > b.Timestamp:
			return 1
		}
		return 0
	})
	return pairs, nil
}
