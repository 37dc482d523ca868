// Package dataset reads raw regional counts and bundles them into series.
package dataset

import (
	"math"
	"time"

	"github.com/sartorproj/epitrend/timeseries"
)

// Series labels of a region.
const (
	LabelCases     = "Cases"
	LabelDeaths    = "Deaths"
	LabelRecovered = "Recovered"
	LabelActive    = "Active"
)

// RegionData holds the raw daily counts of one region. It is immutable once
// loaded and may be shared between goroutines.
type RegionData struct {
	Name      string
	Confirmed []timeseries.RawPair
	Deaths    []timeseries.RawPair
	Recovered []timeseries.RawPair
}

// Region returns fresh base series for the data. A nil opts means
// timeseries.DefaultOptions.
func (d *RegionData) Region(opts *timeseries.Options) *Region {
	return &Region{
		Name:      d.Name,
		Confirmed: timeseries.FromFormattedDatesWithOptions(LabelCases, d.Confirmed, opts),
		Deaths:    timeseries.FromFormattedDatesWithOptions(LabelDeaths, d.Deaths, opts),
		Recovered: timeseries.FromFormattedDatesWithOptions(LabelRecovered, d.Recovered, opts),
		opts:      opts,
	}
}

// Region is the set of base series of one region for one session.
type Region struct {
	Name      string
	Confirmed *timeseries.Series
	Deaths    *timeseries.Series
	Recovered *timeseries.Series

	opts *timeseries.Options
}

// Active returns confirmed minus deaths minus recovered per day. Days without
// a death or recovery count use 0. Regions without recovery data yield an
// empty series.
func (r *Region) Active() *timeseries.Series {
	if r.Recovered.Len() == 0 {
		return timeseries.Empty(LabelActive, timeseries.Daily, r.opts)
	}

	confirmed, deaths, recovered := r.Confirmed, r.Deaths, r.Recovered
	return timeseries.Generate(LabelActive, timeseries.Daily, r.opts, func() []timeseries.Point {
		died := byMoment(deaths)
		healed := byMoment(recovered)

		points := confirmed.Points()
		for i, p := range points {
			points[i].Value = p.Value - died[p.Moment] - healed[p.Moment]
		}
		return points
	})
}

// DailyOverlays returns the series charted on the daily graph.
func (r *Region) DailyOverlays() []*timeseries.Series {
	newCases := r.Confirmed.Change()
	return []*timeseries.Series{
		newCases,
		newCases.Trend(),
		newCases.Smooth(),
		r.Confirmed,
		r.Active(),
		r.Recovered,
		r.Deaths.Change(),
		r.Deaths,
	}
}

// DoublingOverlays returns the series charted on the doubling graph.
func (r *Region) DoublingOverlays() []*timeseries.Series {
	return []*timeseries.Series{
		r.Confirmed.DoublingInterval(),
		r.Deaths.DoublingInterval(),
	}
}

// Summary holds the latest figures of a region. Missing figures are nil.
type Summary struct {
	Name               string    `json:"name" yaml:"name"`
	Date               time.Time `json:"date" yaml:"date"`
	Confirmed          *float64  `json:"confirmed" yaml:"confirmed"`
	NewCases           *float64  `json:"newCases" yaml:"newCases"`
	NewPercent         *float64  `json:"newPercent" yaml:"newPercent"`
	Deaths             *float64  `json:"deaths" yaml:"deaths"`
	NewDeaths          *float64  `json:"newDeaths" yaml:"newDeaths"`
	Recovered          *float64  `json:"recovered" yaml:"recovered"`
	DaysToDouble       *float64  `json:"daysToDouble" yaml:"daysToDouble"`
	DaysToDoubleDeaths *float64  `json:"daysToDoubleDeaths" yaml:"daysToDoubleDeaths"`
	TrendModel         string    `json:"trendModel,omitempty" yaml:"trendModel,omitempty"`
}

// Summary computes the latest figures. Only the last points of the derived
// series are evaluated.
func (r *Region) Summary() Summary {
	summary := Summary{
		Name:               r.Name,
		Confirmed:          lastValue(r.Confirmed),
		NewCases:           lastValue(r.Confirmed.Change()),
		Deaths:             lastValue(r.Deaths),
		NewDeaths:          lastValue(r.Deaths.Change()),
		Recovered:          lastValue(r.Recovered),
		DaysToDouble:       lastValue(r.Confirmed.DoublingInterval()),
		DaysToDoubleDeaths: lastValue(r.Deaths.DoublingInterval()),
	}

	if p, ok := r.Confirmed.LastPoint(); ok {
		summary.Date = p.Moment
	}
	if summary.Confirmed != nil && summary.NewCases != nil {
		summary.NewPercent = finite(*summary.NewCases / (*summary.Confirmed - *summary.NewCases))
	}
	if trend := r.Confirmed.Change().FitTrend(); trend != nil {
		summary.TrendModel = trend.Model.String()
	}

	return summary
}

func byMoment(s *timeseries.Series) map[time.Time]float64 {
	values := make(map[time.Time]float64, s.Len())
	for _, p := range s.Points() {
		values[p.Moment] = p.Value
	}
	return values
}

func lastValue(s *timeseries.Series) *float64 {
	v, ok := s.LastValue()
	if !ok {
		return nil
	}
	return finite(v)
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
