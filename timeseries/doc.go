// Package timeseries provides daily count series and the overlays derived
// from them for charting.
//
// # Creating a Series
//
// A series is built from [timestamp, value] pairs, or from values keyed by
// "MM/DD/YYYY" dates:
//
//	cases := timeseries.FromFormattedDates("Cases", []timeseries.RawPair{
//	    {Timestamp: 1583020800, Value: 1},
//	    {Timestamp: 1583107200, Value: 3},
//	})
//
//	deaths, err := timeseries.FromDateMap("Deaths", map[string]float64{
//	    "03/01/2020": 0,
//	    "03/02/2020": 1,
//	}, nil)
//
// Empty input yields an empty series; every operator accepts it and returns
// another empty series, so callers never need nil checks.
//
// # Overlays
//
// Operators return new series and can be chained freely:
//
//	newCases := cases.Change()               // "New Cases"
//	smoothed := newCases.Smooth()            // "New Cases (3 day avg)"
//	doubling := cases.DoublingInterval()     // "Cases Days to Double"
//	trend := newCases.Trend()                // "New Cases (Trend)", may be nil
//
// Points of derived series are computed on first access and cached. The last
// point of Change and DoublingInterval is available without computing the
// rest:
//
//	v, ok := cases.Change().LastValue()
//
// # Charting
//
// Flatten merges series into one row per day:
//
//	table, err := timeseries.Flatten(cases, newCases, doubling, trend)
//	for _, row := range table.Rows {
//	    fmt.Println(table.TimestampFormatter(row.Timestamp), row.Values)
//	}
//
// # Options
//
// Window sizes and the doubling bound are taken from Options:
//
//	opts := timeseries.DefaultOptions()
//	opts.SmoothWindow = 7
//	cases := timeseries.FromFormattedDatesWithOptions("Cases", raw, opts)
package timeseries
