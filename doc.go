// Package epitrend turns cumulative epidemic counts into growth reports.
//
// Epitrend reads per-region case, death and recovery counts and derives the
// figures used to judge how an outbreak is growing: daily increases, moving
// averages, doubling intervals and trend curves fitted on recent days.
//
// # Features
//
//   - Lazy daily series with an eagerly known last point
//   - Daily change, moving average, doubling interval and trend operators
//   - Linear versus exponential trend selection by squared error
//   - Flattening of several series into one table keyed by day
//   - JSON and CSV region loaders with an expiring cache
//   - A command line tool rendering tables, JSON or YAML
//
// # Quick Start
//
// Load a region and derive its overlays:
//
//	data, err := dataset.NewLoader(nil, nil).Load(ctx, "king.json")
//	if err != nil {
//	    return err
//	}
//	region := data.Region(nil)
//	table, err := timeseries.Flatten(region.DailyOverlays()...)
//
// Work on a single series:
//
//	cases := timeseries.FromFormattedDates("Cases", pairs)
//	days, ok := cases.DoublingInterval().LastValue()
//
// # Packages
//
//   - timeseries: series, periods, operators, trends and flattening
//   - stats: least-squares fits and smoothing helpers
//   - dataset: region files, caching and overlays
//   - cmd/epitrend: the command line tool
package epitrend
