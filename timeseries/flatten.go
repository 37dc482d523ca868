package timeseries

import (
	"encoding/json"
	"math"
	"slices"
)

// Row holds the values of several series for one timestamp. Series without a
// value for that day are absent from Values.
type Row struct {
	Timestamp int64
	Values    map[string]float64
}

// Value returns the value of the labeled series in this row.
func (r Row) Value(label string) (float64, bool) {
	v, ok := r.Values[label]
	return v, ok
}

func (r Row) fields() map[string]any {
	fields := make(map[string]any, len(r.Values)+1)
	for label, v := range r.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			fields[label] = nil
			continue
		}
		fields[label] = v
	}
	fields["timestamp"] = r.Timestamp
	return fields
}

// MarshalJSON encodes the row as {"timestamp": ..., "<label>": value}.
// Non-finite values are encoded as null.
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.fields())
}

// MarshalYAML encodes the row like MarshalJSON.
func (r Row) MarshalYAML() (interface{}, error) {
	return r.fields(), nil
}

// Table is the result of Flatten.
type Table struct {
	Rows   []Row    // one row per distinct timestamp, ascending
	Labels []string // series labels in input order

	// TimestampFormatter renders a row timestamp using the shared period.
	TimestampFormatter func(int64) string
}

// Flatten merges series sharing one period into a table keyed by timestamp.
// Nil series are skipped. It fails when the series use different periods or
// when no series is given.
func Flatten(series ...*Series) (*Table, error) {
	var period *Period
	rows := make(map[int64]map[string]float64)
	var labels []string

	for _, s := range series {
		if s == nil {
			continue
		}

		if period == nil {
			period = s.period
		} else if s.period != period {
			return nil, ErrMixedPeriods.New(s.label, s.period, period)
		}

		if !slices.Contains(labels, s.label) {
			labels = append(labels, s.label)
		}

		for _, p := range s.pointsView() {
			key := p.Timestamp()
			values, ok := rows[key]
			if !ok {
				values = make(map[string]float64)
				rows[key] = values
			}
			values[s.label] = p.Value
		}
	}

	if period == nil {
		return nil, ErrNoPeriod.New(len(series))
	}

	table := &Table{
		Rows:               make([]Row, 0, len(rows)),
		Labels:             labels,
		TimestampFormatter: period.FormatTimestamp,
	}
	for timestamp, values := range rows {
		table.Rows = append(table.Rows, Row{Timestamp: timestamp, Values: values})
	}
	slices.SortFunc(table.Rows, func(a, b Row) int {
		switch {
		case a.Timestamp < b.Timestamp:
			return -1
		case a.Timestamp > b.Timestamp:
			return 1
		}
		return 0
	})

	return table, nil
}
