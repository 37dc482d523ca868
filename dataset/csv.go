package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/sartorproj/epitrend/timeseries"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn      string // Column name for dates (default: "date")
	ConfirmedColumn string // Column name for confirmed counts (default: "confirmed")
	DeathsColumn    string // Column name for death counts (default: "deaths")
	RecoveredColumn string // Column name for recovered counts (optional, default: "recovered")
	DateFormat      string // Date format (default: "01/02/2006")
	Delimiter       rune   // Field delimiter (default: ',')
	SkipRows        int    // Number of rows to skip before the header
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateColumn:      "date",
		ConfirmedColumn: "confirmed",
		DeathsColumn:    "deaths",
		RecoveredColumn: "recovered",
		DateFormat:      timeseries.DateKeyLayout,
		Delimiter:       ',',
	}
}

// fallback date layouts tried after CSVOptions.DateFormat
var dateFormats = []string{
	timeseries.DateKeyLayout,
	"2006-01-02",
	"2006/01/02",
	"1/2/06",
}

// ParseCSV reads one region from CSV with a header row. Rows with an
// unparseable date are skipped, as are empty, "NA", "NaN" and "null" cells.
func ParseCSV(name string, r io.Reader, opts *CSVOptions) (*RegionData, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("skipping rows of %q: %w", name, err)
		}
	}

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %q: %w", name, err)
	}

	dateIdx, confirmedIdx, deathsIdx, recoveredIdx := -1, -1, -1, -1
	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		switch {
		case strings.EqualFold(h, opts.DateColumn):
			dateIdx = i
		case strings.EqualFold(h, opts.ConfirmedColumn):
			confirmedIdx = i
		case strings.EqualFold(h, opts.DeathsColumn):
			deathsIdx = i
		case opts.RecoveredColumn != "" && strings.EqualFold(h, opts.RecoveredColumn):
			recoveredIdx = i
		}
	}
	if dateIdx == -1 {
		return nil, ErrMissingColumn.New(opts.DateColumn)
	}
	if confirmedIdx == -1 {
		return nil, ErrMissingColumn.New(opts.ConfirmedColumn)
	}

	data := &RegionData{Name: name}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", name, err)
		}

		day, ok := parseDate(cell(record, dateIdx), opts.DateFormat)
		if !ok {
			continue
		}
		ts := day.Unix()

		if v, ok := parseCount(cell(record, confirmedIdx)); ok {
			data.Confirmed = append(data.Confirmed, timeseries.RawPair{Timestamp: ts, Value: v})
		}
		if v, ok := parseCount(cell(record, deathsIdx)); ok {
			data.Deaths = append(data.Deaths, timeseries.RawPair{Timestamp: ts, Value: v})
		}
		if v, ok := parseCount(cell(record, recoveredIdx)); ok {
			data.Recovered = append(data.Recovered, timeseries.RawPair{Timestamp: ts, Value: v})
		}
	}

	if len(data.Confirmed) == 0 {
		return nil, ErrNoData.New(name)
	}
	return data, nil
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(strings.Trim(record[idx], "\""))
}

func parseDate(s, layout string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, f := range append([]string{layout}, dateFormats...) {
		if t, err := time.ParseInLocation(f, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseCount(s string) (float64, bool) {
	switch s {
	case "", "NA", "NaN", "null":
		return 0, false
	}
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
