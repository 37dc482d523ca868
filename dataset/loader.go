package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Loader reads region files, consulting an optional cache.
type Loader struct {
	cache  *Cache
	csv    *CSVOptions
	logger *slog.Logger
}

// NewLoader creates a loader. A nil cache disables caching and a nil logger
// means slog.Default().
func NewLoader(cache *Cache, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		cache:  cache,
		csv:    DefaultCSVOptions(),
		logger: logger.With("component", "dataset"),
	}
}

// WithCSVOptions sets the options used for CSV files.
func (l *Loader) WithCSVOptions(opts *CSVOptions) *Loader {
	l.csv = opts
	return l
}

// Load reads the region stored at path. The format is chosen by extension:
// ".json" or ".csv". The region name defaults to the file name without
// extension.
func (l *Loader) Load(ctx context.Context, path string) (*RegionData, error) {
	if l.cache != nil {
		if data, ok := l.cache.Get(path); ok {
			l.logger.Debug("region cache hit", "path", path, "region", data.Name)
			return data, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" && ext != ".csv" {
		return nil, ErrUnsupportedFormat.New(ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening region file: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var data *RegionData
	switch ext {
	case ".json":
		data, err = ParseJSON(name, f)
	case ".csv":
		data, err = ParseCSV(name, f, l.csv)
	}
	if err != nil {
		return nil, err
	}

	l.logger.Debug("region loaded",
		"path", path,
		"region", data.Name,
		"confirmed_days", len(data.Confirmed),
		"death_days", len(data.Deaths),
		"recovered_days", len(data.Recovered),
	)

	if l.cache != nil {
		l.cache.Set(path, data)
	}
	return data, nil
}
