package cli

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/epitrend/dataset"
	"github.com/sartorproj/epitrend/internal/output"
)

// newLoader builds a loader with a cache sized from cache.ttl and the csv
// column layout. A zero TTL disables caching.
func newLoader() *dataset.Loader {
	var cache *dataset.Cache
	if cfg.Cache.TTL > 0 {
		cache = dataset.NewCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}
	return dataset.NewLoader(cache, logger).WithCSVOptions(cfg.CSVOptions())
}

// loadRegions reads every path concurrently, at most jobs at a time, and
// returns the regions in argument order. The first failure cancels the rest.
func loadRegions(ctx context.Context, loader *dataset.Loader, paths []string, jobs int) ([]*dataset.RegionData, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	regions := make([]*dataset.RegionData, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := loader.Load(gctx, path)
			if err != nil {
				return &output.CLIError{
					Summary:    fmt.Sprintf("cannot load region file %s", path),
					Detail:     err.Error(),
					Suggestion: "Region files must be .json or .csv with a confirmed column",
					ExitCode:   output.ExitDataError,
				}
			}
			regions[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return regions, nil
}
