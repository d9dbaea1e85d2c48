package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/strata-dev/strata/pkg/cache"
	"github.com/strata-dev/strata/pkg/graphio"
	"github.com/strata-dev/strata/pkg/layout"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store run results. Multiple goroutines can safely use the same
// Runner with different documents.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete convert → layer → order pipeline.
// Each run gets a unique id carried in its log lines.
func (r *Runner) Execute(ctx context.Context, doc graphio.Document, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}
	logger = logger.With("run", uuid.NewString()[:8])

	g, ids, err := graphio.ToGraph(doc)
	if err != nil {
		return nil, fmt.Errorf("convert document: %w", err)
	}

	docBytes, err := graphio.MarshalDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("hash document: %w", err)
	}
	result := &Result{
		Graph:     g,
		IDs:       ids,
		GraphHash: cache.Hash(docBytes),
	}
	result.Stats.NodeCount = g.NumVerts()
	result.Stats.EdgeCount = g.NumEdges()

	layoutStart := time.Now()
	l, hit, err := r.computeLayout(ctx, result, opts, logger)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = hit

	logger.Info("computed layout",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"layers", l.NumLayers(),
		"crossings", l.Crossings,
		"cached", hit,
		"duration", result.Stats.LayoutTime.Round(time.Millisecond))
	return result, nil
}

// computeLayout returns the layout for the run, from cache when a
// fresh entry exists.
func (r *Runner) computeLayout(ctx context.Context, result *Result, opts Options, logger *log.Logger) (*graphio.Layout, bool, error) {
	key := cache.LayoutKey(result.GraphHash, opts.Sweeps)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var l graphio.Layout
			if err := json.Unmarshal(data, &l); err == nil {
				return &l, true, nil
			}
			// Corrupt entry; recompute and overwrite below.
			logger.Warn("discarding unreadable cache entry", "key", key)
		}
	}

	lm, err := layout.AssignLayers(result.Graph)
	if err != nil {
		return nil, false, fmt.Errorf("assign layers: %w", err)
	}
	pg := layout.BuildProperGraph(result.Graph, lm)
	layout.MinCrossings(pg, layout.Options{Sweeps: opts.Sweeps, Logger: logger})
	l := graphio.BuildLayout(pg, result.IDs)

	if data, err := json.Marshal(l); err == nil {
		_ = r.Cache.Set(ctx, key, data, time.Duration(opts.CacheTTL))
	}
	return l, false, nil
}
