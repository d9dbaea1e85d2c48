// Package pipeline runs the complete layout computation with caching.
//
// The pipeline turns a [graphio.Document] into a [graphio.Layout] in
// four stages:
//
//  1. Convert: validate the document and build the dense graph
//  2. Layer: assign every edge-bearing node a layer
//  3. Properize: insert virtual vertices so edges span one layer
//  4. Order: run crossing-minimization sweeps and export the result
//
// Stages 2-4 are pure functions of the document and options, so their
// combined result is cached under a content hash. Rerunning the
// pipeline over an unchanged document is a single cache lookup.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{Sweeps: 4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Layout.Crossings)
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/strata-dev/strata/pkg/cache"
	"github.com/strata-dev/strata/pkg/graph"
	"github.com/strata-dev/strata/pkg/graphio"
	"github.com/strata-dev/strata/pkg/layout"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSweeps mirrors layout.DefaultSweeps: one down-then-up
	// iteration. More sweeps trade time for fewer crossings with
	// quickly diminishing returns.
	DefaultSweeps = layout.DefaultSweeps

	// DefaultCacheTTL is the expiry applied to cached layouts when
	// Options.CacheTTL is zero.
	DefaultCacheTTL = cache.TTLLayout

	// MaxSweeps bounds the sweep count accepted from configuration, to
	// keep a bad config file from turning one run into thousands of
	// passes.
	MaxSweeps = 1000
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// The struct supports JSON for API requests and TOML for config files.
type Options struct {
	// Sweeps is the number of crossing-minimization iterations.
	// Zero means DefaultSweeps.
	Sweeps int `json:"sweeps,omitempty" toml:"sweeps"`

	// CacheTTL is the expiry for cached layout results.
	// Zero means DefaultCacheTTL.
	CacheTTL Duration `json:"cache_ttl,omitempty" toml:"cache_ttl"`

	// Refresh skips the cache lookup and recomputes, still storing the
	// fresh result.
	Refresh bool `json:"refresh,omitempty" toml:"refresh"`

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks fields and applies defaults.
// Idempotent - calling it multiple times has the same effect as once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Sweeps < 0 {
		return fmt.Errorf("sweeps must be non-negative, got %d", o.Sweeps)
	}
	if o.Sweeps > MaxSweeps {
		return fmt.Errorf("sweeps must be at most %d, got %d", MaxSweeps, o.Sweeps)
	}
	if o.Sweeps == 0 {
		o.Sweeps = DefaultSweeps
	}
	if o.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be non-negative, got %s", time.Duration(o.CacheTTL))
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = Duration(DefaultCacheTTL)
	}
	o.validated = true
	return nil
}

// =============================================================================
// Result - Pipeline Outputs
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the dense form of the input document.
	Graph *graph.Graph

	// IDs maps each dense vertex back to its document node ID.
	IDs []string

	// GraphHash is the content hash of the document.
	GraphHash string

	// Layout is the computed (or cached) layout.
	Layout *graphio.Layout

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the layout came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LayoutTime time.Duration
}

// CacheInfo tracks cache behavior of a run.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
}
