package pipeline

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/strata-dev/strata/pkg/cache"
	"github.com/strata-dev/strata/pkg/graph"
	"github.com/strata-dev/strata/pkg/graphio"
)

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"Zero", Options{}, false},
		{"Explicit", Options{Sweeps: 4, CacheTTL: Duration(time.Hour)}, false},
		{"NegativeSweeps", Options{Sweeps: -1}, true},
		{"TooManySweeps", Options{Sweeps: MaxSweeps + 1}, true},
		{"NegativeTTL", Options{CacheTTL: Duration(-time.Second)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAndSetDefaults() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if tt.opts.Sweeps < 1 {
				t.Errorf("Sweeps = %d, want >= 1 after defaults", tt.opts.Sweeps)
			}
			if tt.opts.CacheTTL <= 0 {
				t.Errorf("CacheTTL = %v, want > 0 after defaults", tt.opts.CacheTTL)
			}
		})
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strata.toml")
	content := "sweeps = 4\ncache_ttl = \"72h\"\nrefresh = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions() error = %v", err)
	}
	if opts.Sweeps != 4 {
		t.Errorf("Sweeps = %d, want 4", opts.Sweeps)
	}
	if time.Duration(opts.CacheTTL) != 72*time.Hour {
		t.Errorf("CacheTTL = %v, want 72h", time.Duration(opts.CacheTTL))
	}
	if !opts.Refresh {
		t.Error("Refresh = false, want true")
	}
}

func TestLoadOptionsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strata.toml")
	if err := os.WriteFile(path, []byte("sweps = 4\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadOptions(path); err == nil {
		t.Error("LoadOptions() should reject unknown keys")
	}
}

func testDocument() graphio.Document {
	return graphio.Document{
		Nodes: []graphio.Node{{ID: "app"}, {ID: "lib"}, {ID: "util"}},
		Edges: []graphio.Edge{
			{From: "app", To: "lib"},
			{From: "lib", To: "util"},
			{From: "app", To: "util"},
		},
	}
}

func testRunner(c cache.Cache) *Runner {
	return NewRunner(c, NewLogger(io.Discard, log.ErrorLevel))
}

func TestExecute(t *testing.T) {
	r := testRunner(nil)
	result, err := r.Execute(context.Background(), testDocument(), Options{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Stats.NodeCount != 3 || result.Stats.EdgeCount != 3 {
		t.Errorf("Stats = %d nodes, %d edges, want 3, 3", result.Stats.NodeCount, result.Stats.EdgeCount)
	}
	if result.Layout.NumLayers() != 3 {
		t.Errorf("NumLayers() = %d, want 3", result.Layout.NumLayers())
	}
	if result.CacheInfo.LayoutHit {
		t.Error("first run should not hit the cache")
	}
	if len(result.GraphHash) != 64 {
		t.Errorf("GraphHash length = %d, want 64", len(result.GraphHash))
	}
}

func TestExecuteInvalidDocument(t *testing.T) {
	r := testRunner(nil)
	doc := graphio.Document{
		Nodes: []graphio.Node{{ID: "a"}},
		Edges: []graphio.Edge{{From: "a", To: "ghost"}},
	}
	_, err := r.Execute(context.Background(), doc, Options{})
	if !errors.Is(err, graphio.ErrUnknownNode) {
		t.Errorf("Execute() error = %v, want ErrUnknownNode", err)
	}
}

func TestExecuteCycle(t *testing.T) {
	r := testRunner(nil)
	doc := graphio.Document{
		Nodes: []graphio.Node{{ID: "a"}, {ID: "b"}},
		Edges: []graphio.Edge{{From: "a", To: "b"}, {From: "b", To: "a"}},
	}
	_, err := r.Execute(context.Background(), doc, Options{})
	if !errors.Is(err, graph.ErrCycleDetected) {
		t.Errorf("Execute() error = %v, want ErrCycleDetected", err)
	}
}

func TestExecuteCacheHit(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	r := testRunner(c)
	ctx := context.Background()

	first, err := r.Execute(ctx, testDocument(), Options{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if first.CacheInfo.LayoutHit {
		t.Error("first run should miss")
	}

	second, err := r.Execute(ctx, testDocument(), Options{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit")
	}
	if !reflect.DeepEqual(first.Layout, second.Layout) {
		t.Errorf("cached layout differs:\n%+v\n%+v", first.Layout, second.Layout)
	}

	// A different sweep count is a different cache entry.
	third, err := r.Execute(ctx, testDocument(), Options{Sweeps: 5})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if third.CacheInfo.LayoutHit {
		t.Error("changed options should miss")
	}

	// Refresh recomputes even with a fresh entry present.
	fourth, err := r.Execute(ctx, testDocument(), Options{Refresh: true})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if fourth.CacheInfo.LayoutHit {
		t.Error("refresh run should not hit")
	}
}

func TestExecuteDeterministic(t *testing.T) {
	r := testRunner(nil)
	ctx := context.Background()

	first, err := r.Execute(ctx, testDocument(), Options{Sweeps: 3})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	second, err := r.Execute(ctx, testDocument(), Options{Sweeps: 3})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if first.GraphHash != second.GraphHash {
		t.Errorf("GraphHash differs: %s vs %s", first.GraphHash, second.GraphHash)
	}
	if !reflect.DeepEqual(first.Layout, second.Layout) {
		t.Errorf("layout differs between identical runs:\n%+v\n%+v", first.Layout, second.Layout)
	}
}
