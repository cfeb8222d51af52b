package stategraph

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/uhaseeb85/stategraph/internal/logging"
	"github.com/uhaseeb85/stategraph/internal/validator"
	loamAdapter "github.com/uhaseeb85/stategraph/pkg/adapters/loam"
	"github.com/uhaseeb85/stategraph/pkg/diff"
	"github.com/uhaseeb85/stategraph/pkg/domain"
	"github.com/uhaseeb85/stategraph/pkg/observability"
	"github.com/uhaseeb85/stategraph/pkg/partition"
	"github.com/uhaseeb85/stategraph/pkg/pathfind"
	"github.com/uhaseeb85/stategraph/pkg/ports"
)

// Analyzer is the high-level entry point for the stategraph library.
// It wraps the analysis packages and provides a simplified API for
// consumers: load a graph once, then run path, partition, comparison
// and validation queries against it.
type Analyzer struct {
	loader   ports.GraphLoader
	logger   *slog.Logger
	metrics  *observability.Metrics
	maxPaths int
	maxDepth int
	Name     string
}

// Option defines a functional option for configuring the Analyzer.
type Option func(*Analyzer)

// WithLoader injects a custom GraphLoader, bypassing the default Loam initialization.
func WithLoader(l ports.GraphLoader) Option {
	return func(a *Analyzer) {
		a.loader = l
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithMetrics attaches Prometheus instrumentation. Without it, metric
// calls are no-ops.
func WithMetrics(m *observability.Metrics) Option {
	return func(a *Analyzer) {
		a.metrics = m
	}
}

// WithPathLimits overrides the path-finding result and depth caps.
// Zero values keep the defaults.
func WithPathLimits(maxPaths, maxDepth int) Option {
	return func(a *Analyzer) {
		a.maxPaths = maxPaths
		a.maxDepth = maxDepth
	}
}

// New initializes a new Analyzer.
// By default, it reads states from a Loam repository at the given path.
// If WithLoader is provided, repoPath can be empty and Loam is skipped.
func New(repoPath string, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{}

	for _, opt := range opts {
		opt(a)
	}

	if a.loader == nil {
		if repoPath == "" {
			return nil, fmt.Errorf("repoPath is required when no custom loader is provided")
		}
		loader, err := loamAdapter.Open(repoPath)
		if err != nil {
			return nil, err
		}
		a.loader = loader
		a.Name = filepath.Base(repoPath)
	} else if repoPath != "" {
		a.Name = filepath.Base(repoPath)
	}

	if a.logger == nil {
		a.logger = logging.NewNop()
	}

	return a, nil
}

// Graph loads the current states and builds an indexed graph.
func (a *Analyzer) Graph(ctx context.Context) (*domain.Graph, error) {
	states, err := a.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}
	g := domain.NewGraph(states)
	a.metrics.SetGraphSize(g.Len())
	a.logger.Debug("graph loaded", "states", g.Len())
	return g, nil
}

// FindPaths runs a traversal over the current graph. Limits configured
// on the analyzer apply unless the options set their own.
func (a *Analyzer) FindPaths(ctx context.Context, opts pathfind.Options) (*pathfind.Result, error) {
	g, err := a.Graph(ctx)
	if err != nil {
		return nil, err
	}

	if opts.MaxPaths == 0 {
		opts.MaxPaths = a.maxPaths
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = a.maxDepth
	}

	start := time.Now()
	result, err := pathfind.Find(g, opts)
	a.metrics.ObserveOperation("paths", start, err)
	if err != nil {
		return nil, err
	}

	a.metrics.ObserveTraversal(len(result.Paths()), len(result.Cycles()), result.Truncated)
	a.logger.Info("path search complete",
		"start", opts.Start,
		"paths", len(result.Paths()),
		"cycles", len(result.Cycles()),
		"truncated", result.Truncated,
	)
	return result, nil
}

// Split partitions the current graph into targetCount groups.
func (a *Analyzer) Split(ctx context.Context, targetCount int) ([]partition.Partition, error) {
	g, err := a.Graph(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	parts, err := partition.Split(g, targetCount)
	a.metrics.ObserveOperation("split", start, err)
	if err != nil {
		return nil, err
	}

	a.metrics.ObservePartitions(len(parts))
	a.logger.Info("graph split", "requested", targetCount, "partitions", len(parts))
	return parts, nil
}

// Compare diffs the current graph against a snapshot.
func (a *Analyzer) Compare(ctx context.Context, snap *domain.Snapshot) (*diff.Report, error) {
	g, err := a.Graph(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	report := diff.Compare(snap.States, g.States())
	a.metrics.ObserveOperation("diff", start, nil)

	s := report.Summary
	changes := s.AddedStates + s.RemovedStates + s.ModifiedStates +
		s.AddedRules + s.RemovedRules + s.ModifiedRules
	a.metrics.ObserveDiff(changes)
	a.logger.Info("graphs compared", "snapshot", snap.Name, "changes", changes)
	return report, nil
}

// Validate runs structural consistency checks over the current graph.
func (a *Analyzer) Validate(ctx context.Context) (*validator.Report, error) {
	states, err := a.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}

	start := time.Now()
	report := validator.ValidateStates(states)
	a.metrics.ObserveOperation("validate", start, nil)
	a.logger.Info("graph validated", "issues", len(report.Issues))
	return report, nil
}

// Snapshot captures the current graph under the given name.
func (a *Analyzer) Snapshot(ctx context.Context, name string) (*domain.Snapshot, error) {
	states, err := a.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}
	return &domain.Snapshot{
		Name:    name,
		SavedAt: time.Now().UTC(),
		States:  states,
	}, nil
}

// Watch exposes change notification when the underlying loader
// supports it. Returns false when it does not.
func (a *Analyzer) Watch(ctx context.Context) (<-chan struct{}, bool, error) {
	w, ok := a.loader.(ports.Watchable)
	if !ok {
		return nil, false, nil
	}
	ch, err := w.Watch(ctx)
	if err != nil {
		return nil, true, err
	}
	return ch, true, nil
}
