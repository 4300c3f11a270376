// Package search defines the result contract and tunable options
// shared by the five grid pathfinding algorithms.
package search

import (
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Result is the sole output contract of every search call. It is
// constructed entirely within one invocation and returned by value;
// it shares no mutable state with the grid or with other results.
type Result struct {
	// Found reports whether the goal was reached.
	Found bool

	// Path is the start→goal point sequence, inclusive; empty if not found.
	Path []grid.Point

	// VisitedOrder lists points in the exact order they were expanded
	// (popped from the frontier and accepted as current). Replay
	// animation indexes into this slice.
	VisitedOrder []grid.Point

	// NodesExpanded equals len(VisitedOrder).
	NodesExpanded int

	// PathLength is the number of steps in Path: max(0, len(Path)-1).
	PathLength int

	// TotalCost is the goal's accumulated g for UCS and A* (exact
	// minimum), and a post-hoc sum of per-step costs over Path for
	// BFS, DFS, and Greedy (informational only).
	TotalCost int

	// Duration is the wall-clock time of the call, measured against
	// the injected clock. Zero for degenerate-grid rejections.
	Duration time.Duration

	// FrontierPeak is the maximum simultaneous frontier size observed,
	// tracked as a running maximum and never reset mid-call.
	FrontierPeak int

	// VisitedPeak equals NodesExpanded at completion; the visited set
	// only grows.
	VisitedPeak int

	// FrontierSnapshots holds one frontier-identifier snapshot per
	// expansion step, aligned index-for-index with VisitedOrder.
	// Nil unless WithFrontierSnapshots was supplied: capture is O(n)
	// per step and is only consumed by animation.
	FrontierSnapshots [][]string
}

// Options holds parameters and callbacks customizing a search call.
type Options struct {
	// Clock is the injected time source used to measure Duration.
	// Defaults to time.Now.
	Clock func() time.Time

	// CaptureFrontier enables per-step frontier snapshots.
	CaptureFrontier bool

	// OnExpand is called when a node is popped from the frontier and
	// accepted as current, in expansion order. Purely observational:
	// the engine reports abnormal conditions through Result.Found,
	// never through errors, so the hook cannot abort.
	OnExpand func(p grid.Point)
}

// Option configures search behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
// time.Now clock, no frontier snapshots, no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Clock:           time.Now,
		CaptureFrontier: false,
		OnExpand:        func(grid.Point) {},
	}
}

// WithClock injects a custom time source, e.g. a fake clock in tests.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	}
}

// WithFrontierSnapshots enables FrontierSnapshots capture.
func WithFrontierSnapshots() Option {
	return func(o *Options) {
		o.CaptureFrontier = true
	}
}

// WithOnExpand registers a callback fired for each expanded node.
func WithOnExpand(fn func(p grid.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// buildOptions applies functional options over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
