// Package spath computes single-source shortest paths over a core.Graph
// under a pluggable distance strategy.
//
// The strategy is a WeightFunc: nil means every edge costs one hop and the
// search runs as breadth-first traversal; a non-nil WeightFunc prices each
// edge individually and the search runs as Dijkstra with a lazy
// decrease-key min-heap.
//
// Determinism: when several shortest paths of equal cost exist, the one
// through the lexicographically smallest vertex IDs wins. Vertices are
// finalized in (distance, ID) order and a recorded parent is only replaced
// by a strictly shorter route, so the first discovered shortest path is
// kept. This makes every Result reproducible run-to-run.
//
// Complexity:
//
//   - Hop-count mode:  O(V + E) time, O(V) space.
//   - Weighted mode:   O((V + E) log V) time, O(V + E) space.
//
// Errors (sentinel):
//
//	ErrNilGraph       - a nil *core.Graph was passed.
//	ErrSourceNotFound - the source vertex does not exist in the graph.
//	ErrNegativeCost   - the WeightFunc produced a negative edge cost.
//	ErrUnreachable    - PathTo was asked for a vertex the search never reached.
//
// A WeightFunc error is propagated unwrapped, so callers keep errors.Is
// visibility into their own sentinels.
package spath

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/salience/core"
)

// Sentinel errors returned by the spath package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("spath: graph is nil")

	// ErrSourceNotFound indicates that the source vertex does not exist.
	ErrSourceNotFound = errors.New("spath: source vertex not found")

	// ErrNegativeCost indicates that the WeightFunc produced a negative cost,
	// which Dijkstra cannot handle.
	ErrNegativeCost = errors.New("spath: negative edge cost")

	// ErrUnreachable indicates that the requested vertex was not reached.
	ErrUnreachable = errors.New("spath: vertex not reached from source")
)

// WeightFunc prices a single edge for the weighted search mode.
// The edge is passed oriented outward from the vertex being relaxed
// (e.From is the current vertex). Costs must be non-negative.
type WeightFunc func(e *core.Edge) (float64, error)

// Options configures a ShortestPaths run.
type Options struct {
	// Weight selects the distance strategy: nil = hop count (BFS),
	// non-nil = Dijkstra over the returned costs.
	Weight WeightFunc
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithWeightFunc switches the search to weighted mode using fn.
// A nil fn leaves hop-count mode in place.
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// Result holds the outcome of a single-source shortest-path run:
//   - Source: the vertex the search started from.
//   - Dist:   distance from Source per reached vertex (hop count or summed cost).
//   - Parent: predecessor per reached vertex on its canonical shortest path;
//     the source itself has no entry.
//   - Order:  vertices in finalization sequence, starting with Source.
//
// A vertex absent from Dist was unreachable from Source.
type Result struct {
	Source string
	Dist   map[string]float64
	Parent map[string]string
	Order  []string
}

// Reached reports whether the search reached vertex id.
// Complexity: O(1)
func (r *Result) Reached(id string) bool {
	_, ok := r.Dist[id]

	return ok
}

// PathTo reconstructs the canonical shortest path Source → dest by walking
// the Parent chain. Returns ErrUnreachable if dest was never reached.
// Complexity: O(len(path))
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, dest)
	}

	// Build the path backwards, then reverse in place.
	path := []string{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
