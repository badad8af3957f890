// salience.go implements the two public entry points: the weighted and
// unweighted salience matrix of a simple undirected graph, defined as the
// average of all N shortest-path trees.
package salience

import (
	"fmt"

	"github.com/katalvlaran/salience/core"
	"github.com/katalvlaran/salience/matrix"
	"github.com/katalvlaran/salience/spath"
)

// Salience returns the weighted salience matrix of g.
//
// Entry (i,j) is the fraction of reference vertices whose shortest-path
// tree uses the edge between the i-th and j-th vertex of g.Vertices()
// (ascending ID order). Distance between adjacent vertices is the
// effective proximity 1/w, where w is the edge attribute named by
// WithWeightKey (default "weight"): heavier edges are shorter.
//
// Validation (in order, all before any tree is built):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must be undirected and simple (ErrDirectedGraph, ErrMultigraph).
//  3. Every edge must carry the weight attribute (ErrMissingWeight)
//     with a strictly positive value (ErrInvalidWeight).
//
// The result is symmetric, every entry lies in [0,1], and entries of
// vertex pairs that are not edges of g are zero. g itself is never
// mutated. Complexity: O(V (V+E) log V).
func Salience(g *core.Graph, opts ...Option) (*matrix.Dense, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateShape(g); err != nil {
		return nil, err
	}

	proximity, err := proximityWeights(g, o.WeightKey)
	if err != nil {
		return nil, err
	}
	weight := func(e *core.Edge) (float64, error) {
		p, ok := proximity[e.ID]
		if !ok {
			return 0, fmt.Errorf("%w: %s–%s (key %q)", ErrMissingWeight, e.From, e.To, o.WeightKey)
		}

		return p, nil
	}

	return superpose(g, weight)
}

// SalienceUnweighted returns the hop-count salience matrix of g: the same
// average of shortest-path trees, with every edge one hop long. Matrix
// indexing, validation and result guarantees match Salience, minus the
// weight-attribute checks.
// Complexity: O(V (V+E)).
func SalienceUnweighted(g *core.Graph) (*matrix.Dense, error) {
	if err := validateShape(g); err != nil {
		return nil, err
	}

	return superpose(g, nil)
}

// validateShape rejects graph shapes salience is not defined on.
// Self-loops are tolerated: a loop can never lie on a shortest path, so
// it cannot reach the output.
func validateShape(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Directed() {
		return ErrDirectedGraph
	}
	if g.Multigraph() {
		return ErrMultigraph
	}

	return nil
}

// proximityWeights precomputes the effective proximity 1/w for every edge,
// keyed by edge ID. It validates all weights up front so that a bad edge
// fails the whole call before the first shortest-path run.
// Complexity: O(E log E) (dominated by the sorted edge enumeration).
func proximityWeights(g *core.Graph, key string) (map[string]float64, error) {
	proximity := make(map[string]float64, g.EdgeCount())
	for _, e := range g.Edges() {
		w, ok := e.AttrValue(key)
		if !ok {
			return nil, fmt.Errorf("%w: %s–%s (key %q)", ErrMissingWeight, e.From, e.To, key)
		}
		if w <= 0 {
			return nil, fmt.Errorf("%w: %s–%s weight=%g", ErrInvalidWeight, e.From, e.To, w)
		}
		proximity[e.ID] = 1 / w
	}

	return proximity, nil
}

// superpose accumulates one shortest-path tree per reference vertex and
// normalizes by the vertex count N. The enumeration order of reference
// vertices does not affect the sum. N ≤ 1 short-circuits to the zero
// matrix: there are no paths, and dividing by zero is explicitly guarded.
func superpose(g *core.Graph, weight spath.WeightFunc) (*matrix.Dense, error) {
	ix := newVertexIndex(g)
	n := ix.len()

	acc, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	if n <= 1 {
		return acc, nil
	}

	for _, ref := range ix.ids {
		t, err := shortestPathTree(g, ix, ref, weight)
		if err != nil {
			return nil, err
		}
		if err = acc.Add(t); err != nil {
			return nil, err
		}
	}
	acc.Scale(1 / float64(n))

	return acc, nil
}
