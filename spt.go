// spt.go builds the shortest-path tree (SPT) matrix T(r) for one fixed
// reference vertex r: a symmetric N×N 0/1 matrix with T[i][j] = 1 iff the
// edge (i,j) lies on at least one canonical shortest path from r.
package salience

import (
	"github.com/katalvlaran/salience/core"
	"github.com/katalvlaran/salience/matrix"
	"github.com/katalvlaran/salience/spath"
)

// shortestPathTree runs a single-source shortest-path search from ref and
// marks every parent link of the resulting tree in a fresh N×N matrix.
//
// Marking (Parent[v], v) for each reached vertex v covers exactly the
// union of consecutive pairs over all canonical paths: each path is a
// walk down the parent chain. Vertices unreachable from ref have no
// parent entry and contribute nothing, and ref's trivial zero-length path
// to itself contributes nothing either. A connected graph therefore
// yields at most N-1 nonzero unordered pairs - a tree.
//
// weight selects the distance strategy: nil = hop count, non-nil =
// proximity distances (see Salience).
//
// Complexity: O((V+E) log V) weighted, O(V+E) unweighted, plus O(V²) for
// the matrix allocation.
func shortestPathTree(g *core.Graph, ix *vertexIndex, ref string, weight spath.WeightFunc) (*matrix.Dense, error) {
	t, err := matrix.NewDense(ix.len(), ix.len())
	if err != nil {
		return nil, err
	}

	var opts []spath.Option
	if weight != nil {
		opts = append(opts, spath.WithWeightFunc(weight))
	}
	res, err := spath.ShortestPaths(g, ref, opts...)
	if err != nil {
		return nil, err
	}

	for v, u := range res.Parent {
		i, j := ix.of(u), ix.of(v)
		if err = t.Set(i, j, 1); err != nil {
			return nil, err
		}
		if err = t.Set(j, i, 1); err != nil {
			return nil, err
		}
	}

	return t, nil
}
