// index.go maintains the disposable bijection between vertex IDs and the
// dense matrix indices [0, N). The mapping lives for exactly one salience
// computation and is never exposed; externally, row and column i of every
// returned matrix correspond to the i-th entry of g.Vertices(), i.e.
// vertex IDs in ascending order.
package salience

import "github.com/katalvlaran/salience/core"

// vertexIndex maps vertex IDs to contiguous matrix indices and back.
type vertexIndex struct {
	ids []string       // index → vertex ID, ascending
	pos map[string]int // vertex ID → index
}

// newVertexIndex builds the bijection from the sorted vertex enumeration.
// Complexity: O(V log V) (dominated by core.Vertices sorting).
func newVertexIndex(g *core.Graph) *vertexIndex {
	ids := g.Vertices()
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	return &vertexIndex{ids: ids, pos: pos}
}

// len returns the number of indexed vertices.
func (ix *vertexIndex) len() int { return len(ix.ids) }

// of returns the dense index of the given vertex ID.
// The ID must come from the same graph the index was built from.
func (ix *vertexIndex) of(id string) int { return ix.pos[id] }
