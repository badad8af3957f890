// Package core_test verifies graph construction, shape flags,
// validation errors, and the deterministic enumeration contract.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salience/core"
)

func TestAddVertex_Basic(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()

	id, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.HasEdge("A", "B"))
	// Undirected: both orientations connect.
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "A")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A")
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestAddEdge_LoopsAndMultiWhenEnabled(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())

	_, err := g.AddEdge("A", "A")
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A")
	require.NoError(t, err)

	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())
}

func TestAddEdge_Attributes(t *testing.T) {
	g := core.NewGraph()

	id, err := g.AddEdge("A", "B", core.WithEdgeAttr("weight", 2.5))
	require.NoError(t, err)

	e, err := g.GetEdge(id)
	require.NoError(t, err)

	w, ok := e.AttrValue("weight")
	require.True(t, ok)
	assert.Equal(t, 2.5, w)

	_, ok = e.AttrValue("capacity")
	assert.False(t, ok)

	// GetEdge returns a copy: mutating it must not leak into g.
	e.Attr["weight"] = -1
	e2, err := g.GetEdge(id)
	require.NoError(t, err)
	w2, _ := e2.AttrValue("weight")
	assert.Equal(t, 2.5, w2)
}

func TestGetEdge_NotFound(t *testing.T) {
	g := core.NewGraph()
	_, err := g.GetEdge("e999")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestNeighbors_OrientedAndSorted(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("B", "A") // inserted "backwards" on purpose
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C")
	require.NoError(t, err)

	es, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, es, 2)

	// Every returned copy is oriented outward from "A".
	assert.Equal(t, "A", es[0].From)
	assert.Equal(t, "B", es[0].To)
	assert.Equal(t, "A", es[1].From)
	assert.Equal(t, "C", es[1].To)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, ids)
}

func TestNeighbors_VertexNotFound(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("ghost")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("ghost")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDirectedGraph_OneWayAdjacency(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestEdges_SortedByID(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C")
	require.NoError(t, err)

	es := g.Edges()
	require.Len(t, es, 2)
	assert.Less(t, es[0].ID, es[1].ID)
}
