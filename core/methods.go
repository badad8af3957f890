// methods.go implements mutation and query primitives on Graph:
// vertex and edge insertion, existence checks, and deterministic
// (sorted) enumeration of vertices, edges, and neighborhoods.
//
// Determinism contract: Vertices, Edges, Neighbors, and NeighborIDs
// always return their results in a fixed sorted order, so that every
// algorithm built on top of core is reproducible run-to-run.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex with the given ID.
// Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id}
	}

	return nil
}

// HasVertex reports whether the vertex id exists in g.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts an edge from→to, creating missing endpoints on the fly,
// and returns the generated edge ID.
//
// Validation:
//   - from or to empty → ErrEmptyVertexID
//   - from == to while loops are disabled → ErrLoopNotAllowed
//   - an edge between from and to already exists while multi-edges are
//     disabled → ErrMultiEdgeNotAllowed
//
// For undirected graphs the edge is registered in both adjacency
// directions under the same edge ID.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && g.connectedLocked(from, to) {
		return "", fmt.Errorf("%w: %s–%s", ErrMultiEdgeNotAllowed, from, to)
	}

	// Auto-create endpoints.
	if _, ok := g.vertices[from]; !ok {
		g.vertices[from] = &Vertex{ID: from}
	}
	if _, ok := g.vertices[to]; !ok {
		g.vertices[to] = &Vertex{ID: to}
	}

	e := &Edge{
		ID:       fmt.Sprintf("e%d", g.nextEdgeID),
		From:     from,
		To:       to,
		Directed: g.directed,
	}
	g.nextEdgeID++
	for _, opt := range opts {
		opt(e)
	}

	g.edges[e.ID] = e
	g.linkLocked(from, to, e.ID)
	if !g.directed && from != to {
		g.linkLocked(to, from, e.ID)
	}

	return e.ID, nil
}

// HasEdge reports whether at least one edge connects from→to.
// For undirected graphs the orientation of the arguments is irrelevant.
// Complexity: O(1)
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.connectedLocked(from, to)
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// The returned Edge is a copy; mutating it does not affect g.
// Complexity: O(1) plus attribute copy.
func (g *Graph) GetEdge(id string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}

	return copyEdge(e), nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns copies of all edges sorted by edge ID.
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	es := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		es = append(es, copyEdge(e))
	}
	sort.Slice(es, func(i, j int) bool { return es[i].ID < es[j].ID })

	return es
}

// Neighbors returns copies of the edges incident to id, each oriented
// outward: the copy's From is always id and To is the other endpoint
// (for a self-loop both are id). Directed edges appear only when they
// originate at id. Results are sorted by (To, ID).
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(deg log deg)
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	var out []*Edge
	for to, set := range g.adjacency[id] {
		for eid := range set {
			e := g.edges[eid]
			c := copyEdge(e)
			// Orient the copy outward from id.
			c.From, c.To = id, to
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].ID < out[j].ID
	})

	return out, nil
}

// NeighborIDs returns the distinct vertex IDs adjacent to id, sorted
// ascending. Directed edges contribute only their targets.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(deg log deg)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	ids := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// VertexCount returns the number of vertices in g.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges in g.
// Parallel edges count individually; undirected edges count once.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// connectedLocked reports whether any edge links from→to (either
// direction for undirected graphs). Caller must hold g.mu.
func (g *Graph) connectedLocked(from, to string) bool {
	if set, ok := g.adjacency[from]; ok {
		if ids, ok := set[to]; ok && len(ids) > 0 {
			return true
		}
	}

	return false
}

// linkLocked records edge eid in the from→to adjacency slot.
// Caller must hold g.mu.
func (g *Graph) linkLocked(from, to, eid string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}
}

// copyEdge returns a defensive copy of e, including its attribute map.
func copyEdge(e *Edge) *Edge {
	c := &Edge{ID: e.ID, From: e.From, To: e.To, Directed: e.Directed}
	if e.Attr != nil {
		c.Attr = make(map[string]float64, len(e.Attr))
		for k, v := range e.Attr {
			c.Attr[k] = v
		}
	}

	return c
}
