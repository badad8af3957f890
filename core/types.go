// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// All core APIs share one sync.RWMutex internally, so you can safely
// build and read your graphs across goroutines.
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add parallel edge when multi-edges disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
// ID uniquely identifies this Vertex within its Graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From/To, a numeric attribute map,
// and a Directed flag mirroring the owning Graph's directedness.
// For undirected edges From/To record insertion order only; the edge is
// traversable both ways.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID (first endpoint for undirected edges).
	From string

	// To is the destination vertex ID (second endpoint for undirected edges).
	To string

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool

	// Attr stores named numeric edge attributes, e.g. "weight".
	// Nil until the first attribute is set.
	Attr map[string]float64
}

// AttrValue returns the value of the named attribute and whether it is set.
// Complexity: O(1)
func (e *Edge) AttrValue(key string) (float64, bool) {
	if e.Attr == nil {
		return 0, false
	}
	v, ok := e.Attr[key]

	return v, ok
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeAttr sets the named numeric attribute on the edge.
// An empty key is ignored.
func WithEdgeAttr(key string, value float64) EdgeOption {
	return func(e *Edge) {
		if key == "" {
			return
		}
		if e.Attr == nil {
			e.Attr = make(map[string]float64, 1)
		}
		e.Attr[key] = value
	}
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected graphs, parallel edges (multi-edges)
// and self-loops, all disabled by default. A single mu guards vertices,
// edges, and adjacency; nextEdgeID generates unique Edge.IDs.
type Graph struct {
	mu sync.RWMutex // guards vertices, edges, adjacency

	// Configuration flags
	directed   bool // edge directedness
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[from][to] = set of edge IDs connecting from→to
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges of g are directed.
// Complexity: O(1)
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether g permits self-loops.
// Complexity: O(1)
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether g permits parallel edges.
// Complexity: O(1)
func (g *Graph) Multigraph() bool { return g.allowMulti }
