// Package salience extracts the salient links of an undirected graph,
// following Grady, Thiemann & Brockmann, "Robust classification of salient
// links in complex networks", Nature Communications 3 (2012).
//
// 🚀 What is salience?
//
//	For every node of a graph we build the shortest-path tree (SPT) rooted
//	at that node: the set of edges that lie on at least one shortest path
//	from the root to the rest of the network. Averaging all N trees gives
//	the salience matrix — for each edge, the fraction of roots whose SPT
//	uses it. Salient edges form the skeleton along which the network is
//	actually traversed.
//
// The computation itself lives in this root package: Salience for the
// weighted variant (distance = 1/weight "proximity") and
// SalienceUnweighted for hop counts. The supporting pieces are small
// focused subpackages:
//
//	core/    — thread-safe Graph, Vertex, Edge primitives with float64 edge attributes
//	spath/   — single-source shortest paths: BFS hop counts or Dijkstra over a weight function
//	matrix/  — row-major Dense float64 matrices (the SPT and salience outputs)
//	builder/ — deterministic fixture constructors (Path, Cycle, Complete, Star)
//	cmd/     — `salience` CLI: TOML graph in, CSV matrix out
//
// Quick ASCII example:
//
//	    A───B───C
//
//	On the path graph the middle edges carry every route: both A─B and B─C
//	appear in all three shortest-path trees, so their salience is 1.0.
//
//	go get github.com/katalvlaran/salience
package salience
