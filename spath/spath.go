// spath.go implements the single entry point ShortestPaths and its two
// engines: a breadth-first walker for hop-count distances and a Dijkstra
// runner with a lazy decrease-key heap for weighted distances.
package spath

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/salience/core"
)

// ShortestPaths computes shortest paths from source to every reachable
// vertex of g, applying any number of functional Options.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must exist in g (ErrSourceNotFound).
//
// With no options the distance metric is hop count; WithWeightFunc
// switches to Dijkstra over the supplied per-edge costs.
func ShortestPaths(g *core.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	n := g.VertexCount()
	res := &Result{
		Source: source,
		Dist:   make(map[string]float64, n),
		Parent: make(map[string]string, n),
		Order:  make([]string, 0, n),
	}

	if o.Weight == nil {
		return res, breadthFirst(g, res)
	}

	return res, dijkstra(g, res, o.Weight)
}

// breadthFirst fills res with hop-count distances using a FIFO queue.
// NeighborIDs returns sorted vertex IDs, so ties between equal-depth
// parents resolve to the lowest ID (first discovery wins).
func breadthFirst(g *core.Graph, res *Result) error {
	queue := []string{res.Source}
	res.Dist[res.Source] = 0

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, u)

		neighbors, err := g.NeighborIDs(u)
		if err != nil {
			return fmt.Errorf("spath: failed to get neighbors of %q: %w", u, err)
		}
		for _, v := range neighbors {
			if _, seen := res.Dist[v]; seen {
				continue
			}
			res.Dist[v] = res.Dist[u] + 1
			res.Parent[v] = u
			queue = append(queue, v)
		}
	}

	return nil
}

// dijkstra fills res with weighted distances from the weight function.
// It uses the lazy-decrease-key pattern: a shorter route pushes a fresh
// heap entry and stale entries are skipped when popped. Relaxation uses
// strict improvement only, so equal-cost alternatives never displace the
// recorded parent.
func dijkstra(g *core.Graph, res *Result, weight WeightFunc) error {
	visited := make(map[string]bool, g.VertexCount())

	pq := make(nodePQ, 0, g.VertexCount())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: res.Source, dist: 0})
	res.Dist[res.Source] = 0

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue // stale lazy entry
		}
		visited[u] = true
		res.Order = append(res.Order, u)

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("spath: failed to get neighbors of %q: %w", u, err)
		}
		for _, e := range neighbors {
			v := e.To
			if visited[v] {
				continue
			}

			w, err := weight(e)
			if err != nil {
				// Propagate unwrapped so caller sentinels survive errors.Is.
				return err
			}
			if w < 0 {
				return fmt.Errorf("%w: edge %s–%s cost=%g", ErrNegativeCost, e.From, e.To, w)
			}

			newDist := res.Dist[u] + w
			cur, seen := res.Dist[v]
			if seen && newDist >= cur {
				continue
			}
			res.Dist[v] = newDist
			res.Parent[v] = u
			heap.Push(&pq, &nodeItem{id: v, dist: newDist})
		}
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id) ascending.
// The ID component fixes the finalization order among equal distances,
// which pins down the tie-break rule for canonical paths.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
