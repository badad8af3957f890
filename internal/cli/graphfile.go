// graphfile.go loads a core.Graph from a TOML edge list.
//
// File format:
//
//	# vertices that carry no edges (optional)
//	nodes = ["outpost"]
//
//	[[edges]]
//	from = "A"
//	to = "B"
//	weight = 2.5   # optional; required by the weighted variant
package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/salience/core"
)

// ErrBadGraphFile indicates a graph file that decoded but fails validation.
var ErrBadGraphFile = errors.New("cli: invalid graph file")

// graphFile mirrors the TOML document structure.
type graphFile struct {
	Nodes []string   `toml:"nodes"`
	Edges []edgeSpec `toml:"edges"`
}

// edgeSpec is one [[edges]] entry. Weight is a pointer so that an absent
// weight stays distinguishable from an explicit zero (which the weighted
// variant must reject, not default away).
type edgeSpec struct {
	From   string   `toml:"from"`
	To     string   `toml:"to"`
	Weight *float64 `toml:"weight"`
}

// loadGraph decodes path into an undirected simple graph, storing any
// declared weight under the weightKey attribute.
func loadGraph(path, weightKey string) (*core.Graph, error) {
	var gf graphFile
	if _, err := toml.DecodeFile(path, &gf); err != nil {
		return nil, fmt.Errorf("cli: decode %s: %w", path, err)
	}

	g := core.NewGraph()
	for _, id := range gf.Nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w: node %q: %v", ErrBadGraphFile, id, err)
		}
	}
	for i, e := range gf.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge %d: from and to are required", ErrBadGraphFile, i)
		}
		var opts []core.EdgeOption
		if e.Weight != nil {
			opts = append(opts, core.WithEdgeAttr(weightKey, *e.Weight))
		}
		if _, err := g.AddEdge(e.From, e.To, opts...); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s–%s): %v", ErrBadGraphFile, i, e.From, e.To, err)
		}
	}

	return g, nil
}
