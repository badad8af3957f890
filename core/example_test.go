package core_test

import (
	"fmt"

	"github.com/katalvlaran/salience/core"
)

// ExampleNewGraph builds a weighted square and lists one neighborhood.
//
//	A───B
//	│   │
//	C───D
func ExampleNewGraph() {
	g := core.NewGraph()
	g.AddEdge("A", "B", core.WithEdgeAttr("weight", 1))
	g.AddEdge("A", "C", core.WithEdgeAttr("weight", 2))
	g.AddEdge("B", "D", core.WithEdgeAttr("weight", 1))
	g.AddEdge("C", "D", core.WithEdgeAttr("weight", 1))

	fmt.Println(g.Vertices())
	ids, _ := g.NeighborIDs("A")
	fmt.Println(ids)
	// Output:
	// [A B C D]
	// [B C]
}
