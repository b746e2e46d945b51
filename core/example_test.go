package core_test

import (
	"fmt"

	"github.com/katalvlaran/heaptree/core"
)

// ExampleGraph_Neighbors builds a small undirected graph and lists the
// edges leaving vertex 0 in insertion order.
func ExampleGraph_Neighbors() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(1, 2, 2)

	nbrs, _ := g.Neighbors(0)
	for _, e := range nbrs {
		fmt.Println(e)
	}
	fmt.Println(g.EdgeCount(), core.Weights(g.Edges()))
	// Output:
	// (0 -- 1, 4)
	// (0 -- 2, 1)
	// 6 14
}
