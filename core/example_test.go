package core_test

import (
	"fmt"

	"github.com/katalvlaran/wirepat/core"
)

// ExampleGraph builds a small routing tree and lists its leaves.
func ExampleGraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("10", "11", core.WithEdgeAttr("pattern", "T2"))
	_, _ = g.AddEdge("11", "12", core.WithEdgeAttr("pattern", "R2"))
	_, _ = g.AddEdge("11", "13", core.WithEdgeAttr("pattern", "V2"))

	for _, id := range g.Vertices() {
		_, _, deg, _ := g.Degree(id)
		if deg == 1 {
			fmt.Println("leaf", id)
		}
	}

	// Output:
	// leaf 10
	// leaf 12
	// leaf 13
}
