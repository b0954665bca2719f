package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/wirepat/bfs"
	"github.com/katalvlaran/wirepat/core"
)

// ExampleShortestPath walks a branching route from its driver leaf to one sink.
func ExampleShortestPath() {
	g := core.NewGraph()
	_, _ = g.AddEdge("drv", "j1")
	_, _ = g.AddEdge("j1", "sinkA")
	_, _ = g.AddEdge("j1", "j2")
	_, _ = g.AddEdge("j2", "sinkB")

	path, err := bfs.ShortestPath(g, "drv", "sinkB")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [drv j1 j2 sinkB]
}
