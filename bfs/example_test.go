package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/core"
)

// ExampleBFS demonstrates layering on a 3×3 grid.
func ExampleBFS() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 1)
			}
			if i+1 < 3 {
				g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 1)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	path, _ := res.PathTo("2_2")
	fmt.Println(path)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
	// [0_0 0_1 0_2 1_2 2_2]
}

// ExampleUnreachable shows the waypoint pre-check.
func ExampleUnreachable() {
	g := core.NewGraph()
	g.AddEdge("depot", "a", 3)
	g.AddEdge("a", "b", 2)
	g.AddEdge("x", "y", 1)

	missing, err := bfs.Unreachable(g, "depot", []string{"b", "y", "ghost"})
	fmt.Println(missing, err)
	// Output: [y ghost] <nil>
}
