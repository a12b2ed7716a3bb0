package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
)

// ExampleFindPath shows the detour through C beating the direct edge.
func ExampleFindPath() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 2)
	g.AddEdge("B", "C", 5)
	g.AddEdge("B", "D", 10)
	g.AddEdge("C", "E", 3)
	g.AddEdge("E", "D", 4)

	res, err := dijkstra.FindPath(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Distance)
	// Output: [A C E D] 9
}

// ExampleFindPath_unreachable shows that a missing route is reported by an
// empty path, not an error.
func ExampleFindPath_unreachable() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddVertex("Z")

	res, err := dijkstra.FindPath(g, "A", "Z")
	fmt.Println(res.Found(), len(res.Path), res.Distance, err)
	// Output: false 0 +Inf <nil>
}

// ExampleDistances prints the full distance table from A.
func ExampleDistances() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	dist, prev, err := dijkstra.Distances(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range g.Vertices() {
		fmt.Printf("%s=%g via %q\n", v, dist[v], prev[v])
	}
	// Output:
	// A=0 via ""
	// B=1 via "A"
	// C=3 via "B"
}

// ExamplePathCache demonstrates hit counting on repeated queries.
func ExamplePathCache() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)

	cache := dijkstra.NewPathCache(g)
	for i := 0; i < 3; i++ {
		cache.FindPath("A", "C")
	}
	st := cache.Stats()
	fmt.Println(st.Hits, st.Misses, st.Entries)
	// Output: 2 1 1
}
