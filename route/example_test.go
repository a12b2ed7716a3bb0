package route_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/genetic"
	"github.com/katalvlaran/waypath/route"
)

// ExampleOptimizer_Solve visits G and D on the way from A to K.
func ExampleOptimizer_Solve() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "D", 7)
	g.AddEdge("B", "G", 3)
	g.AddEdge("D", "G", 2)
	g.AddEdge("G", "K", 6)
	g.AddEdge("D", "K", 9)

	cfg := genetic.DefaultConfig()
	cfg.Generations = 50
	opt, err := route.New(g, route.Problem{Start: "A", Finish: "K", Waypoints: []string{"G", "D"}}, cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sol := opt.Solve()
	fmt.Println(sol.Path, sol.Distance)
	// Output: [A D G K] 15
}
