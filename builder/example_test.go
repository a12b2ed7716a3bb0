package builder_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/builder"
)

// ExampleBuild generates a 2×3 street grid with unit weights.
func ExampleBuild() {
	g, err := builder.Build(nil, builder.Grid(2, 3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	fmt.Println(g.Vertices())
	// Output:
	// 6 7
	// [0,0 0,1 0,2 1,0 1,1 1,2]
}
