package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/waypath/builder"
	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
)

// gridGraph builds an n×n 4-connected grid with unit weights.
func gridGraph(n int) *core.Graph {
	g, err := builder.Build(nil, builder.Grid(n, n))
	if err != nil {
		panic(err)
	}
	return g
}

func BenchmarkFindPath_Grid50(b *testing.B) {
	g := gridGraph(50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.FindPath(g, "0,0", "49,49"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDistances_Grid50(b *testing.B) {
	g := gridGraph(50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.Distances(g, "0,0"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPathCache_Hit(b *testing.B) {
	cache := dijkstra.NewPathCache(gridGraph(50))
	cache.FindPath("0,0", "49,49")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.FindPath("0,0", "49,49")
	}
}
