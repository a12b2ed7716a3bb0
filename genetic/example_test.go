package genetic_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/waypath/genetic"
)

// bits maximises the number of set bits.
type bits struct{ n int }

func (b bits) GeneCount() int                   { return b.n }
func (b bits) NewGene(rng *rand.Rand) bool      { return rng.Intn(2) == 1 }
func (b bits) Mutate(g bool, _ *rand.Rand) bool { return !g }
func (b bits) Crossover(p1, p2 []bool, rng *rand.Rand) []bool {
	child := make([]bool, len(p1))
	for i := range child {
		if rng.Intn(2) == 0 {
			child[i] = p1[i]
		} else {
			child[i] = p2[i]
		}
	}
	return child
}
func (b bits) Fitness(genes []bool) float64 {
	var n float64
	for _, g := range genes {
		if g {
			n++
		}
	}
	return n
}

// ExampleEngine evolves a 16-bit string towards all ones.
func ExampleEngine() {
	cfg := genetic.DefaultConfig()
	cfg.PopulationSize = 40
	cfg.Generations = 200
	cfg.MutationRate = 0.02
	cfg.Seed = 3

	e, err := genetic.NewEngine[bool](bits{n: 16}, cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	best := e.Run()
	fmt.Println(best.Fitness)
	// Output: 16
}
