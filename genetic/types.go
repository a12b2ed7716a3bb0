package genetic

import (
	"errors"
	"math/rand"
)

// Sentinel errors.
var (
	// ErrBadConfig reports an invalid Config field; the wrapped message names it.
	ErrBadConfig = errors.New("genetic: invalid configuration")

	// ErrNilProblem is returned by NewEngine when no Problem is supplied.
	ErrNilProblem = errors.New("genetic: problem is nil")

	// ErrNoGenes is returned by NewEngine when the Problem declares a
	// negative gene count.
	ErrNoGenes = errors.New("genetic: gene count must be non-negative")
)

// Problem is the capability set the engine needs from a concrete search
// problem. G is the gene type.
//
// Fitness must return a non-negative number where higher is better and 0
// marks an unusable candidate. NaN, ±Inf and negative values are treated as 0.
// When Config.Workers > 1, Fitness is called from several goroutines at once.
//
// Mutate and Crossover receive the engine's generator and must not retain it.
// Crossover must not modify its inputs.
type Problem[G any] interface {
	GeneCount() int
	NewGene(rng *rand.Rand) G
	Fitness(genes []G) float64
	Mutate(gene G, rng *rand.Rand) G
	Crossover(p1, p2 []G, rng *rand.Rand) []G
}

// Chromosome is one candidate: an ordered gene sequence and its fitness.
// Fitness is meaningful only after Evaluate.
type Chromosome[G any] struct {
	Genes   []G
	Fitness float64
}

// Clone returns a deep copy of c.
func (c Chromosome[G]) Clone() Chromosome[G] {
	return Chromosome[G]{Genes: cloneGenes(c.Genes), Fitness: c.Fitness}
}

// Population is a fixed-size set of chromosomes, sorted by descending
// fitness after Evaluate.
type Population[G any] []Chromosome[G]

// GenerationStats summarises one evaluated generation.
type GenerationStats struct {
	Generation int     // 0 is the initial population
	Best       float64 // best fitness in this generation
	BestEver   float64 // best fitness seen so far in the run
	Mean       float64
	Valid      int  // chromosomes with fitness > 0
	Improved   bool // BestEver rose in this generation
}
