package genetic

import (
	"fmt"
	"math"
)

// Default parameter values.
const (
	DefaultPopulationSize = 100
	DefaultMutationRate   = 0.01
	DefaultCrossoverRate  = 0.9
	DefaultElitismCount   = 2
	DefaultTournamentSize = 5
	DefaultGenerations    = 1000
)

// Config holds the evolutionary search parameters. The zero value is not
// usable; start from DefaultConfig. Explicit zeros are honoured where valid
// (for example MutationRate 0 disables mutation).
type Config struct {
	// PopulationSize is the number of chromosomes per generation (≥ 1).
	PopulationSize int `json:"population_size" yaml:"population_size"`

	// MutationRate is the per-gene mutation probability in [0,1].
	MutationRate float64 `json:"mutation_rate" yaml:"mutation_rate"`

	// CrossoverRate is the probability of producing a child by crossover
	// rather than by cloning the first parent, in [0,1].
	CrossoverRate float64 `json:"crossover_rate" yaml:"crossover_rate"`

	// ElitismCount chromosomes survive unchanged each generation
	// (0 ≤ ElitismCount ≤ PopulationSize).
	ElitismCount int `json:"elitism_count" yaml:"elitism_count"`

	// TournamentSize is the sample size for parent selection (≥ 1).
	TournamentSize int `json:"tournament_size" yaml:"tournament_size"`

	// Generations is the number of evolve+evaluate rounds after the initial
	// population (≥ 0).
	Generations int `json:"generations" yaml:"generations"`

	// Seed drives every random decision. 0 selects a fixed default seed, so
	// runs are always reproducible.
	Seed int64 `json:"seed" yaml:"seed"`

	// Workers > 1 evaluates fitness concurrently with that many goroutines.
	// 0 and 1 both evaluate sequentially.
	Workers int `json:"workers" yaml:"workers"`
}

// DefaultConfig returns the standard parameter set.
func DefaultConfig() Config {
	return Config{
		PopulationSize: DefaultPopulationSize,
		MutationRate:   DefaultMutationRate,
		CrossoverRate:  DefaultCrossoverRate,
		ElitismCount:   DefaultElitismCount,
		TournamentSize: DefaultTournamentSize,
		Generations:    DefaultGenerations,
		Workers:        1,
	}
}

// Validate reports the first invalid field as ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case c.PopulationSize < 1:
		return fmt.Errorf("%w: population_size must be ≥ 1, got %d", ErrBadConfig, c.PopulationSize)
	case !isProbability(c.MutationRate):
		return fmt.Errorf("%w: mutation_rate must be in [0,1], got %v", ErrBadConfig, c.MutationRate)
	case !isProbability(c.CrossoverRate):
		return fmt.Errorf("%w: crossover_rate must be in [0,1], got %v", ErrBadConfig, c.CrossoverRate)
	case c.ElitismCount < 0 || c.ElitismCount > c.PopulationSize:
		return fmt.Errorf("%w: elitism_count must be in [0,%d], got %d", ErrBadConfig, c.PopulationSize, c.ElitismCount)
	case c.TournamentSize < 1:
		return fmt.Errorf("%w: tournament_size must be ≥ 1, got %d", ErrBadConfig, c.TournamentSize)
	case c.Generations < 0:
		return fmt.Errorf("%w: generations must be ≥ 0, got %d", ErrBadConfig, c.Generations)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be ≥ 0, got %d", ErrBadConfig, c.Workers)
	}

	return nil
}

// EffectiveSeed returns the seed actually used by the generator.
func (c Config) EffectiveSeed() int64 {
	if c.Seed == 0 {
		return defaultRNGSeed
	}
	return c.Seed
}

func isProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
