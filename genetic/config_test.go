package genetic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/genetic"
)

func TestDefaultConfig(t *testing.T) {
	cfg := genetic.DefaultConfig()
	require.Equal(t, 100, cfg.PopulationSize)
	require.Equal(t, 0.01, cfg.MutationRate)
	require.Equal(t, 0.9, cfg.CrossoverRate)
	require.Equal(t, 2, cfg.ElitismCount)
	require.Equal(t, 5, cfg.TournamentSize)
	require.Equal(t, 1000, cfg.Generations)
	require.NoError(t, cfg.Validate())
	require.Equal(t, int64(1), cfg.EffectiveSeed())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*genetic.Config)
		ok     bool
	}{
		{"defaults", func(*genetic.Config) {}, true},
		{"zero mutation", func(c *genetic.Config) { c.MutationRate = 0 }, true},
		{"zero crossover", func(c *genetic.Config) { c.CrossoverRate = 0 }, true},
		{"zero elitism", func(c *genetic.Config) { c.ElitismCount = 0 }, true},
		{"zero generations", func(c *genetic.Config) { c.Generations = 0 }, true},
		{"elitism equals population", func(c *genetic.Config) { c.PopulationSize, c.ElitismCount = 3, 3 }, true},
		{"empty population", func(c *genetic.Config) { c.PopulationSize = 0 }, false},
		{"mutation above one", func(c *genetic.Config) { c.MutationRate = 1.5 }, false},
		{"mutation NaN", func(c *genetic.Config) { c.MutationRate = math.NaN() }, false},
		{"negative crossover", func(c *genetic.Config) { c.CrossoverRate = -0.1 }, false},
		{"elitism above population", func(c *genetic.Config) { c.PopulationSize, c.ElitismCount = 3, 4 }, false},
		{"negative elitism", func(c *genetic.Config) { c.ElitismCount = -1 }, false},
		{"zero tournament", func(c *genetic.Config) { c.TournamentSize = 0 }, false},
		{"negative generations", func(c *genetic.Config) { c.Generations = -1 }, false},
		{"negative workers", func(c *genetic.Config) { c.Workers = -2 }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := genetic.DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, genetic.ErrBadConfig)
		})
	}
}

func TestConfig_EffectiveSeed(t *testing.T) {
	cfg := genetic.DefaultConfig()
	cfg.Seed = 42
	require.Equal(t, int64(42), cfg.EffectiveSeed())
}
