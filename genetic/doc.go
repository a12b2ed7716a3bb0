// Package genetic implements a generic, seedable evolutionary search.
//
// A concrete problem supplies five capabilities through Problem[G]: how many
// genes a chromosome has, how to draw a random gene, how to score a gene
// sequence, how to mutate one gene and how to combine two parents. The
// Engine owns everything else:
//
//	InitPopulation → Evaluate → (Evolve → Evaluate) × Generations
//
// Selection is a tournament with replacement, the top ElitismCount
// chromosomes survive unchanged, and the best chromosome ever evaluated is
// returned. Because elites survive, the best-known fitness is monotonically
// non-decreasing over a run.
//
// Determinism:
//
//   - One *rand.Rand per run, seeded from Config.Seed (0 ⇒ a fixed default).
//   - Fitness evaluation may run on Config.Workers goroutines but never draws
//     random numbers, so the result does not depend on Workers.
//
// Aliasing: Evolve builds every child from fresh slices. Chromosomes of
// the previous generation, elites included, are never modified.
//
// Observability: WithLogger receives Debug-level "new best" events and
// WithObserver receives GenerationStats after every evaluated generation.
package genetic
