// Package builder generates synthetic road networks as core.Graph values.
//
// Build creates an empty graph and applies Constructors in order. Each
// constructor validates its parameters first and returns a sentinel error
// without touching the graph when they are out of range.
//
// Topologies:
//
//	Path(n)            v0—v1—…—v(n-1)
//	Cycle(n)           Path(n) plus v(n-1)—v0
//	Star(n)            hub "0" joined to every other vertex
//	Complete(n)        every unordered pair
//	Grid(rows, cols)   4-neighbourhood lattice with IDs "r,c"
//	RandomSparse(n, p) each unordered pair kept with probability p
//
// Determinism: vertex IDs come from the ID scheme in index order, edges are
// emitted in a documented order, and every random draw (edge trials and
// weights) comes from one generator seeded by WithSeed. Equal inputs give
// identical graphs, edge IDs included.
//
// Weights default to 1. WithWeightRange draws integral weights uniformly
// from [lo,hi]; WithWeightFn installs any other policy.
package builder
