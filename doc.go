// Package waypath finds shortest paths on weighted, undirected graphs and
// orders mandatory waypoints between a fixed start and finish with an
// evolutionary search.
//
// What is inside:
//
//	core/      thread-safe Graph, JSON adjacency codec, PathTotal
//	pqueue/    generic min-priority queue with decrease-key and FIFO ties
//	dijkstra/  FindPath, Distances and a memoising PathCache
//	bfs/       breadth-first traversal and reachability checks
//	builder/   seeded synthetic graphs (path, cycle, star, complete, grid, random)
//	genetic/   generic Engine[G] over a Problem[G]: tournament selection,
//	           crossover, per-gene mutation, elitism
//	route/     the waypoint-ordering Problem, Solve and Solution
//	config/    YAML problem files
//	metrics/   prometheus collectors for solves, generations and path queries
//
// Data flow of one solve:
//
//	graph.json ─► core.Graph ─► dijkstra.PathCache ─┐
//	problem.yaml ─► config.File ─► route.Optimizer ◄┘
//	                                   │
//	                     genetic.Engine[string] ─► route.Solution
//
// Every random decision of a solve comes from one generator seeded by the
// optimizer configuration, so equal inputs give equal routes.
//
// Quick example:
//
//	    A──4──B
//	    │     │10
//	    2     D
//	    │     │4
//	    C──3──E
//
//	dijkstra.FindPath(g, "A", "D") ⇒ [A C E D], 9
//
// The waypath binary (cmd/waypath) exposes path, solve, graph and generate
// subcommands.
//
//	go install github.com/katalvlaran/waypath/cmd/waypath@latest
package waypath
