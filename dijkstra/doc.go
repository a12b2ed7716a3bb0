// Package dijkstra finds least-cost paths on a core.Graph with non-negative
// edge weights.
//
// Overview:
//
//   - FindPath answers a single (source, target) query and stops as soon as the
//     target is settled.
//   - Distances runs the full single-source search and returns distance and
//     predecessor maps for every vertex.
//   - PathCache memoizes FindPath answers for repeated queries on a graph that
//     no longer changes (the route optimizer asks for the same waypoint pairs
//     thousands of times).
//
// Reporting conventions:
//
//   - A missing route is not an error: FindPath returns an empty Path and a
//     +Inf Distance when the target cannot be reached or an endpoint is absent.
//   - A query from a vertex to itself returns [source] with Distance 0.
//   - Errors are reserved for caller mistakes: ErrNilGraph, ErrVertexNotFound
//     (Distances only), ErrBadMaxDistance and ErrBadInfThreshold.
//
// Determinism:
//
//   - Neighbors are relaxed in the graph's insertion order and the queue breaks
//     priority ties first-in-first-out. Among equal-cost paths the first one
//     discovered wins, so repeated queries on the same graph return the same
//     path.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V); the queue holds at most one entry per vertex.
//
// Example:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 4)
//	g.AddEdge("A", "C", 2)
//	g.AddEdge("C", "B", 1)
//	res, _ := dijkstra.FindPath(g, "A", "B")
//	// res.Path == [A C B], res.Distance == 3
//
// See also:
//
//   - core.Graph.PathTotal to re-measure a path after the fact.
//   - bfs.Reachable for a cheap connectivity pre-check.
package dijkstra
