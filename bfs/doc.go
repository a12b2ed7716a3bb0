// Package bfs provides breadth-first traversal over a core.Graph, returning
// hop counts, parent links and visit order.
//
// What
//
//   - BFS explores vertices in non-decreasing hop count from a start vertex and
//     returns a Result with Order, Hops and Parent.
//   - Reachable is the short form used as a connectivity pre-check: it returns
//     only the hop map.
//   - Unreachable lists which of a set of targets the start cannot reach.
//
// Edge weights are ignored by the traversal itself; WithSkipEdge can use them
// to treat heavy edges as walls.
//
// Determinism
//
//	core.Graph yields neighbors in edge insertion order, and BFS enqueues them
//	in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per dequeued vertex.
//   - WithMaxHops(n):     stop expanding beyond n hops (0 = unlimited).
//   - WithSkipEdge(fn):   ignore edges for which fn returns true.
//   - WithOnVisit(fn):    visit hook; returning an error aborts the traversal.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors.
//   - Wrapped OnVisit errors and context errors.
package bfs
