// Package route orders mandatory waypoints between a fixed start and finish
// node of a core.Graph.
//
// The Optimizer binds the genetic engine to the waypoint-ordering problem:
//
//   - A chromosome is a candidate visiting order of the k waypoints.
//   - Fitness is 1 / (length of start → order… → finish), each leg measured
//     by the shortest path. Orders that repeat a waypoint, contain a
//     disconnected leg or have zero length score 0.
//   - Mutation swaps a gene for a different waypoint; crossover is OX.
//
// Solve expands the fittest order into the full node path by stitching the
// shortest path of each leg and listing each junction once. It never panics
// on a bad result; ErrInvalidTour and ErrNoValidTour are reported in the
// Solution instead, and the latter names the nodes the start cannot reach.
//
// Leg distances come from a dijkstra.PathCache, so each (from, to) pair is
// searched once per optimizer. With genetic.Config.Workers > 1 the fitness
// of a generation is computed concurrently; results do not depend on it.
package route
