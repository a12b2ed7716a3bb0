// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, ForEachNeighbor) and PathTotal.
// Determinism:
//   - Neighbors() lists incident edges in insertion order.
//   - NeighborIDs() returns unique IDs in first-seen order.
// Concurrency:
//   - Read operations hold mu read lock.

package core

import "fmt"

// Neighbors returns the (neighbor, weight) pairs of id, one per incident edge.
// Parallel edges yield one pair each; a self-loop yields a single pair (id, w).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist. Vertices() never lists
//     such an id, so the two views stay consistent.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	list := g.adjacency[id]
	out := make([]Neighbor, 0, len(list))
	for _, e := range list {
		out = append(out, Neighbor{ID: e.Other(id), Weight: e.Weight, EdgeID: e.ID})
	}

	return out, nil
}

// ForEachNeighbor calls fn for every incident edge of id in insertion order
// without allocating. fn runs under the graph read lock and must not mutate g.
// Returning false from fn stops the iteration.
//
// Errors: same as Neighbors.
func (g *Graph) ForEachNeighbor(id string, fn func(n Neighbor) bool) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for _, e := range g.adjacency[id] {
		if !fn(Neighbor{ID: e.Other(id), Weight: e.Weight, EdgeID: e.ID}) {
			break
		}
	}

	return nil
}

// NeighborIDs returns the unique vertex IDs adjacent to id in first-seen order.
// Errors: same as Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(nbs))
	out := make([]string, 0, len(nbs))
	for _, nb := range nbs {
		if _, ok := seen[nb.ID]; ok {
			continue
		}
		seen[nb.ID] = struct{}{}
		out = append(out, nb.ID)
	}

	return out, nil
}

// PathTotal sums the edge weights along path.
//
// Contract:
//   - len(path) < 2 ⇒ 0, nil.
//   - Each hop costs the smallest weight among the parallel edges joining it.
//   - If a hop has no edge, PathTotal stops and returns the partial sum
//     accumulated so far together with an error wrapping ErrDisconnectedPath.
//     The caller decides whether that is fatal.
//
// Complexity: O(Σ deg(path[i])).
func (g *Graph) PathTotal(path []string) (float64, error) {
	if len(path) < 2 {
		return 0, nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total float64
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.edgeWeightLocked(path[i], path[i+1])
		if !ok {
			return total, fmt.Errorf("%w: no edge between %q and %q", ErrDisconnectedPath, path[i], path[i+1])
		}
		total += w
	}

	return total, nil
}
