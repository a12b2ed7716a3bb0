// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries nextEdgeID so textual edge IDs stay monotonic on the clone.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneEmptyLocked()
}

func (g *Graph) cloneEmptyLocked() *Graph {
	clone := NewGraph()
	clone.allowMulti = g.allowMulti
	clone.allowLoops = g.allowLoops
	clone.nextEdgeID = g.nextEdgeID
	for _, id := range g.order {
		clone.addVertexLocked(id)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and adjacency.
// Edge IDs and adjacency order are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneEmptyLocked()
	copies := make(map[string]*Edge, len(g.edges))
	for eid, e := range g.edges {
		ne := *e
		copies[eid] = &ne
		clone.edges[eid] = &ne
	}
	for id, list := range g.adjacency {
		if len(list) == 0 {
			continue
		}
		out := make([]*Edge, len(list))
		for i, e := range list {
			out[i] = copies[e.ID]
		}
		clone.adjacency[id] = out
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// Edge IDs resume from "e1".
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.order = nil
	g.vertices = make(map[string]int)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string][]*Edge)
	g.nextEdgeID = 0
}
