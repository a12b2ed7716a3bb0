// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount/EdgeWeight,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order (numeric edge sequence).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge u—v with the given weight and links it
// from both endpoints in one critical section. Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Lock mu, auto-add u and v.
//  3. Check the simple-edge constraint.
//  4. Generate eid, store the Edge, link adjacency[u] and (if u != v) adjacency[v].
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized, O(deg(u)) on graphs built WithSimpleEdges.
func (g *Graph) AddEdge(u, v string, weight float64) (string, error) {
	if u == "" || v == "" {
		return "", ErrEmptyVertexID
	}
	if !validWeight(weight) {
		return "", ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if u == v && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if !g.allowMulti && g.hasEdgeLocked(u, v) {
		return "", ErrMultiEdgeNotAllowed
	}

	g.addVertexLocked(u)
	g.addVertexLocked(v)

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: u, To: v, Weight: weight}
	g.edges[eid] = e
	g.adjacency[u] = append(g.adjacency[u], e)
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], e)
	}

	return eid, nil
}

// RemoveEdge deletes one edge from the catalog and from both endpoints.
//
// Errors:
//   - ErrEdgeNotFound if eid is unknown.
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	g.adjacency[e.From] = dropEdge(g.adjacency[e.From], eid)
	if e.From != e.To {
		g.adjacency[e.To] = dropEdge(g.adjacency[e.To], eid)
	}

	return nil
}

// dropEdge removes eid from list preserving order.
func dropEdge(list []*Edge, eid string) []*Edge {
	out := list[:0]
	for _, e := range list {
		if e.ID != eid {
			out = append(out, e)
		}
	}
	// release the tail pointer so the removed edge can be collected
	for i := len(out); i < len(list); i++ {
		list[i] = nil
	}

	return out
}

// HasEdge reports whether at least one edge u—v exists (in either direction).
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(u, v)
}

func (g *Graph) hasEdgeLocked(u, v string) bool {
	for _, e := range g.adjacency[u] {
		if e.Other(u) == v {
			return true
		}
	}

	return false
}

// GetEdge returns the Edge with the given ID or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeWeight returns the smallest weight among the edges joining u and v.
// ok is false when u and v are not adjacent.
// Complexity: O(deg(u)).
func (g *Graph) EdgeWeight(u, v string) (w float64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeWeightLocked(u, v)
}

func (g *Graph) edgeWeightLocked(u, v string) (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, e := range g.adjacency[u] {
		if e.Other(u) == v && e.Weight < best {
			best = e.Weight
			found = true
		}
	}

	return best, found
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next textual edge ID; caller holds mu for writing.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}

// edgeSeq extracts the numeric part of an edge ID for ordering.
func edgeSeq(eid string) uint64 {
	n, err := strconv.ParseUint(eid[1:], 10, 64)
	if err != nil {
		return math.MaxUint64
	}

	return n
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 1) && !math.IsNaN(w)
}
