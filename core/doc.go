// Package core provides the thread-safe, weighted, undirected Graph that every
// other waypath package reads from.
//
// The Graph G = (V,E) supports:
//
//   - Non-negative, finite float64 weights (ErrBadWeight otherwise)
//   - Parallel edges, kept by default and all relaxed by path search
//     (WithSimpleEdges rejects them with ErrMultiEdgeNotAllowed)
//   - Self-loops when built WithLoops
//   - Stable edge IDs ("e1", "e2", …) and insertion-ordered adjacency, so
//     traversals and ties between equal-cost paths are reproducible
//   - A single sync.RWMutex guarding vertices, edges and adjacency
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1), idempotent
//	HasVertex(id string) bool                  // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string, w float64) (string, error) // O(1)†, links both endpoints
//	RemoveEdge(edgeID string) error            // O(deg)
//	HasEdge(u, v string) bool                  // O(deg)
//	EdgeWeight(u, v string) (float64, bool)    // smallest parallel weight
//
//	// Query
//	Neighbors(id string) ([]Neighbor, error)   // ErrVertexNotFound for absent id
//	NeighborIDs(id string) ([]string, error)
//	Vertices() []string                        // insertion order
//	Edges() []*Edge                            // creation order
//	PathTotal(path []string) (float64, error)  // partial sum + ErrDisconnectedPath
//
//	// Serialization
//	MarshalJSON / UnmarshalJSON, ReadJSON, WriteJSON
//
//	// Cloning
//	CloneEmpty() *Graph, Clone() *Graph, Clear()
//
// † O(deg(u)) on graphs built WithSimpleEdges.
//
// Lifecycle: build the graph once, then hand it to dijkstra or route. Reads are
// safe from many goroutines; mutation during a search must be serialized by the
// caller.
package core
