// Package core defines the weighted, undirected Graph used by the shortest-path
// and route-search packages, together with its Edge and Neighbor records.
//
// A single sync.RWMutex (mu) guards the vertex catalog, the edge catalog and the
// adjacency lists, so an undirected edge is linked from both endpoints atomically.
//
// This file declares Edge, Neighbor, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - weight is negative, NaN or infinite.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge on a graph built WithSimpleEdges.
//	ErrDisconnectedPath    - PathTotal met a hop with no edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted on a simple graph.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDisconnectedPath is the warning returned by PathTotal when two consecutive
	// vertices of the path share no edge. The partial sum is still returned.
	ErrDisconnectedPath = errors.New("core: path is disconnected")
)

// Edge represents an undirected, weighted connection between two vertices.
//
// Each Edge is stored once in the catalog and linked from both endpoints.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the endpoint the edge was added from.
	From string

	// To is the endpoint the edge was added to.
	To string

	// Weight is the non-negative traversal cost of the edge.
	Weight float64
}

// Other returns the endpoint opposite to id.
// For a self-loop both endpoints are id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}
	return e.From
}

// Neighbor is one (neighbor, weight) pair as seen from a given vertex.
type Neighbor struct {
	ID     string  // adjacent vertex
	Weight float64 // edge weight
	EdgeID string  // catalog edge the pair comes from
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithSimpleEdges forbids parallel edges between the same pair of vertices.
// By default parallel edges are kept and all of them are considered by path search.
func WithSimpleEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = false }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory weighted undirected graph.
//
// Vertex and adjacency order follow insertion order, which makes every
// traversal (and therefore every tie between equal-cost paths) deterministic.
//
// A Graph is safe for concurrent readers. It must be fully built before a path
// search or route optimisation starts; mutating it during one is undefined.
type Graph struct {
	mu sync.RWMutex // guards everything below

	allowMulti bool // keep parallel edges
	allowLoops bool // allow self-loops

	nextEdgeID uint64             // edge ID generator
	order      []string           // vertex IDs in insertion order
	vertices   map[string]int     // vertex ID → index in order
	edges      map[string]*Edge   // edge ID → Edge
	adjacency  map[string][]*Edge // vertex ID → incident edges, insertion order
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph keeps parallel edges and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		allowMulti: true,
		vertices:   make(map[string]int),
		edges:      make(map[string]*Edge),
		adjacency:  make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Multigraph reports whether parallel edges are kept.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
