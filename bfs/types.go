// Package bfs provides options and error definitions for breadth-first
// traversal over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures a traversal. An invalid Option is recorded and surfaced
// as ErrOptionViolation when the traversal starts.
type Option func(*Options)

// Options holds the traversal parameters.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued vertex.
	Ctx context.Context

	// OnVisit is called for every vertex in visit order. A non-nil error
	// aborts the traversal and is returned wrapped.
	OnVisit func(id string, hops int) error

	// MaxHops, if > 0, stops expansion beyond this many edges from the start.
	MaxHops int

	// SkipEdge excludes an edge when it returns true. Called with the
	// current vertex, the neighbor and the edge weight.
	SkipEdge func(curr, neighbor string, weight float64) bool

	err error
}

// DefaultOptions returns options with a background context, no hop limit,
// no skipped edges and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(string, int) error { return nil },
		SkipEdge: func(string, string, float64) bool { return false },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxHops limits the traversal depth.
//
//	n > 0:  limit to n hops
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithSkipEdge installs an edge filter.
func WithSkipEdge(fn func(curr, neighbor string, weight float64) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.SkipEdge = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertices in visit sequence.
//   - Hops: vertex ID → number of edges from the start.
//   - Parent: vertex ID → predecessor in the BFS tree (absent for the start).
type Result struct {
	Order  []string
	Hops   map[string]int
	Parent map[string]string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Hops[id]
	return ok
}

// PathTo reconstructs the fewest-hops path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	hops, ok := r.Hops[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]string, hops+1)
	cur := dest
	for i := hops; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
