// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Notes on implementation choices:
//
//   - Vertices are discovered lazily: only the source is queued up front.
//   - The queue supports decrease-key, so each vertex is queued at most once.
//   - Point-to-point queries stop as soon as the target is finalized.
//   - Neighbors are relaxed in graph insertion order and queue ties are FIFO,
//     so equal-cost paths resolve the same way on every run.
//   - Any edge with weight ≥ InfEdgeThreshold is an impassable "wall".
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/pqueue"
)

// FindPath returns the least-cost path from source to target.
//
// Returns:
//   - Result{Path: [source … target], Distance} when a route exists.
//   - Result{Path: [source], Distance: 0} when source == target and present.
//   - Result{Path: [], Distance: +Inf} when target is unreachable or either
//     endpoint is absent. This is not an error.
//
// Errors:
//   - ErrNilGraph, or an option error (ErrBadMaxDistance, ErrBadInfThreshold).
//
// Complexity: O((V + E) log V) worst case; usually less thanks to the early exit.
func FindPath(g *core.Graph, source, target string, opts ...Option) (Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasVertex(source) || !g.HasVertex(target) {
		return noRoute(), nil
	}

	r := newRunner(g, cfg, 0)
	r.start(source)
	if err = r.process(target); err != nil {
		return Result{}, err
	}
	if !r.visited[target] {
		return noRoute(), nil
	}

	return Result{Path: r.pathTo(target), Distance: r.dist[target]}, nil
}

// Distances computes shortest distances from source to every vertex.
//
// Returns:
//   - dist: vertex ID → minimum distance (+Inf if unreachable).
//   - prev: vertex ID → predecessor on one shortest path ("" for the source
//     and for unreachable vertices).
//
// Errors:
//   - ErrNilGraph, ErrVertexNotFound, or an option error.
//
// Complexity: O((V + E) log V).
func Distances(g *core.Graph, source string, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}

	vertices := g.Vertices()
	r := newRunner(g, cfg, len(vertices))
	r.start(source)
	if err = r.process(""); err != nil {
		return nil, nil, err
	}

	dist := make(map[string]float64, len(vertices))
	prev := make(map[string]string, len(vertices))
	for _, v := range vertices {
		dist[v] = math.Inf(1)
		prev[v] = ""
		if r.visited[v] {
			dist[v] = r.dist[v]
			prev[v] = r.prev[v]
		}
	}

	return dist, prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph           // read-only within a run
	options Options               // thresholds
	dist    map[string]float64    // best-known distance from source
	prev    map[string]string     // predecessor on the best-known path
	visited map[string]bool       // finalized vertices
	pq      *pqueue.Queue[string] // frontier with decrease-key
	source  string                // start vertex
}

func newRunner(g *core.Graph, cfg Options, sizeHint int) *runner {
	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, sizeHint),
		prev:    make(map[string]string, sizeHint),
		visited: make(map[string]bool, sizeHint),
		pq:      pqueue.New[string](),
	}
}

// start seeds the frontier with the source at distance zero.
func (r *runner) start(source string) {
	r.source = source
	r.dist[source] = 0
	r.pq.Enqueue(source, 0)
}

// process repeatedly finalizes the closest frontier vertex and relaxes its edges.
//
// Loop termination conditions:
//
//   - The frontier becomes empty (all reachable vertices processed).
//   - target != "" and target has just been finalized (early exit).
//   - The minimum frontier distance exceeds MaxDistance.
func (r *runner) process(target string) error {
	for {
		u, d, ok := r.pq.Dequeue()
		if !ok {
			return nil
		}
		if d > r.options.MaxDistance {
			return nil
		}
		r.visited[u] = true
		if u == target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// relax improves tentative distances of the unvisited neighbors of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u string) error {
	du := r.dist[u]
	err := r.g.ForEachNeighbor(u, func(nb core.Neighbor) bool {
		if r.visited[nb.ID] || nb.Weight >= r.options.InfEdgeThreshold {
			return true
		}
		alt := du + nb.Weight
		if alt > r.options.MaxDistance {
			return true
		}
		// strict "<" keeps the first-found predecessor among equal-cost paths
		if cur, seen := r.dist[nb.ID]; seen && alt >= cur {
			return true
		}
		r.dist[nb.ID] = alt
		r.prev[nb.ID] = u
		r.pq.Enqueue(nb.ID, alt)

		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	return nil
}

// pathTo walks predecessor links back from target to the source.
func (r *runner) pathTo(target string) []string {
	var rev []string
	for v := target; ; v = r.prev[v] {
		rev = append(rev, v)
		if v == r.source {
			break
		}
	}
	path := make([]string, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path
}
