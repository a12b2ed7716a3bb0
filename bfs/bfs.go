// Package bfs provides breadth-first traversal over a core.Graph. The route
// optimizer uses it to reject waypoints that cannot reach each other before
// spending any generations on them.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// queueItem pairs a vertex ID with its hop count.
type queueItem struct {
	id   string
	hops int
}

// walker encapsulates mutable traversal state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS traverses g from startID. Weights are ignored except by SkipEdge.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ErrNeighbors, context errors, or a wrapped OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Hops:   make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Reachable returns the hop count of every vertex reachable from source,
// source included at 0.
func Reachable(g *core.Graph, source string) (map[string]int, error) {
	res, err := BFS(g, source)
	if err != nil {
		return nil, err
	}

	return res.Hops, nil
}

// Unreachable returns the members of targets that cannot be reached from
// source, in the order given. Absent targets count as unreachable.
func Unreachable(g *core.Graph, source string, targets []string) ([]string, error) {
	hops, err := Reachable(g, source)
	if err != nil {
		return nil, err
	}
	var missing []string
	for _, t := range targets {
		if _, ok := hops[t]; !ok {
			missing = append(missing, t)
		}
	}

	return missing, nil
}

func (w *walker) enqueue(id string, hops int, parent string) {
	w.res.Hops[id] = hops
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, hops: hops})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.hops); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues each unseen, non-skipped neighbor within MaxHops.
func (w *walker) expand(item queueItem) error {
	next := item.hops + 1
	if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
		return nil
	}
	err := w.graph.ForEachNeighbor(item.id, func(nb core.Neighbor) bool {
		if _, seen := w.res.Hops[nb.ID]; seen {
			return true
		}
		if w.opts.SkipEdge(item.id, nb.ID, nb.Weight) {
			return true
		}
		w.enqueue(nb.ID, next, item.id)

		return true
	})
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}

	return nil
}
