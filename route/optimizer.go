package route

import (
	"fmt"
	"math"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/katalvlaran/waypath/genetic"
	"github.com/katalvlaran/waypath/metrics"
)

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithLogger sets the log entry; Solve adds a run_id field to it.
func WithLogger(entry *log.Entry) Option {
	return func(o *Optimizer) {
		if entry != nil {
			o.logger = entry
		}
	}
}

// WithMetrics records solves, generations and path-cache lookups in c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *Optimizer) { o.metrics = c }
}

// WithPathCache shares an existing cache, for example across optimizers on
// the same graph. It must have been built over the same graph.
func WithPathCache(c *dijkstra.PathCache) Option {
	return func(o *Optimizer) {
		if c != nil {
			o.cache = c
		}
	}
}

// WithDirectEdges measures each leg by the direct edge between its two nodes
// instead of the shortest path. Legs without a direct edge are disconnected,
// and the expanded Path is the visiting order itself.
func WithDirectEdges() Option {
	return func(o *Optimizer) { o.direct = true }
}

// Optimizer orders the waypoints of a Problem with an evolutionary search.
// It implements genetic.Problem[string]; its Fitness is safe for concurrent
// use as long as the graph is not mutated.
type Optimizer struct {
	graph   *core.Graph
	problem Problem
	cfg     genetic.Config
	index   map[string]int // waypoint → position in problem.Waypoints

	cache   *dijkstra.PathCache
	direct  bool
	logger  *log.Entry
	metrics *metrics.Collector
}

var _ genetic.Problem[string] = (*Optimizer)(nil)

// New validates the problem and configuration and returns an Optimizer.
// The waypoint slice is copied.
func New(g *core.Graph, p Problem, cfg genetic.Config, opts ...Option) (*Optimizer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if p.Start == "" || p.Finish == "" {
		return nil, ErrEmptyEndpoint
	}
	index := make(map[string]int, len(p.Waypoints))
	for i, w := range p.Waypoints {
		if w == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyWaypoint, i)
		}
		if _, dup := index[w]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateWaypoint, w)
		}
		index[w] = i
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &Optimizer{
		graph: g,
		problem: Problem{
			Start:     p.Start,
			Finish:    p.Finish,
			Waypoints: append([]string(nil), p.Waypoints...),
		},
		cfg:    cfg,
		index:  index,
		logger: log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.cache == nil {
		o.cache = dijkstra.NewPathCache(g)
	}
	if o.metrics != nil {
		o.cache.SetObserver(o.metrics.ObservePathQuery)
	}

	return o, nil
}

// Problem returns a copy of the optimizer's input.
func (o *Optimizer) Problem() Problem {
	p := o.problem
	p.Waypoints = append([]string(nil), o.problem.Waypoints...)
	return p
}

// Cache returns the path cache used for leg distances.
func (o *Optimizer) Cache() *dijkstra.PathCache { return o.cache }

// GeneCount is the number of waypoints.
func (o *Optimizer) GeneCount() int { return len(o.problem.Waypoints) }

// NewGene picks a waypoint uniformly at random. Chromosomes built this way
// may repeat waypoints; Fitness rejects them.
func (o *Optimizer) NewGene(rng *rand.Rand) string {
	return o.problem.Waypoints[rng.Intn(len(o.problem.Waypoints))]
}

// Fitness scores a visiting order: 1 / total distance of
// start → genes… → finish, or 0 when the order repeats a waypoint, names a
// non-waypoint, has the wrong length, has a disconnected leg or has zero
// total length. Legs between identical nodes are skipped.
func (o *Optimizer) Fitness(genes []string) float64 {
	if len(genes) != len(o.problem.Waypoints) {
		return 0
	}
	seen := make(map[string]struct{}, len(genes))
	for _, g := range genes {
		if _, ok := o.index[g]; !ok {
			return 0
		}
		if _, dup := seen[g]; dup {
			return 0
		}
		seen[g] = struct{}{}
	}

	total, err := o.TourDistance(genes)
	if err != nil || total == 0 {
		return 0
	}

	return 1 / total
}

// TourDistance returns the length of start → order… → finish. A disconnected
// leg yields +Inf and an error wrapping core.ErrDisconnectedPath.
func (o *Optimizer) TourDistance(order []string) (float64, error) {
	var total float64
	prev := o.problem.Start
	for i := 0; i <= len(order); i++ {
		next := o.problem.Finish
		if i < len(order) {
			next = order[i]
		}
		if prev != next {
			leg, err := o.leg(prev, next)
			if err != nil {
				return math.Inf(1), err
			}
			if !leg.Found() {
				return math.Inf(1), fmt.Errorf("%w: no route between %q and %q", core.ErrDisconnectedPath, prev, next)
			}
			total += leg.Distance
		}
		prev = next
	}

	return total, nil
}

// Mutate replaces gene with a different waypoint chosen uniformly. With a
// single waypoint there is nothing to swap to and gene is returned as is.
func (o *Optimizer) Mutate(gene string, rng *rand.Rand) string {
	k := len(o.problem.Waypoints)
	pos, ok := o.index[gene]
	switch {
	case !ok:
		return o.NewGene(rng)
	case k < 2:
		return gene
	}
	r := rng.Intn(k - 1)
	if r >= pos {
		r++
	}

	return o.problem.Waypoints[r]
}

// Crossover is an ordered crossover (OX):
//
//  1. A random slice p1[start..end] is copied to the same positions.
//  2. The free positions are filled left to right with p2's genes in p2's
//     order, skipping values already in the child.
//  3. Positions still free (possible when p2 repeats values) take waypoints
//     not yet in the child, chosen with rng.
//
// The parents are not modified. When both parents are permutations the
// child is one too.
func (o *Optimizer) Crossover(p1, p2 []string, rng *rand.Rand) []string {
	n := len(p1)
	child := make([]string, n)
	if n == 0 {
		return child
	}
	start := rng.Intn(n)
	end := start + rng.Intn(n-start)

	filled := make([]bool, n)
	used := make(map[string]struct{}, n)
	for i := start; i <= end; i++ {
		child[i] = p1[i]
		filled[i] = true
		used[p1[i]] = struct{}{}
	}

	j := 0
	for _, g := range p2 {
		if _, dup := used[g]; dup {
			continue
		}
		for j < n && filled[j] {
			j++
		}
		if j == n {
			break
		}
		child[j] = g
		filled[j] = true
		used[g] = struct{}{}
	}

	for i := range child {
		if filled[i] {
			continue
		}
		var free []string
		for _, w := range o.problem.Waypoints {
			if _, dup := used[w]; !dup {
				free = append(free, w)
			}
		}
		if len(free) == 0 {
			// only reachable with foreign genes; leave p1's gene for Fitness to reject
			child[i] = p1[i]
			continue
		}
		child[i] = free[rng.Intn(len(free))]
		filled[i] = true
		used[child[i]] = struct{}{}
	}

	return child
}

// leg returns the route between two nodes under the configured distance mode.
func (o *Optimizer) leg(u, v string) (dijkstra.Result, error) {
	if !o.direct {
		return o.cache.FindPath(u, v)
	}
	if u == v && o.graph.HasVertex(u) {
		return dijkstra.Result{Path: []string{u}}, nil
	}
	w, ok := o.graph.EdgeWeight(u, v)
	if !ok {
		return dijkstra.Result{Path: []string{}, Distance: math.Inf(1)}, nil
	}

	return dijkstra.Result{Path: []string{u, v}, Distance: w}, nil
}
