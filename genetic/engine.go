package genetic

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	logger   *log.Entry
	observer func(GenerationStats)
}

// WithLogger routes engine logs to entry. Progress is logged at Debug.
func WithLogger(entry *log.Entry) Option {
	return func(o *engineOptions) {
		if entry != nil {
			o.logger = entry
		}
	}
}

// WithObserver registers fn to receive statistics after every evaluated
// generation, the initial one included. fn runs on the Run goroutine.
func WithObserver(fn func(GenerationStats)) Option {
	return func(o *engineOptions) {
		o.observer = fn
	}
}

// Engine runs a generational evolutionary search over a Problem.
//
// An Engine is not safe for concurrent use. Each Run starts from a fresh
// generator seeded from Config, so repeated runs return the same result.
type Engine[G any] struct {
	problem  Problem[G]
	cfg      Config
	genes    int
	rng      *rand.Rand
	logger   *log.Entry
	observer func(GenerationStats)
}

// NewEngine validates cfg and binds it to p.
func NewEngine[G any](p Problem[G], cfg Config, opts ...Option) (*Engine[G], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := p.GeneCount()
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoGenes, n)
	}

	o := engineOptions{logger: log.NewEntry(log.StandardLogger())}
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine[G]{
		problem:  p,
		cfg:      cfg,
		genes:    n,
		rng:      rngFromSeed(cfg.Seed),
		logger:   o.logger,
		observer: o.observer,
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine[G]) Config() Config { return e.cfg }

// InitPopulation creates PopulationSize chromosomes of GeneCount genes, each
// drawn independently from the Problem's gene factory. Duplicates are allowed;
// fitness decides validity.
func (e *Engine[G]) InitPopulation() Population[G] {
	pop := make(Population[G], e.cfg.PopulationSize)
	for i := range pop {
		genes := make([]G, e.genes)
		for j := range genes {
			genes[j] = e.problem.NewGene(e.rng)
		}
		pop[i] = Chromosome[G]{Genes: genes}
	}

	return pop
}

// Evaluate scores every chromosome in place and sorts pop by descending
// fitness. The sort is stable, so equally fit chromosomes keep their order.
func (e *Engine[G]) Evaluate(pop Population[G]) {
	if e.cfg.Workers > 1 && len(pop) > 1 {
		var g errgroup.Group
		g.SetLimit(e.cfg.Workers)
		for i := range pop {
			i := i
			g.Go(func() error {
				pop[i].Fitness = sanitize(e.problem.Fitness(pop[i].Genes))
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range pop {
			pop[i].Fitness = sanitize(e.problem.Fitness(pop[i].Genes))
		}
	}

	sort.SliceStable(pop, func(a, b int) bool { return pop[a].Fitness > pop[b].Fitness })
}

// SelectParent runs a tournament: TournamentSize draws with replacement,
// returning the fittest. Earlier draws win ties. pop must be non-empty.
func (e *Engine[G]) SelectParent(pop Population[G]) Chromosome[G] {
	best := pop[e.rng.Intn(len(pop))]
	for i := 1; i < e.cfg.TournamentSize; i++ {
		if c := pop[e.rng.Intn(len(pop))]; c.Fitness > best.Fitness {
			best = c
		}
	}

	return best
}

// Evolve breeds the next generation from an evaluated pop.
//
//  1. The top ElitismCount chromosomes are copied unchanged.
//  2. Each remaining slot gets a child of two tournament-selected parents:
//     crossover with probability CrossoverRate, otherwise a copy of the first
//     parent; then each gene mutates with probability MutationRate.
//
// The returned population never shares gene slices with pop.
func (e *Engine[G]) Evolve(pop Population[G]) Population[G] {
	size := e.cfg.PopulationSize
	next := make(Population[G], 0, size)

	elites := e.cfg.ElitismCount
	if elites > len(pop) {
		elites = len(pop)
	}
	for i := 0; i < elites; i++ {
		next = append(next, pop[i].Clone())
	}

	for len(next) < size {
		p1 := e.SelectParent(pop)
		p2 := e.SelectParent(pop)

		var child []G
		if chance(e.rng, e.cfg.CrossoverRate) {
			child = cloneGenes(e.problem.Crossover(p1.Genes, p2.Genes, e.rng))
		} else {
			child = cloneGenes(p1.Genes)
		}
		for j := range child {
			if chance(e.rng, e.cfg.MutationRate) {
				child[j] = e.problem.Mutate(child[j], e.rng)
			}
		}
		next = append(next, Chromosome[G]{Genes: child})
	}

	return next
}

// Run performs Config.Generations generations and returns the best
// chromosome found.
func (e *Engine[G]) Run() Chromosome[G] {
	best, _ := e.RunContext(context.Background(), e.cfg.Generations)
	return best
}

// RunGenerations is Run with an explicit generation count.
func (e *Engine[G]) RunGenerations(n int) Chromosome[G] {
	best, _ := e.RunContext(context.Background(), n)
	return best
}

// RunContext runs n generations, checking ctx between generations. On
// cancellation it returns the best chromosome so far together with ctx.Err().
//
// The best-ever fitness never decreases across generations: elitism keeps the
// current best in the population and the tracker only replaces it with a
// strictly fitter chromosome.
func (e *Engine[G]) RunContext(ctx context.Context, n int) (Chromosome[G], error) {
	if n < 0 {
		n = 0
	}
	e.rng = rngFromSeed(e.cfg.Seed)

	pop := e.InitPopulation()
	e.Evaluate(pop)

	var t tracker[G]
	e.report(t.observe(0, pop))

	for gen := 1; gen <= n; gen++ {
		if err := ctx.Err(); err != nil {
			e.logger.WithField("generation", gen-1).Debug("evolution cancelled")
			return t.best.Clone(), err
		}
		pop = e.Evolve(pop)
		e.Evaluate(pop)
		e.report(t.observe(gen, pop))
	}

	return t.best.Clone(), nil
}

func (e *Engine[G]) report(st GenerationStats) {
	if st.Improved {
		e.logger.WithFields(log.Fields{
			"generation": st.Generation,
			"fitness":    st.BestEver,
			"valid":      st.Valid,
		}).Debug("new best chromosome")
	}
	if e.observer != nil {
		e.observer(st)
	}
}

// tracker keeps the best-ever chromosome of a run.
type tracker[G any] struct {
	best Chromosome[G]
	seen bool
}

// observe inspects an evaluated, sorted population.
func (t *tracker[G]) observe(gen int, pop Population[G]) GenerationStats {
	st := GenerationStats{Generation: gen}
	if len(pop) == 0 {
		return st
	}

	var sum float64
	for _, c := range pop {
		sum += c.Fitness
		if c.Fitness > 0 {
			st.Valid++
		}
	}
	st.Mean = sum / float64(len(pop))
	st.Best = pop[0].Fitness

	if !t.seen || pop[0].Fitness > t.best.Fitness {
		st.Improved = t.seen || pop[0].Fitness > 0
		t.best = pop[0].Clone()
		t.seen = true
	}
	st.BestEver = t.best.Fitness

	return st
}

// sanitize maps NaN, ±Inf and negative fitness to 0.
func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// cloneGenes copies genes into a fresh slice.
func cloneGenes[G any](genes []G) []G {
	out := make([]G, len(genes))
	copy(out, genes)
	return out
}
