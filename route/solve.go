package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/genetic"
	"github.com/katalvlaran/waypath/metrics"
)

// Solve runs the configured number of generations and expands the best
// visiting order into a full path. Failures are reported in the Solution,
// never by panicking.
func (o *Optimizer) Solve() Solution {
	s, _ := o.SolveContext(context.Background())
	return s
}

// SolveContext is Solve with cancellation between generations. When ctx is
// cancelled the best order found so far is expanded and ctx.Err() returned
// alongside it.
func (o *Optimizer) SolveContext(ctx context.Context) (Solution, error) {
	runID := uuid.New().String()
	logger := o.logger.WithFields(log.Fields{
		"run_id":    runID,
		"start":     o.problem.Start,
		"finish":    o.problem.Finish,
		"waypoints": len(o.problem.Waypoints),
	})
	logger.WithFields(log.Fields{
		"population":  o.cfg.PopulationSize,
		"generations": o.cfg.Generations,
		"seed":        o.cfg.EffectiveSeed(),
	}).Info("solve started")
	began := time.Now()

	gens := 0
	engine, err := genetic.NewEngine[string](o, o.cfg,
		genetic.WithLogger(logger),
		genetic.WithObserver(func(st genetic.GenerationStats) {
			gens = st.Generation
			if o.metrics != nil {
				o.metrics.ObserveGeneration(st.BestEver)
			}
		}),
	)
	if err != nil {
		sol := failed(runID, nil, 0, err)
		o.finish(logger, sol, began)
		return sol, nil
	}

	best, runErr := engine.RunContext(ctx, o.cfg.Generations)
	sol := o.expand(best)
	sol.RunID = runID
	sol.Generations = gens
	o.finish(logger, sol, began)

	return sol, runErr
}

// Expand turns a visiting order into a Solution without running the search.
// The order is scored with Fitness first, so an invalid order yields the
// same errors Solve would report.
func (o *Optimizer) Expand(order []string) Solution {
	return o.expand(genetic.Chromosome[string]{Genes: order, Fitness: o.Fitness(order)})
}

func (o *Optimizer) expand(best genetic.Chromosome[string]) Solution {
	order := make([]string, 0, len(best.Genes)+2)
	order = append(order, o.problem.Start)
	order = append(order, best.Genes...)
	order = append(order, o.problem.Finish)

	if err := o.checkOrder(order); err != nil {
		return failed("", order, 0, err)
	}
	if best.Fitness <= 0 {
		return failed("", order, 0, o.explainNoTour())
	}

	path := make([]string, 0, len(order))
	var total float64
	for i := 0; i+1 < len(order); i++ {
		leg, err := o.leg(order[i], order[i+1])
		if err != nil || !leg.Found() {
			return failed("", order, 0, fmt.Errorf("%w: leg %q → %q vanished", ErrNoValidTour, order[i], order[i+1]))
		}
		path = append(path, leg.Path[:len(leg.Path)-1]...)
		total += leg.Distance
	}
	path = append(path, order[len(order)-1])

	return Solution{Path: path, Order: order, Distance: total, Fitness: best.Fitness}
}

// checkOrder verifies length k+2 and that every waypoint appears exactly once.
func (o *Optimizer) checkOrder(order []string) error {
	k := len(o.problem.Waypoints)
	if len(order) != k+2 {
		return fmt.Errorf("%w: %d nodes, want %d", ErrInvalidTour, len(order), k+2)
	}
	seen := make(map[string]struct{}, k)
	for _, w := range order[1 : k+1] {
		if _, ok := o.index[w]; !ok {
			return fmt.Errorf("%w: %q is not a waypoint", ErrInvalidTour, w)
		}
		if _, dup := seen[w]; dup {
			return fmt.Errorf("%w: %q visited twice", ErrInvalidTour, w)
		}
		seen[w] = struct{}{}
	}

	return nil
}

// explainNoTour names the nodes the start cannot reach, when it can tell.
func (o *Optimizer) explainNoTour() error {
	targets := append(append([]string(nil), o.problem.Waypoints...), o.problem.Finish)
	missing, err := bfs.Unreachable(o.graph, o.problem.Start, targets)
	switch {
	case err != nil:
		return fmt.Errorf("%w: start %q: %v", ErrNoValidTour, o.problem.Start, err)
	case len(missing) > 0:
		return fmt.Errorf("%w: unreachable from %q: %v", ErrNoValidTour, o.problem.Start, missing)
	}

	return ErrNoValidTour
}

func (o *Optimizer) finish(logger *log.Entry, sol Solution, began time.Time) {
	elapsed := time.Since(began)
	status := metrics.StatusOK
	switch {
	case sol.Err == nil:
	case errors.Is(sol.Err, ErrInvalidTour):
		status = metrics.StatusInvalidTour
	default:
		status = metrics.StatusNoValidTour
	}
	if o.metrics != nil {
		o.metrics.ObserveSolve(status, elapsed, sol.Distance)
	}

	entry := logger.WithFields(log.Fields{
		"status":      status,
		"generations": sol.Generations,
		"elapsed":     elapsed.Round(time.Millisecond),
	})
	if sol.Err != nil {
		entry.WithError(sol.Err).Warn("solve finished without a tour")
		return
	}
	entry.WithFields(log.Fields{
		"distance": sol.Distance,
		"hops":     len(sol.Path) - 1,
	}).Info("solve finished")
}
