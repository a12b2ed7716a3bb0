package builder

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/waypath/core"
)

// defaultSeed is used when WithSeed is absent or given 0.
const defaultSeed int64 = 1

// defaultWeight is the constant edge weight without a weight option.
const defaultWeight = 1.0

// Option customises Build.
type Option func(*config)

// config is the resolved Build configuration, passed to constructors by value.
type config struct {
	idFn     func(int) string
	weightFn func(*rand.Rand) float64
	rng      *rand.Rand
	seed     int64
	gopts    []core.GraphOption
	err      error
}

func (c *config) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// weight draws the next edge weight.
func (c config) weight() float64 {
	return c.weightFn(c.rng)
}

// WithSeed fixes the generator behind RandomSparse and random weights.
// 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithIDScheme sets the index → vertex ID mapping. Grid ignores it and always
// uses "r,c" coordinates.
func WithIDScheme(fn func(int) string) Option {
	return func(c *config) {
		if fn == nil {
			c.fail(fmt.Errorf("%w: nil ID scheme", ErrOptionViolation))
			return
		}
		c.idFn = fn
	}
}

// WithPrefix names vertices prefix+index, e.g. "J0", "J1".
func WithPrefix(prefix string) Option {
	return WithIDScheme(func(i int) string { return prefix + strconv.Itoa(i) })
}

// WithWeightFn installs a per-edge weight policy. fn receives the seeded
// generator and must return a finite, non-negative weight.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	return func(c *config) {
		if fn == nil {
			c.fail(fmt.Errorf("%w: nil weight function", ErrOptionViolation))
			return
		}
		c.weightFn = fn
	}
}

// WithWeightRange draws integral weights uniformly from [lo,hi].
func WithWeightRange(lo, hi int) Option {
	return func(c *config) {
		if lo < 0 || hi < lo {
			c.fail(fmt.Errorf("%w: weight range [%d,%d]", ErrOptionViolation, lo, hi))
			return
		}
		span := hi - lo + 1
		c.weightFn = func(rng *rand.Rand) float64 {
			return float64(lo + rng.Intn(span))
		}
	}
}

// WithGraphOptions forwards options to core.NewGraph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(c *config) {
		c.gopts = append(c.gopts, opts...)
	}
}

func newConfig(opts ...Option) config {
	c := config{
		idFn:     strconv.Itoa,
		weightFn: func(*rand.Rand) float64 { return defaultWeight },
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.seed == 0 {
		c.seed = defaultSeed
	}
	c.rng = rand.New(rand.NewSource(c.seed))

	return c
}

// checkWeight rejects weights the graph would refuse, naming the method.
func checkWeight(method string, w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("%s: weight %v: %w", method, w, ErrOptionViolation)
	}
	return nil
}
