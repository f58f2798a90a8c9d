package holonomy

import "fmt"

const (
	// DefaultModulus is the phase quantization modulus N.
	DefaultModulus = 6
	// DefaultEpsilon is the magnitude below which an invariant counts as
	// vanishing and the cycle is labeled Undefined.
	DefaultEpsilon = 1e-9
	// DefaultParallelism bounds concurrent workers in ClassifyComponents.
	DefaultParallelism = 4
)

type config struct {
	modulus     int
	epsilon     float64
	parallelism int
}

// Option adjusts classifier behavior.
type Option func(*config)

// WithModulus overrides the quantization modulus N. Panics unless n ≥ 2.
func WithModulus(n int) Option {
	if n < 2 {
		panic(fmt.Sprintf("holonomy: WithModulus requires n ≥ 2, got %d", n))
	}
	return func(c *config) { c.modulus = n }
}

// WithEpsilon overrides the near-zero threshold. Panics unless eps > 0.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("holonomy: WithEpsilon requires eps > 0")
	}
	return func(c *config) { c.epsilon = eps }
}

// WithParallelism overrides the worker bound. Panics unless p ≥ 1.
func WithParallelism(p int) Option {
	if p < 1 {
		panic("holonomy: WithParallelism requires p ≥ 1")
	}
	return func(c *config) { c.parallelism = p }
}

func gatherOptions(opts []Option) config {
	cfg := config{
		modulus:     DefaultModulus,
		epsilon:     DefaultEpsilon,
		parallelism: DefaultParallelism,
	}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}
