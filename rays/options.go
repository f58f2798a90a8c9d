package rays

// DefaultEpsilon is the tolerance applied to the magnitude contract.
const DefaultEpsilon = 1e-9

type config struct {
	epsilon float64
}

// Option adjusts model construction.
type Option func(*config)

// WithEpsilon overrides the magnitude tolerance. Panics unless eps > 0.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("rays: WithEpsilon requires eps > 0")
	}
	return func(c *config) { c.epsilon = eps }
}

func gatherOptions(opts []Option) config {
	cfg := config{epsilon: DefaultEpsilon}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}
