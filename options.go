package bidimap

const defaultCapacity = 16

type config struct {
	capacity int
}

// An Option adjusts how New constructs a Map.
type Option func(c *config)

// WithCapacity pre-sizes the hash indices created by New. Has no effect on
// indices supplied via NewWithIndexes.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

func newConfig(opts []Option) config {
	cfg := config{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
