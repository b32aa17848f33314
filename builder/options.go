// Package builder: constructor options.

package builder

import "strconv"

// Option configures optional behavior of the topology constructors.
type Option func(*config)

// config holds resolved constructor parameters.
type config struct {
	// label maps a node index (0-based) to its label.
	label func(int) string
}

func defaultConfig() config {
	return config{
		label: func(i int) string { return "V" + strconv.Itoa(i) },
	}
}

// WithLabel sets the index → label function used for node IDs.
// A nil fn has no effect (the default "V<i>" scheme is retained).
func WithLabel(fn func(i int) string) Option {
	return func(c *config) {
		if fn != nil {
			c.label = fn
		}
	}
}
