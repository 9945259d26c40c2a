// SPDX-License-Identifier: MIT

package mlp

// MLPSize is the default network depth (number of dense layers).
const MLPSize = 4

const panicDepthInvalid = "mlp: WithDepth: depth must be >= 1"

// Option configures New.
type Option func(*Options)

// Options holds the effective network configuration.
type Options struct {
	depth int // MLPSize
}

func gatherOptions(opts ...Option) Options {
	o := Options{depth: MLPSize}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithDepth overrides the number of layers New expects. Panics if n < 1.
func WithDepth(n int) Option {
	if n < 1 {
		panic(panicDepthInvalid)
	}

	return func(o *Options) { o.depth = n }
}
