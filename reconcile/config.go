package reconcile

import "github.com/katalvlaran/urec/dlcost"

// Config holds the mutation weights used when comparing DlCost values on
// the scalar mut() axis, plus the optional deterministic tie-break policy
// for FindOptimalEdge.
type Config struct {
	Weights dlcost.Weights

	// CanonicalTieBreak, when set, makes FindOptimalEdge resolve ties among
	// equally optimal corners by a stable key (the minimum leaf label in a
	// corner's subtree) instead of returning the first corner the walk
	// encounters. Off by default, matching the reference behavior.
	CanonicalTieBreak bool
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns a Config with dup_weight = loss_weight = 1.0,
// with opts applied on top.
func DefaultConfig(opts ...Option) Config {
	cfg := Config{Weights: dlcost.DefaultWeights()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDupWeight sets the multiplier applied to duplication counts.
func WithDupWeight(w float64) Option {
	return func(c *Config) { c.Weights.Dup = w }
}

// WithLossWeight sets the multiplier applied to loss counts.
func WithLossWeight(w float64) Option {
	return func(c *Config) { c.Weights.Loss = w }
}

// WithCanonicalTieBreak enables deterministic tie-breaking in
// FindOptimalEdge: among corners tied for the minimum scalar cost, the one
// whose subtree's minimum leaf label sorts first is returned, rather than
// whichever the walk happens to reach first.
func WithCanonicalTieBreak() Option {
	return func(c *Config) { c.CanonicalTieBreak = true }
}
