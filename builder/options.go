// options.go — functional options for the instance generator.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs;
//     the generators themselves never panic.
//   - Determinism is explicit: seeding goes through WithSeed or WithRand,
//     and stochastic generators fail with ErrNeedRandSource without one.

package builder

import (
	"math/rand"
	"strconv"
)

// IDFn maps a variable index to its identifier.
type IDFn func(int) string

// DefaultIDFn names variables by their decimal index: "0", "1", ….
func DefaultIDFn(i int) string {
	return strconv.Itoa(i)
}

// Option customizes the behavior of the instance generators by mutating
// a config before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config holds the configurable parameters of the generators:
// the RNG (nil until WithSeed/WithRand) and the variable ID scheme.
// Each generator invocation builds its own config; it is not shared.
type config struct {
	rng  *rand.Rand
	idFn IDFn
}

// newConfig returns a config with defaults (no RNG, decimal IDs), then
// applies each option in order. Later options override earlier ones.
func newConfig(opts ...Option) *config {
	cfg := &config{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = rng
	}
}

// WithIDScheme sets the variable ID generator: index -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}
