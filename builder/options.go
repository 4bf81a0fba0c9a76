// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/netgen/internal/rng"
	"github.com/katalvlaran/netgen/observe"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new PCG-backed *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rng.FromSeed(seed)
	}
}

// WithObserver registers a step callback invoked synchronously after every
// graph mutation and active-set change. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithObserver(o observe.Observer) BuilderOption {
	if o == nil {
		panic("builder: WithObserver(nil)")
	}
	return func(c *builderConfig) {
		c.observer = o
	}
}

// WithMaxRetries sets the draw budget of every rejection-sampling selection.
// Panics if n < 1.
// Complexity: O(1) time, O(1) space.
func WithMaxRetries(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxRetries(n<1)")
	}
	return func(c *builderConfig) {
		c.maxRetries = n
	}
}

// WithRewirePolicy selects the Watts–Strogatz replacement-target policy.
// Panics on an unknown policy.
// Complexity: O(1) time, O(1) space.
func WithRewirePolicy(p RewirePolicy) BuilderOption {
	if p != RewireDistinct && p != RewireIndependent {
		panic("builder: WithRewirePolicy(unknown)")
	}
	return func(c *builderConfig) {
		c.rewire = p
	}
}
