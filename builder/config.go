// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng         = nil                 (stochastic constructors refuse to run)
//   • observer    = nil                 (no instrumentation)
//   • maxRetries  = DefaultMaxRetries
//   • rewire      = RewireDistinct

package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/netgen/observe"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Step callback invoked after every mutation; nil disables it.
	observer observe.Observer
	// Draw budget of a single rejection-sampling selection.
	maxRetries int
	// Watts–Strogatz replacement-target policy.
	rewire RewirePolicy
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		maxRetries: DefaultMaxRetries,
		rewire:     RewireDistinct,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
