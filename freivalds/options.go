// SPDX-License-Identifier: MIT
// Package: freivalds
//
// options.go — functional options for the verifier.
//
// Contract (strict):
//   - Options are functional (type Option func(*options)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     the verifiers themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; the RNG handle flows through options into one
//     sampler per call, shared across the trials of a single Amplify run
//     (fresh draws per trial, one seed per run — never reseed per trial).

package freivalds

import (
	"math/rand"
	"time"
)

// Option customizes a verification call by mutating its options instance
// before any randomness is drawn.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*options)

// options carries the resolved configuration of one verification call.
type options struct {
	rng *rand.Rand // randomness handle; nil until resolved
}

// WithRand provides an explicit RNG for witness sampling.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("freivalds: WithRand(nil)")
	}

	return func(o *options) {
		o.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// resolveOptions applies opts over defaults. When no RNG was supplied, a
// time-seeded source is created once here — per call, not per trial — so
// rapid successive calls inside one Amplify run stay uncorrelated.
func resolveOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}
