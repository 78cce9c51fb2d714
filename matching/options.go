// SPDX-License-Identifier: MIT
// Package: matching
//
// options.go — functional options for the matching verifier.
//
// Contract (strict):
//   - Options are functional (type Option func(*options)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     the verifiers themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - The modulus is per-call configuration with a prime default; callers
//     overriding it own the primality guarantee (documented precondition,
//     see zp.Field.Inv).

package matching

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/randcheck/zp"
)

// Option customizes a matching check by mutating its options instance
// before any randomness is drawn.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*options)

// options carries the resolved configuration of one matching check.
type options struct {
	rng     *rand.Rand // randomness handle; nil until resolved
	modulus int64      // field modulus; DefaultModulus unless overridden
}

// WithRand provides an explicit RNG for Edmonds-matrix sampling.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("matching: WithRand(nil)")
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

// WithModulus overrides the field modulus p. Panics on p < 2 (programmer
// error); primality and p ≫ n remain the caller's responsibility — the
// false-negative bound n/p is only as good as the p supplied.
// Complexity: O(1).
func WithModulus(p int64) Option {
	if p < 2 {
		// Fail fast; a sub-2 modulus cannot form a ring, let alone a field.
		panic("matching: WithModulus(p < 2)")
	}

	return func(o *options) {
		o.modulus = p
	}
}

// resolveOptions applies opts over defaults. When no RNG was supplied, a
// time-seeded source is created once here — per call, not per trial — so
// rapid successive calls inside one amplified run stay uncorrelated.
func resolveOptions(opts ...Option) options {
	o := options{modulus: zp.DefaultModulus}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}
