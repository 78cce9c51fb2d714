// SPDX-License-Identifier: MIT

// Package amplify: trial combinators for one-sided probabilistic checks.
//
// Contract (strict):
//   - k ≥ 1 (ErrInvalidTrials otherwise); k is the worst-case trial count,
//     reached only when no trial is decisive early.
//   - A trial error aborts immediately and propagates to the caller;
//     partial verdicts are never reported alongside an error.
//   - Combinators add no randomness of their own; independence across
//     trials is the trial's responsibility.

package amplify

import (
	"errors"
	"fmt"
)

// minTrials is the smallest meaningful repetition count.
const minTrials = 1

var (
	// ErrInvalidTrials is returned when the repetition count k is < 1.
	ErrInvalidTrials = errors.New("amplify: trial count must be at least 1")

	// ErrNilTrial is returned when no trial function is supplied.
	ErrNilTrial = errors.New("amplify: nil trial")
)

// Trial is one independent probabilistic check. Each invocation must draw
// fresh randomness and share no mutable state with other invocations.
type Trial func() (bool, error)

// AllOf runs up to k independent trials and returns true only if every
// trial returned true.
//
// For verifiers whose only error is a false POSITIVE (per-trial
// probability ε): one false verdict is definitive and short-circuits;
// k unanimous trues leave a residual false-accept probability ≤ εᵏ.
// Complexity: at most k trial invocations.
func AllOf(k int, trial Trial) (bool, error) {
	if err := validate(k, trial); err != nil {
		return false, fmt.Errorf("AllOf: %w", err)
	}

	for i := 0; i < k; i++ {
		ok, err := trial()
		if err != nil {
			return false, fmt.Errorf("AllOf: trial %d: %w", i, err)
		}
		if !ok {
			return false, nil // a single rejection is a certificate
		}
	}

	return true, nil
}

// AnyOf runs up to k independent trials and returns true as soon as any
// trial returns true.
//
// For verifiers whose only error is a false NEGATIVE (per-trial
// probability ε): one true verdict is definitive and short-circuits;
// k unanimous falses leave a residual false-reject probability ≤ εᵏ.
// Complexity: at most k trial invocations.
func AnyOf(k int, trial Trial) (bool, error) {
	if err := validate(k, trial); err != nil {
		return false, fmt.Errorf("AnyOf: %w", err)
	}

	for i := 0; i < k; i++ {
		ok, err := trial()
		if err != nil {
			return false, fmt.Errorf("AnyOf: trial %d: %w", i, err)
		}
		if ok {
			return true, nil // a single success is a certificate
		}
	}

	return false, nil
}

// validate guards the shared preconditions of both combinators.
func validate(k int, trial Trial) error {
	if k < minTrials {
		return fmt.Errorf("k=%d: %w", k, ErrInvalidTrials)
	}
	if trial == nil {
		return ErrNilTrial
	}

	return nil
}
