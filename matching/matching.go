// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"

	"github.com/katalvlaran/randcheck/amplify"
	"github.com/katalvlaran/randcheck/matrix"
	"github.com/katalvlaran/randcheck/zp"
)

// Operation tags for unified error wrapping.
const (
	opHas          = "HasPerfectMatching"
	opHasAmplified = "HasPerfectMatchingAmplified"
)

// HasPerfectMatching runs one randomized Edmonds trial on a bipartite
// adjacency matrix: entry (i,j) = 1 iff left-vertex i connects to
// right-vertex j.
//
// Stage 1 (Validate): adj must be square (matrix.ErrDimensionMismatch)
// with 0/1 entries (matrix.ErrBadEntry); adj is read-only throughout.
// Stage 2 (Randomize): build the randomized Edmonds matrix — each 1-entry
// becomes a fresh uniform nonzero field element, each 0-entry stays 0.
// The randomized matrix lives only for this trial.
// Stage 3 (Decide): return det ≠ 0 for the determinant mod p.
//
// Guarantee: with no perfect matching the verdict is false on every call,
// deterministically (the symbolic determinant is identically zero). With
// a perfect matching the verdict is true except with probability ≤ n/p
// over the entry choices (Schwartz–Zippel).
// Complexity: O(n³) time, O(n²) space for the per-trial matrix.
func HasPerfectMatching(adj *matrix.Dense, opts ...Option) (bool, error) {
	f, sampler, err := prepare(adj, resolveOptions(opts...))
	if err != nil {
		return false, fmt.Errorf("%s: %w", opHas, err)
	}

	ok, err := trialOnce(adj, f, sampler)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opHas, err)
	}

	return ok, nil
}

// HasPerfectMatchingAmplified runs up to k independent trials and returns
// true as soon as ANY trial sees a nonzero determinant, false only after
// k unanimous zeros.
//
// Rationale: a nonzero determinant is a definitive certificate that a
// perfect matching exists (no false positive is possible), while a zero
// may be bad luck with probability ≤ n/p per trial; k failures drive the
// false-reject probability to ≤ (n/p)ᵏ. One RNG is resolved for the whole
// run; each trial draws a fresh Edmonds matrix from it
// (amplify.ErrInvalidTrials on k < 1).
// Complexity: at most k·O(n³).
func HasPerfectMatchingAmplified(adj *matrix.Dense, k int, opts ...Option) (bool, error) {
	f, sampler, err := prepare(adj, resolveOptions(opts...))
	if err != nil {
		return false, fmt.Errorf("%s: %w", opHasAmplified, err)
	}

	ok, err := amplify.AnyOf(k, func() (bool, error) {
		return trialOnce(adj, f, sampler)
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", opHasAmplified, err)
	}

	return ok, nil
}

// prepare validates the adjacency matrix and assembles the field and
// sampler shared by every trial of one call.
func prepare(adj *matrix.Dense, o options) (zp.Field, *zp.Sampler, error) {
	// Structural checks first: square shape, then the 0/1 entry domain.
	if err := matrix.ValidateSquare(adj); err != nil {
		return zp.Field{}, nil, err
	}
	if err := matrix.ValidateBinary(adj); err != nil {
		return zp.Field{}, nil, err
	}

	// WithModulus already rejected p < 2, so New cannot fail here; keep
	// the check anyway to stay honest about the constructor contract.
	f, err := zp.New(o.modulus)
	if err != nil {
		return zp.Field{}, nil, err
	}
	sampler, err := zp.NewSampler(f, o.rng)
	if err != nil {
		return zp.Field{}, nil, err
	}

	return f, sampler, nil
}

// trialOnce builds one randomized Edmonds matrix and tests its
// determinant. adj has already been validated square and binary.
func trialOnce(adj *matrix.Dense, f zp.Field, sampler *zp.Sampler) (bool, error) {
	n := adj.Rows()

	// Fresh per-trial matrix: independence across trials requires that no
	// sampled entry survives from one trial to the next.
	edmonds, err := matrix.NewDense(n, n)
	if err != nil {
		return false, err
	}

	var i, j int // deterministic i→j fill order
	var v int64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = adj.At(i, j)
			if err != nil {
				return false, err
			}
			if v == 1 {
				// Edge variable ⇒ uniform nonzero field element.
				if err = edmonds.Set(i, j, sampler.NonZero()); err != nil {
					return false, err
				}
			}
			// Non-edges stay 0: NewDense zero-initializes.
		}
	}

	det, err := matrix.DeterminantMod(edmonds, f)
	if err != nil {
		return false, err
	}

	return det != 0, nil
}
