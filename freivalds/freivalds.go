// SPDX-License-Identifier: MIT

package freivalds

import (
	"fmt"

	"github.com/katalvlaran/randcheck/amplify"
	"github.com/katalvlaran/randcheck/matrix"
	"github.com/katalvlaran/randcheck/zp"
)

// Operation tags for unified error wrapping.
const (
	opVerify  = "Verify"
	opAmplify = "Amplify"
)

// Verify runs one Freivalds trial: does A·B = C?
//
// Stage 1 (Validate): A, B, C must be square with one common dimension n
// (matrix.ErrDimensionMismatch otherwise — a structural failure, never a
// silent verdict).
// Stage 2 (Sample): draw a witness r ∈ {0,1}ⁿ, one independent bit per
// coordinate.
// Stage 3 (Evaluate): compare A·(B·r) against C·r element-wise, three
// O(n²) products in exact integer arithmetic.
//
// Guarantee: if A·B = C the result is true on every call (no false
// negative ever); if A·B ≠ C the result is true with probability ≤ 1/2
// over the witness choice. Use Amplify to shrink that further.
// Complexity: O(n²) time, O(n) extra space.
func Verify(a, b, c *matrix.Dense, opts ...Option) (bool, error) {
	if err := matrix.ValidateSameSquare(a, b, c); err != nil {
		return false, fmt.Errorf("%s: %w", opVerify, err)
	}

	sampler, err := newWitnessSampler(resolveOptions(opts...))
	if err != nil {
		return false, fmt.Errorf("%s: %w", opVerify, err)
	}

	ok, err := verifyOnce(a, b, c, sampler)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opVerify, err)
	}

	return ok, nil
}

// Amplify runs k independent Freivalds trials and returns true only if
// ALL of them accept, false as soon as any trial rejects.
//
// Rationale: the only possible error is a false accept, occurring
// independently per trial with probability ≤ 1/2, so unanimity drives the
// false-accept probability to ≤ 2⁻ᵏ; false rejection remains impossible.
// One RNG is resolved for the whole run; each trial draws a fresh witness
// from it (amplify.ErrInvalidTrials on k < 1).
// Complexity: at most k·O(n²).
func Amplify(a, b, c *matrix.Dense, k int, opts ...Option) (bool, error) {
	// Validate the triple once up front; trials reuse the validated shape.
	if err := matrix.ValidateSameSquare(a, b, c); err != nil {
		return false, fmt.Errorf("%s: %w", opAmplify, err)
	}

	sampler, err := newWitnessSampler(resolveOptions(opts...))
	if err != nil {
		return false, fmt.Errorf("%s: %w", opAmplify, err)
	}

	ok, err := amplify.AllOf(k, func() (bool, error) {
		return verifyOnce(a, b, c, sampler)
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", opAmplify, err)
	}

	return ok, nil
}

// newWitnessSampler binds the resolved RNG to a field sampler. Witness
// bits do not depend on the modulus; the default field only anchors the
// sampler type shared with the matching verifier.
func newWitnessSampler(o options) (*zp.Sampler, error) {
	return zp.NewSampler(zp.Default(), o.rng)
}

// verifyOnce performs a single trial on an already-validated triple.
// Deterministic loop orders; randomness enters only through the witness.
func verifyOnce(a, b, c *matrix.Dense, sampler *zp.Sampler) (bool, error) {
	n := a.Rows()

	// Draw the witness vector r ∈ {0,1}ⁿ, one independent bit per entry.
	r := make([]int64, n)
	for i := range r {
		r[i] = sampler.Bit()
	}

	// Associativity is the whole trick: A·(B·r) costs two O(n²) passes
	// instead of the O(n³) product A·B.
	br, err := matrix.MatVec(b, r)
	if err != nil {
		return false, err
	}
	abr, err := matrix.MatVec(a, br)
	if err != nil {
		return false, err
	}
	cr, err := matrix.MatVec(c, r)
	if err != nil {
		return false, err
	}

	// Element-wise comparison; any mismatch is a definitive rejection.
	for i := 0; i < n; i++ {
		if abr[i] != cr[i] {
			return false, nil
		}
	}

	return true, nil
}
