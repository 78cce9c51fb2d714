// SPDX-License-Identifier: MIT
// Package matrix: canonical validators.
//
// Purpose:
//   - Provide a single source of truth for nil/shape checks.
//   - Keep kernels minimal by delegating guard logic here.
//   - Return sentinels wrapped with a validator tag; call sites wrap once
//     more with their operation tag for uniform "Op: Validator: sentinel"
//     error shapes.
//
// All checks are pure, deterministic, and allocation-free except the
// O(n²) entry scan in ValidateBinary.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly n entries.
// Errors: ErrNilMatrix (nil argument), ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen(x []int64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameSquare — composite: each operand non-nil and square, and all
// operands share one common dimension n. Used for the Freivalds triple.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(len(ms)).
func ValidateSameSquare(ms ...*Dense) error {
	if len(ms) == 0 {
		return nil
	}
	// Each operand must individually be square.
	for _, m := range ms {
		if err := ValidateSquare(m); err != nil {
			return err
		}
	}
	// All operands must agree on the common dimension.
	n := ms[0].r
	for _, m := range ms[1:] {
		if m.r != n {
			return validatorErrorf("ValidateSameSquare", ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateBinary ensures every entry of m is 0 or 1, as required of a
// bipartite adjacency matrix. Assumes m already passed ValidateNotNil.
// Errors: ErrBadEntry. Complexity: O(r*c).
func ValidateBinary(m *Dense) error {
	// Flat scan in deterministic order; report the first offender.
	for idx, v := range m.data {
		if v != 0 && v != 1 {
			return fmt.Errorf("ValidateBinary: entry (%d,%d)=%d: %w",
				idx/m.c, idx%m.c, v, ErrBadEntry)
		}
	}

	return nil
}
