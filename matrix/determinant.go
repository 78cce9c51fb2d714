// SPDX-License-Identifier: MIT
// Package matrix: modular determinant via Gaussian elimination.
//
// Purpose:
//   - Compute det(m) mod p with partial pivoting performed entirely inside
//     the field — the algorithmic core of the bipartite matching test.
//
// Invariants:
//   - The input matrix is never mutated; elimination runs on a scratch
//     clone whose entries are normalized into [0, p−1] first.
//   - Every intermediate value stays within [0, p−1] (field closure).
//   - Row exchanges flip the running sign as det ← (p − det) mod p.
//   - A pivotless column is a definite singularity: return 0 immediately.
//     This is why the elimination never calls Inv on a zero element.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/randcheck/zp"
)

// opDet tags determinant errors for uniform wrapping.
const opDet = "DeterminantMod"

// DeterminantMod returns det(m) mod p for the field f.
//
// Stage 1 (Validate): m must be non-nil and square (ErrDimensionMismatch).
// Stage 2 (Prepare): clone m and normalize every entry into [0, p−1], so
// callers may pass any int64 matrix, negative entries included.
// Stage 3 (Eliminate): for each pivot column k,
//   - scan rows k..n−1 for the first row with a nonzero entry in column k;
//     none ⇒ the matrix is singular mod p ⇒ return 0 (a definite result,
//     not a probabilistic one);
//   - swap that row up to position k if needed, negating the running
//     determinant to reflect the sign flip of a row exchange;
//   - zero column k below the pivot: for each lower row i,
//     factor = a[i][k] · Inv(a[k][k]) and row_i ← row_i − factor·row_k
//     over columns k..n−1, all mod p.
//
// Stage 4 (Finalize): multiply the tracked sign by the diagonal product.
//
// A zero return is a legitimate verdict (singular matrix), never an error.
// Complexity: Time O(n³ + n² log p) (one inverse per pivot), Space O(n²)
// for the scratch clone.
func DeterminantMod(m *Dense, f zp.Field) (int64, error) {
	// Validate shape before any allocation.
	if err := ValidateSquare(m); err != nil {
		return 0, fmt.Errorf("%s: %w", opDet, err)
	}

	n := m.r

	// Scratch copy in canonical field representation; m stays intact.
	a := m.Clone()
	for idx := range a.data {
		a.data[idx] = f.Norm(a.data[idx])
	}

	det := int64(1) // running determinant: sign flips fold in here

	var k, i, j, pivot int // loop iterators and pivot row index
	var factor, term int64
	for k = 0; k < n; k++ {
		// Find the first row at or below k with a nonzero entry in column k.
		pivot = k
		for pivot < n && a.data[pivot*n+k] == 0 {
			pivot++
		}
		if pivot == n {
			return 0, nil // no nonzero pivot: singular, definitively
		}

		// Bring the pivot row into place; a row exchange negates det.
		if pivot != k {
			for j = k; j < n; j++ {
				a.data[k*n+j], a.data[pivot*n+j] = a.data[pivot*n+j], a.data[k*n+j]
			}
			det = f.Sub(0, det) // det ← (p − det) mod p
		}

		// Zero out column k below the pivot.
		// a[k][k] ≠ 0 here, so Inv's nonzero precondition holds.
		factor = f.Inv(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if a.data[i*n+k] == 0 {
				continue // row already reduced in this column
			}
			term = f.Mul(a.data[i*n+k], factor)
			for j = k; j < n; j++ {
				a.data[i*n+j] = f.Sub(a.data[i*n+j], f.Mul(term, a.data[k*n+j]))
			}
		}
	}

	// The determinant of the triangular result is the diagonal product.
	for i = 0; i < n; i++ {
		det = f.Mul(det, a.data[i*n+i])
	}

	return det, nil
}
