// SPDX-License-Identifier: MIT
// Package matrix: plain-integer product kernels.
//
// Purpose:
//   - Declare the exact (non-modular) kernels Freivalds' technique needs:
//     matrix–vector product and, as an oracle, full matrix product.
//   - Keep deterministic loop orders and a single result allocation.
//
// Overflow contract:
//   - Both kernels accumulate in int64 without reduction. Callers must
//     keep n·max|A|·max|x| (MatVec) and n·max|A|·max|B| (Mul) below 2⁶²;
//     the verifier composes two MatVec passes, so its documented bound is
//     n²·max|entry|² < 2⁶². Exactness inside that bound is what preserves
//     the "true product is always accepted" guarantee.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMatVec = "MatVec"
	opMul    = "Mul"
)

// MatVec computes y = m · x for a column vector x in plain int64
// arithmetic (no modular reduction).
//
// Contract: m non-nil; len(x) == m.Cols(); entries within the overflow
// bound above.
// Determinism: fixed i→j loop order over the flat backing slice.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []int64) ([]int64, error) {
	// Validate m is present.
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opMatVec, err)
	}
	// Validate x is present and matches the column count.
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, fmt.Errorf("%s: %w", opMatVec, err)
	}

	y := make([]int64, m.r) // exactly one output per row

	var i, j, base int // indices and row base offset
	var acc, xv int64
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		acc = 0                   // reset accumulator per row
		base = i * m.c            // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			xv = x[j]
			if xv != 0 { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// Mul performs standard matrix multiplication C = A × B in plain int64
// arithmetic, allocating a fresh Dense for the result (no aliasing).
//
// Contract: A (r×n) and B (n×c) non-nil with matching inner dimension;
// entries within the overflow bound above.
// Determinism: fixed i→k→j loop order with row-major strides.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	// Validate operands are present.
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}
	// Validate inner dimensions agree.
	if a.c != b.r {
		return nil, fmt.Errorf("%s: inner %d×%d: %w", opMul, a.c, b.r, ErrDimensionMismatch)
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}

	// Row-major i→k→j multiplication into res.data.
	//   a.data layout: i*a.c + k
	//   b.data layout: k*b.c + j
	var i, j, k int
	var av int64
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}
