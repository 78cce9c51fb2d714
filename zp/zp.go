// SPDX-License-Identifier: MIT

// Package zp: field type and modular arithmetic kernels.
//
// Contract (strict):
//   - All exported operations take and return canonical representatives
//     in [0, p−1]; use Norm to bring external integers into range first.
//   - Operations never allocate and never panic on in-range inputs.
//   - Primality of p is a documented precondition, not a runtime check:
//     Inv relies on Fermat's little theorem and is meaningless otherwise.

package zp

import "errors"

// DefaultModulus is the process-wide default prime, 1e9+7.
// (p−1)² < 2⁶³, so Mul never overflows int64 on canonical representatives.
const DefaultModulus int64 = 1_000_000_007

const (
	minModulus = 2 // smallest modulus for which Z_p is a ring with 0 ≠ 1
	zero       = int64(0)
	one        = int64(1)
	two        = int64(2)
)

var (
	// ErrInvalidModulus is returned by New when p < 2.
	ErrInvalidModulus = errors.New("zp: modulus must be at least 2")

	// ErrNegativeExp is returned by Pow when exp < 0.
	// Use Inv followed by Pow on the inverse for negative powers.
	ErrNegativeExp = errors.New("zp: negative exponent")
)

// Field is the finite field Z_p for one fixed modulus p.
// The zero value is unusable; construct via New or Default.
// Field is a small value type: copy freely, share across goroutines.
type Field struct {
	p int64 // modulus, ≥ 2; prime by caller contract
}

// New returns the field Z_p.
// Only the cheap structural condition p ≥ 2 is validated; primality is
// the caller's responsibility (ErrInvalidModulus on p < 2).
// Complexity: O(1).
func New(p int64) (Field, error) {
	// Reject nonsense moduli early; everything downstream divides by p.
	if p < minModulus {
		return Field{}, ErrInvalidModulus
	}

	return Field{p: p}, nil
}

// Default returns Z_p for the default prime 1e9+7.
// Complexity: O(1).
func Default() Field {
	return Field{p: DefaultModulus}
}

// Modulus returns the fixed modulus p.
// Complexity: O(1).
func (f Field) Modulus() int64 {
	return f.p
}

// Norm reduces an arbitrary int64 into the canonical range [0, p−1].
// Negative inputs map to their positive residue.
// Complexity: O(1).
func (f Field) Norm(x int64) int64 {
	x %= f.p
	if x < zero {
		x += f.p
	}

	return x
}

// Add returns (a + b) mod p for canonical a, b.
// Complexity: O(1).
func (f Field) Add(a, b int64) int64 {
	s := a + b
	if s >= f.p {
		s -= f.p
	}

	return s
}

// Sub returns (a − b) mod p for canonical a, b.
// The +p shift keeps the result non-negative before reduction.
// Complexity: O(1).
func (f Field) Sub(a, b int64) int64 {
	s := a - b
	if s < zero {
		s += f.p
	}

	return s
}

// Mul returns (a · b) mod p for canonical a, b.
// Safe for any p ≤ 3_037_000_499 (√2⁶³); the default modulus qualifies.
// Complexity: O(1).
func (f Field) Mul(a, b int64) int64 {
	return a * b % f.p
}

// Pow returns base^exp mod p by repeated squaring.
// base is normalized first, so any int64 base is accepted;
// exp must be non-negative (ErrNegativeExp otherwise).
// Complexity: O(log exp).
func (f Field) Pow(base, exp int64) (int64, error) {
	// Validate the exponent domain; negative powers need an explicit Inv.
	if exp < zero {
		return zero, ErrNegativeExp
	}

	base = f.Norm(base) // bring the base into [0, p−1] once
	res := one % f.p    // p = 1 never occurs (p ≥ 2), but keep res canonical

	// Square-and-multiply: consume one exponent bit per iteration.
	for exp > zero {
		if exp%two == one {
			res = f.Mul(res, base)
		}
		base = f.Mul(base, base)
		exp /= two
	}

	return res, nil
}

// Inv returns the multiplicative inverse a⁻¹ mod p as a^(p−2),
// valid by Fermat's little theorem when p is prime and a ≢ 0 (mod p).
//
// Precondition (documented, not guarded): a ≢ 0. Calling Inv on a zero
// representative silently yields 0, which is not an inverse; the
// elimination routine in matrix.DeterminantMod never does so — it
// returns a zero determinant before touching a zero pivot.
// Complexity: O(log p).
func (f Field) Inv(a int64) int64 {
	// exp = p−2 ≥ 0 always holds for p ≥ 2, so Pow cannot fail here.
	inv, _ := f.Pow(a, f.p-two)

	return inv
}
