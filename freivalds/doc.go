// Package freivalds verifies matrix products probabilistically: is
// A·B = C, without recomputing A·B?
//
// 🚀 What is Freivalds' technique?
//
//	Recomputing the product costs O(n³). A single Freivalds trial costs
//	O(n²): draw a random witness vector r ∈ {0,1}ⁿ and compare
//
//	  A·(B·r)  ==  C·r
//
//	element-wise, three matrix–vector products in plain integer
//	arithmetic. If A·B = C exactly, the comparison holds for EVERY r —
//	a true product is never rejected. If A·B ≠ C, the difference
//	D = AB − C is a nonzero matrix and D·r = 0 for at most half of all
//	witnesses, so a wrong product slips through a single trial with
//	probability ≤ 1/2.
//
// Amplify repeats the trial k times with fresh witnesses and accepts only
// on unanimous agreement, driving the false-accept probability below 2⁻ᵏ;
// rejection by any trial is definitive (error is one-sided).
//
// ⚙️ Usage:
//
//	ok, err := freivalds.Verify(a, b, c, freivalds.WithSeed(42))
//	ok, err = freivalds.Amplify(a, b, c, 10, freivalds.WithSeed(42))
//
// All three matrices must be n×n for one common n; a mismatch surfaces as
// matrix.ErrDimensionMismatch, never as a silent verdict. Products run in
// exact int64 arithmetic — see matrix.MatVec for the overflow contract.
package freivalds
