// Package randcheck is a playground for randomized verification of
// algebraic identities — checking in O(n²) what would cost O(n³) to
// recompute, at the price of a one-sided, rapidly shrinking error.
//
// 🚀 What is randcheck?
//
//	A small, pedagogical library built around one idea: reduce a hard
//	exact question to evaluating a polynomial identity at a random point
//	over a finite field Z_p. It brings together:
//		• Finite-field primitives: modular add/sub/mul, fast exponentiation,
//		  Fermat inverses (zp)
//		• Dense integer matrices: safe accessors, products, and a modular
//		  determinant via Gaussian elimination with partial pivoting (matrix)
//		• Freivalds' technique: verify A·B = C with one random {0,1} vector
//		  (freivalds)
//		• Edmonds/Schwartz–Zippel matching: decide bipartite perfect
//		  matching from one random determinant (matching)
//		• Confidence amplification: AND/OR trial combinators that drive the
//		  one-sided error below 2⁻ᵏ or (n/p)ᵏ (amplify)
//
// ✨ Why randcheck?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest error bounds – every verdict documents its error direction
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic on demand – inject a seeded RNG, replay any run
//
// Under the hood, everything is organized under five subpackages:
//
//	zp/        — arithmetic and uniform sampling over Z_p (default p = 1e9+7)
//	matrix/    — row-major int64 Dense, MatVec/Mul kernels, DeterminantMod
//	amplify/   — AllOf/AnyOf repetition of one-sided probabilistic trials
//	freivalds/ — randomized verification of matrix products
//	matching/  — randomized bipartite perfect-matching test
//
// Quick taste:
//
//	ok, err := freivalds.Verify(a, b, c, freivalds.WithSeed(42))
//
//	returns true on every call when A·B = C exactly, and false with
//	probability ≥ 1/2 per trial otherwise — repeat k times via
//	freivalds.Amplify to push the false-accept rate below 2⁻ᵏ.
//
// Dive into the per-package docs for the algorithms, invariants, and the
// exact probabilistic guarantees of each verifier.
//
//	go get github.com/katalvlaran/randcheck
package randcheck
