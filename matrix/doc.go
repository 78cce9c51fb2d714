// Package matrix offers dense integer matrices and the two linear-algebra
// kernels behind randcheck's verifiers.
//
// The matrix package provides:
//
//   - Dense, a row-major int64 matrix with safe At/Set accessors and
//     strict shape validation — overflow-free exact storage for the
//     integer data Freivalds' technique operates on.
//   - MatVec and Mul, deterministic O(n²)/O(n³) products in plain integer
//     arithmetic (see the overflow contract on MatVec).
//   - DeterminantMod, a destructive-on-scratch Gaussian elimination over
//     Z_p with partial pivoting and explicit sign tracking — the
//     algorithmic core of the bipartite perfect-matching test.
//
// All functions fail fast with sentinel errors on dimension mismatches;
// a zero determinant is a legitimate result, never an error.
//
// Dense matrices are best for the small-to-medium n this library targets,
// where O(n²) memory and exact integer entries are the point.
//
// See the examples in freivalds and matching for usage patterns.
package matrix
