// Package matching decides bipartite perfect matching probabilistically,
// via Edmonds' theorem and the Schwartz–Zippel lemma.
//
// 🚀 What is the randomized matching test?
//
//	Encode an n×n bipartite graph as its Edmonds matrix: a symbolic
//	matrix with an independent variable x_ij wherever left-vertex i
//	connects to right-vertex j, and 0 elsewhere. Its determinant — a
//	polynomial of total degree ≤ n — is identically zero exactly when the
//	graph has NO perfect matching.
//
//	One trial substitutes each variable with a fresh uniform NONZERO
//	element of Z_p and computes the determinant mod p by Gaussian
//	elimination:
//	  • no perfect matching ⇒ the polynomial is identically zero, every
//	    evaluation yields 0, the verdict false is deterministic;
//	  • a perfect matching exists ⇒ the polynomial is nonzero, and a
//	    random evaluation vanishes (false negative) with probability
//	    ≤ n/p — about 3·10⁻⁹ for n = 3 under the default p = 1e9+7.
//
// HasPerfectMatchingAmplified repeats trials and accepts on the FIRST
// nonzero determinant: a nonzero evaluation is a certificate, so error is
// one-sided toward false negatives and k trials shrink it to ≤ (n/p)ᵏ.
//
// ⚙️ Usage:
//
//	adj, _ := matrix.FromRows([][]int64{{1, 1, 0}, {0, 0, 1}, {0, 1, 1}})
//	ok, err := matching.HasPerfectMatching(adj, matching.WithSeed(42))
//	ok, err = matching.HasPerfectMatchingAmplified(adj, 5, matching.WithSeed(42))
//
// The adjacency matrix must be square with 0/1 entries; violations
// surface as matrix.ErrDimensionMismatch / matrix.ErrBadEntry. The
// modulus defaults to 1e9+7 and can be overridden with WithModulus — it
// must be prime and large relative to n for the n/p bound to mean much.
package matching
