// Package amplify drives the one-sided error of a probabilistic trial
// down through independent repetition.
//
// 🚀 What is amplify?
//
//	A verifier with one-sided error can only be wrong in one direction,
//	so repetition combines differently depending on which direction that
//	is — and the combination rule is part of the contract:
//
//	  • AllOf — for trials that may falsely accept (Freivalds): declare
//	    true only if ALL k trials agree; one false is a certificate and
//	    stops early. False-accept probability falls from ≤ 1/2 to ≤ 2⁻ᵏ.
//	  • AnyOf — for trials that may falsely reject (matching): declare
//	    true as soon as ANY trial succeeds; one true is a certificate and
//	    stops early. False-reject probability falls from ≤ n/p to ≤ (n/p)ᵏ.
//
// Trials must be mutually independent: fresh randomness per invocation,
// no shared mutable state between invocations. Execution is sequential;
// independence would permit running trials in parallel, but the
// sequential baseline meets every guarantee here.
//
// ⚙️ Usage:
//
//	equal, err := amplify.AllOf(10, func() (bool, error) {
//	    return freivalds.Verify(a, b, c, freivalds.WithRand(rng))
//	})
//
// See freivalds.Amplify and matching.HasPerfectMatchingAmplified for the
// packaged compositions.
package amplify
