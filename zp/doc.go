// Package zp implements arithmetic and uniform sampling over the finite
// field Z_p of integers modulo a prime p.
//
// 🚀 What is zp?
//
//	The arithmetic bedrock for every randomized verifier in randcheck.
//	Field holds one fixed modulus and exposes closed operations on
//	canonical representatives in [0, p−1]:
//	  • Add / Sub / Mul — overflow-safe modular arithmetic
//	  • Pow             — exponentiation by repeated squaring, O(log exp)
//	  • Inv             — multiplicative inverse via Fermat's little theorem
//	  • Norm            — reduce an arbitrary int64 into [0, p−1]
//
// ✨ Key properties:
//   - Every result is reduced into [0, p−1] before it is returned.
//   - p is assumed prime and is NOT checked for primality; Inv is valid
//     only under that assumption (documented precondition, see Inv).
//   - The default modulus is 1_000_000_007, large enough that products of
//     two representatives never overflow int64.
//
// Sampler draws uniform field elements from an injected *rand.Rand:
// Bit() over {0,1}, NonZero() over [1, p−1], Uniform() over [0, p−1].
// Each call consumes fresh randomness; there is no memoization and no
// correlation across calls. Seeding policy belongs to the caller — pass
// one explicit, seeded source per process or per test, never reseed per
// call from a coarse clock.
//
// ⚙️ Usage:
//
//	f := zp.Default()                      // Z_{1e9+7}
//	inv := f.Inv(42)                       // 42⁻¹ mod p
//	s, _ := zp.NewSampler(f, rand.New(rand.NewSource(1)))
//	x := s.NonZero()                       // uniform in [1, p−1]
//
// See the verifier packages (freivalds, matching) for how Field and
// Sampler compose into complete probabilistic checks.
package zp
