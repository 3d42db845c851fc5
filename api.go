// Package nobrain derives site passwords from a master secret without storing them.
//
// The same master secret, optional secondary secret, domain and username
// always produce the same password under the same configuration. Nothing
// is persisted and nothing is random.
//
// # Derivation
//
// Compose concatenates the inputs in a fixed order with no separators.
// The Engine then loops:
//
//  1. digest = Transform(candidate, key)
//  2. encoded = Alphabet.Encode(digest)
//  3. if encoded holds a lowercase letter, an uppercase letter, a digit and
//     one policy symbol, return it
//  4. otherwise candidate = encoded and repeat, up to MaxIterations times
//
// Feeding the previous encoding back in keeps the result a pure function of
// the original inputs: replaying them retraces the same chain.
//
// # Basic Usage
//
//	res, err := nobrain.DerivePassword(ctx, nobrain.Request{
//	    Domain: "example.com",
//	    Master: master,
//	})
//	// res.Password = "pCgK5h2y1+4SxGAnokiMwHa8:oHCDKc:H+Vup4oG3uL", res.Iterations = 1
//
// # Transforms
//
// Built-in transforms:
//
//   - PBKDF2() - PBKDF2-HMAC-SHA256, master secret as salt (reference)
//   - Argon2() - Argon2id, master secret as salt
//   - SHA256() - plain iterated SHA-256, master secret embedded in the input
//   - BLAKE3() - plain iterated BLAKE3-256, master secret embedded in the input
//
// Any type implementing Transform can be plugged in with WithTransform.
//
// # Alphabet
//
// DefaultAlphabet has 64 symbols spanning four classes. Its only punctuation
// is "$!:+-.", so some digests miss the symbol class and need another round.
//
// # Errors
//
// A derivation that exhausts the ceiling returns a *DerivationError wrapping
// ErrExhausted. An alphabet lacking a required class fails at the first
// attempt with ErrUnreachablePolicy, which also matches ErrExhausted.
package nobrain
