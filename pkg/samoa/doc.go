// Package samoa implements the Schmidt-Samoa public-key cryptosystem.
//
// Schmidt-Samoa is an asymmetric scheme whose security rests on the
// difficulty of factoring n = p²q for two large secret primes p and q.
// The construction is related to RSA and Rabin:
//
//   - Public key: n = p²q
//   - Private key: d = n⁻¹ mod lcm(p−1, q−1), together with p and q
//   - Encryption: c = mⁿ mod n
//   - Decryption: m = cᵈ mod pq
//
// Example key generation and round trip:
//
//	priv, err := samoa.GenerateKey(rand.Reader, 1024)
//	if err != nil {
//		// handle
//	}
//	c, err := samoa.Encrypt(priv.Public(), big.NewInt(12345))
//	m, err := samoa.Decrypt(priv, c)
//
// Text messages of any length are handled by EncryptLargeString and
// DecryptLargeString, which split the byte representation into
// modulus-sized chunks and encrypt each chunk independently.
//
// # Security Considerations
//
// - The io.Reader supplied to GenerateKey, GeneratePrime and
//   IsProbablePrime must be a cryptographically secure source such as
//   crypto/rand.Reader. Predictable primes fully break the cryptosystem.
//
// - Plaintext integers must stay below p·q, the decryption modulus. The
//   string helpers enforce a public bound that guarantees this; Encrypt
//   on raw integers only checks against n, so callers encoding their own
//   integers must respect the tighter bound.
//
// - Arithmetic is not constant-time. Do not use this package where
//   timing side channels are part of the threat model.
//
// All operations are pure functions over their arguments and are safe for
// concurrent use as long as the supplied reader is.
package samoa
