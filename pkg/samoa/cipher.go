package samoa

import "math/big"

// Encrypt applies the Schmidt-Samoa transform c = mⁿ mod n. The message
// must satisfy 0 <= m < n; anything else fails with ErrMessageTooLarge.
//
// Correct decryption additionally requires m < p·q, the decryption
// modulus, which is strictly smaller than n and not derivable from the
// public key. The string helpers enforce a safe public bound; callers
// encrypting raw integers must respect the p·q bound themselves.
func Encrypt(pub *PublicKey, m *big.Int) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return nil, errorf("Encrypt", ErrMessageTooLarge, "message must be in [0, n)")
	}
	return new(big.Int).Exp(m, pub.N, pub.N), nil
}

// Decrypt recovers m = cᵈ mod p·q from a ciphertext produced with the
// paired public key.
func Decrypt(priv *PrivateKey, c *big.Int) (*big.Int, error) {
	if c.Sign() < 0 {
		return nil, errorf("Decrypt", ErrInvalidParameter, "ciphertext must be non-negative")
	}
	pq := new(big.Int).Mul(priv.P, priv.Q)
	return new(big.Int).Exp(c, priv.D, pq), nil
}
