package samoa

import (
	"errors"
	"io"
	"math/big"
)

// MinKeyBits is the smallest accepted key size. The floor exists only to
// keep prime generation well-defined, not to suggest 16-bit keys are safe.
const MinKeyBits = 16

// maxKeyGenAttempts bounds internal resampling when a prime pair yields a
// modulus that is not invertible modulo lcm(p-1, q-1).
const maxKeyGenAttempts = 4

// PublicKey is a Schmidt-Samoa public key. N = p²q for the two secret
// primes used at generation time. Treat as immutable after construction.
type PublicKey struct {
	N *big.Int
}

// PrivateKey is a Schmidt-Samoa private key. D is the inverse of N modulo
// lcm(P-1, Q-1). Treat as immutable after construction and never expose
// outside the owning party.
type PrivateKey struct {
	PublicKey
	D, P, Q *big.Int
}

// Public returns the public half of the key.
func (priv *PrivateKey) Public() *PublicKey {
	return &priv.PublicKey
}

// GenerateKey produces a Schmidt-Samoa key pair whose modulus reaches the
// requested bit size, drawing all randomness from random. Both primes are
// generated at ceil(bits/3) bits so that n = p²q lands within two bits of
// the target and the decryption bound p·q stays derivable from n alone.
func GenerateKey(random io.Reader, bits int) (*PrivateKey, error) {
	if bits < MinKeyBits {
		return nil, errorf("GenerateKey", ErrInvalidParameter, "key size must be at least %d bits, got %d", MinKeyBits, bits)
	}

	rounds := millerRabinRounds(bits)
	primeBits := (bits + 2) / 3

	for attempt := 0; attempt < maxKeyGenAttempts; attempt++ {
		p, err := GeneratePrime(random, primeBits, rounds)
		if err != nil {
			return nil, err
		}

		q, err := GeneratePrime(random, primeBits, rounds)
		if err != nil {
			return nil, err
		}
		for q.Cmp(p) == 0 {
			if q, err = GeneratePrime(random, primeBits, rounds); err != nil {
				return nil, err
			}
		}

		n := new(big.Int).Mul(p, p)
		n.Mul(n, q)

		lambda, err := lcm(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
		if err != nil {
			return nil, err
		}

		d, err := modInverse(new(big.Int).Mod(n, lambda), lambda)
		if err != nil {
			if errors.Is(err, ErrNotInvertible) {
				// Astronomically unlikely for random primes; resample the pair.
				continue
			}
			return nil, err
		}

		return &PrivateKey{
			PublicKey: PublicKey{N: n},
			D:         d,
			P:         p,
			Q:         q,
		}, nil
	}

	return nil, errorf("GenerateKey", ErrKeyGeneration, "no invertible modulus after %d attempts", maxKeyGenAttempts)
}

// Validate re-checks the key's internal consistency: p and q are distinct
// probable primes, n = p²q, and d inverts n modulo lcm(p-1, q-1).
// Miller-Rabin bases are drawn from random.
func (priv *PrivateKey) Validate(random io.Reader) error {
	if priv.N == nil || priv.D == nil || priv.P == nil || priv.Q == nil {
		return errorf("Validate", ErrInvalidParameter, "key has nil components")
	}
	if priv.P.Cmp(priv.Q) == 0 {
		return errorf("Validate", ErrKeyGeneration, "p and q are equal")
	}

	rounds := millerRabinRounds(priv.N.BitLen())
	for _, prime := range []*big.Int{priv.P, priv.Q} {
		ok, err := IsProbablePrime(random, prime, rounds)
		if err != nil {
			return err
		}
		if !ok {
			return errorf("Validate", ErrKeyGeneration, "key factor is composite")
		}
	}

	n := new(big.Int).Mul(priv.P, priv.P)
	n.Mul(n, priv.Q)
	if n.Cmp(priv.N) != 0 {
		return errorf("Validate", ErrKeyGeneration, "modulus does not equal p²q")
	}

	lambda, err := lcm(new(big.Int).Sub(priv.P, one), new(big.Int).Sub(priv.Q, one))
	if err != nil {
		return err
	}
	check := new(big.Int).Mul(priv.D, priv.N)
	check.Mod(check, lambda)
	if check.Cmp(one) != 0 {
		return errorf("Validate", ErrKeyGeneration, "d does not invert n modulo lcm(p-1, q-1)")
	}

	return nil
}
