package samoa

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	priv, err := GenerateKey(rand.Reader, 256)
	require.NoError(t, err)

	require.NotZero(t, priv.P.Cmp(priv.Q), "p and q must be distinct")

	n := new(big.Int).Mul(priv.P, priv.P)
	n.Mul(n, priv.Q)
	require.Zero(t, n.Cmp(priv.N), "modulus must equal p²q")

	// The modulus reaches the requested size, within the two bits of slack
	// left by prime rounding.
	require.GreaterOrEqual(t, priv.N.BitLen(), 256)
	require.LessOrEqual(t, priv.N.BitLen(), 258)

	require.NoError(t, priv.Validate(rand.Reader))
}

func TestGenerateKeyInverse(t *testing.T) {
	priv, err := GenerateKey(rand.Reader, 128)
	require.NoError(t, err)

	lambda, err := lcm(new(big.Int).Sub(priv.P, one), new(big.Int).Sub(priv.Q, one))
	require.NoError(t, err)

	check := new(big.Int).Mul(priv.D, priv.N)
	check.Mod(check, lambda)
	require.Zero(t, check.Cmp(one), "d·n must be 1 mod lcm(p-1, q-1)")
}

func TestGenerateKeyPrimality(t *testing.T) {
	priv, err := GenerateKey(rand.Reader, 64)
	require.NoError(t, err)

	for _, prime := range []*big.Int{priv.P, priv.Q} {
		ok, err := IsProbablePrime(rand.Reader, prime, millerRabinRounds(64))
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestGenerateKeyRejectsSmallBits(t *testing.T) {
	for _, bits := range []int{-1, 0, 8, MinKeyBits - 1} {
		_, err := GenerateKey(rand.Reader, bits)
		require.ErrorIs(t, err, ErrInvalidParameter, "bits = %d", bits)
	}
}

func TestValidateDetectsTampering(t *testing.T) {
	priv, err := GenerateKey(rand.Reader, 64)
	require.NoError(t, err)

	tampered := &PrivateKey{
		PublicKey: PublicKey{N: new(big.Int).Add(priv.N, one)},
		D:         priv.D,
		P:         priv.P,
		Q:         priv.Q,
	}
	require.ErrorIs(t, tampered.Validate(rand.Reader), ErrKeyGeneration)

	equalPrimes := &PrivateKey{
		PublicKey: priv.PublicKey,
		D:         priv.D,
		P:         priv.P,
		Q:         priv.P,
	}
	require.ErrorIs(t, equalPrimes.Validate(rand.Reader), ErrKeyGeneration)
}
