package samoa

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// toyKey builds the textbook p=61, q=53 keypair by hand: n = 61²·53 = 197213,
// lcm(60, 52) = 780, d = (n mod 780)⁻¹ mod 780. Plaintexts must stay below
// p·q = 3233.
func toyKey(t *testing.T) *PrivateKey {
	t.Helper()

	p, q := big.NewInt(61), big.NewInt(53)
	n := new(big.Int).Mul(p, p)
	n.Mul(n, q)
	require.EqualValues(t, 197213, n.Int64())

	lambda, err := lcm(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
	require.NoError(t, err)
	require.EqualValues(t, 780, lambda.Int64())

	d, err := modInverse(new(big.Int).Mod(n, lambda), lambda)
	require.NoError(t, err)

	return &PrivateKey{PublicKey: PublicKey{N: n}, D: d, P: p, Q: q}
}

func TestToyScenarioRoundTrip(t *testing.T) {
	priv := toyKey(t)

	m := big.NewInt(1234)
	c, err := Encrypt(priv.Public(), m)
	require.NoError(t, err)
	require.NotZero(t, c.Cmp(m), "ciphertext must differ from plaintext")

	got, err := Decrypt(priv, c)
	require.NoError(t, err)
	require.Zero(t, got.Cmp(m))
}

func TestToyScenarioAllResidues(t *testing.T) {
	priv := toyKey(t)
	pq := new(big.Int).Mul(priv.P, priv.Q)

	// Every residue below p·q must survive the round trip.
	for m := int64(0); m < 3233; m += 97 {
		msg := big.NewInt(m)
		c, err := Encrypt(priv.Public(), msg)
		require.NoError(t, err)

		got, err := Decrypt(priv, c)
		require.NoError(t, err)
		require.Zero(t, got.Cmp(msg), "m = %d", m)
		require.True(t, msg.Cmp(pq) < 0)
	}
}

func TestRoundTripGeneratedKeys(t *testing.T) {
	for _, bits := range []int{64, 256, 1024} {
		priv, err := GenerateKey(rand.Reader, bits)
		require.NoError(t, err)

		pq := new(big.Int).Mul(priv.P, priv.Q)
		for i := 0; i < 8; i++ {
			m, err := rand.Int(rand.Reader, pq)
			require.NoError(t, err)

			c, err := Encrypt(priv.Public(), m)
			require.NoError(t, err)

			got, err := Decrypt(priv, c)
			require.NoError(t, err)
			require.Zero(t, got.Cmp(m), "key bits = %d", bits)
		}
	}
}

func TestEncryptBoundary(t *testing.T) {
	priv, err := GenerateKey(rand.Reader, 64)
	require.NoError(t, err)
	pub := priv.Public()

	_, err = Encrypt(pub, pub.N)
	require.ErrorIs(t, err, ErrMessageTooLarge)

	_, err = Encrypt(pub, new(big.Int).Sub(pub.N, one))
	require.NoError(t, err)
}

func TestEncryptRejectsNegative(t *testing.T) {
	priv := toyKey(t)
	_, err := Encrypt(priv.Public(), big.NewInt(-1))
	require.ErrorIs(t, err, ErrMessageTooLarge)
}

func TestDecryptRejectsNegative(t *testing.T) {
	priv := toyKey(t)
	_, err := Decrypt(priv, big.NewInt(-1))
	require.ErrorIs(t, err, ErrInvalidParameter)
}
