package samoa

import (
	"math/big"
	"unicode/utf8"
)

// EncodeText interprets the text's UTF-8 bytes as a big-endian unsigned
// integer. The empty string encodes to zero.
func EncodeText(s string) *big.Int {
	return new(big.Int).SetBytes([]byte(s))
}

// DecodeText is the inverse of EncodeText. Fails with ErrDecoding when the
// recovered bytes are not valid UTF-8.
func DecodeText(m *big.Int) (string, error) {
	if m.Sign() < 0 {
		return "", errorf("DecodeText", ErrInvalidParameter, "integer must be non-negative")
	}
	b := m.Bytes()
	if !utf8.Valid(b) {
		return "", errorf("DecodeText", ErrDecoding, "recovered bytes are not valid UTF-8")
	}
	return string(b), nil
}

// ChunkCapacity returns the number of message bytes that can be encrypted
// under pub with a guaranteed round trip. The decryption modulus p·q is
// secret, but for keys from GenerateKey both primes carry ceil(bits/3)
// bits, so p·q ≥ 2^(2·BitLen(n)/3 − 2); capping chunks one byte below that
// keeps every encoded chunk strictly inside the decryption bound.
func ChunkCapacity(pub *PublicKey) int {
	return (2*pub.N.BitLen()/3 - 1) / 8
}

// EncryptString encrypts a text that fits in a single block. Fails with
// ErrMessageTooLarge when the text exceeds ChunkCapacity; use
// EncryptLargeString for longer texts.
func EncryptString(pub *PublicKey, s string) (*big.Int, error) {
	if len(s) > ChunkCapacity(pub) {
		return nil, errorf("EncryptString", ErrMessageTooLarge, "%d bytes exceed the %d-byte capacity", len(s), ChunkCapacity(pub))
	}
	return Encrypt(pub, EncodeText(s))
}

// DecryptString reverses EncryptString.
func DecryptString(priv *PrivateKey, c *big.Int) (string, error) {
	m, err := Decrypt(priv, c)
	if err != nil {
		return "", err
	}
	return DecodeText(m)
}

// EncryptLargeString splits the text into ChunkCapacity-sized byte
// segments and encrypts each independently. Chunk order is significant:
// decryption reassembles in sequence, so transport and storage must
// preserve it.
func EncryptLargeString(pub *PublicKey, s string) ([]*big.Int, error) {
	capacity := ChunkCapacity(pub)
	if capacity < 1 {
		return nil, errorf("EncryptLargeString", ErrMessageTooLarge, "modulus too small to hold any text")
	}

	data := []byte(s)
	chunks := make([]*big.Int, 0, (len(data)+capacity-1)/capacity)
	for start := 0; start < len(data); start += capacity {
		end := start + capacity
		if end > len(data) {
			end = len(data)
		}
		c, err := Encrypt(pub, new(big.Int).SetBytes(data[start:end]))
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}
	return chunks, nil
}

// DecryptLargeString reverses EncryptLargeString: each chunk is decrypted
// and decoded to bytes, all chunks but the last padded back to the chunk
// width, and the concatenation validated as UTF-8.
func DecryptLargeString(priv *PrivateKey, chunks []*big.Int) (string, error) {
	capacity := ChunkCapacity(priv.Public())
	if capacity < 1 {
		return "", errorf("DecryptLargeString", ErrMessageTooLarge, "modulus too small to hold any text")
	}

	var data []byte
	for i, c := range chunks {
		m, err := Decrypt(priv, c)
		if err != nil {
			return "", err
		}
		if m.BitLen() > capacity*8 {
			return "", errorf("DecryptLargeString", ErrDecoding, "chunk %d exceeds the chunk width", i)
		}
		if i < len(chunks)-1 {
			data = append(data, m.FillBytes(make([]byte, capacity))...)
		} else {
			data = append(data, m.Bytes()...)
		}
	}

	if !utf8.Valid(data) {
		return "", errorf("DecryptLargeString", ErrDecoding, "recovered bytes are not valid UTF-8")
	}
	return string(data), nil
}
