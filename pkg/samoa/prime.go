package samoa

import (
	"crypto/rand"
	"io"
	"math/big"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// millerRabinRounds returns the Miller-Rabin round count for a target key
// size. Larger keys use fewer rounds per candidate: the false-positive
// probability of a single round already shrinks as candidates grow, while
// small keys need more rounds to compensate.
func millerRabinRounds(keyBits int) int {
	switch {
	case keyBits <= 512:
		return 64
	case keyBits <= 1024:
		return 32
	case keyBits <= 1536:
		return 16
	default:
		return 8
	}
}

// IsProbablePrime reports whether n is a probable prime after the given
// number of Miller-Rabin rounds, drawing bases from random. A composite is
// wrongly accepted with probability at most 4^(-rounds).
func IsProbablePrime(random io.Reader, n *big.Int, rounds int) (bool, error) {
	if rounds < 1 {
		return false, errorf("IsProbablePrime", ErrInvalidParameter, "rounds must be positive, got %d", rounds)
	}

	if n.Cmp(two) < 0 {
		return false, nil
	}
	if n.Cmp(three) <= 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	// Factor n-1 = 2^s * d with d odd.
	nm1 := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nm1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	// Bases are drawn uniformly from [2, n-2].
	baseMax := new(big.Int).Sub(n, three)
	x := new(big.Int)

	for i := 0; i < rounds; i++ {
		a, err := rand.Int(random, baseMax)
		if err != nil {
			return false, errorf("IsProbablePrime", err, "drawing random base")
		}
		a.Add(a, two)

		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nm1) == 0 {
			continue
		}

		witness := true
		for r := 1; r < s; r++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nm1) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false, nil
		}
	}

	return true, nil
}

// GeneratePrime returns a probable prime of exactly bits bits, drawing
// candidates and Miller-Rabin bases from random. The top and bottom bits of
// every candidate are forced to 1 so the bit length and oddness hold.
func GeneratePrime(random io.Reader, bits, rounds int) (*big.Int, error) {
	if bits < 2 {
		return nil, errorf("GeneratePrime", ErrInvalidParameter, "bits must be at least 2, got %d", bits)
	}
	if rounds < 1 {
		return nil, errorf("GeneratePrime", ErrInvalidParameter, "rounds must be positive, got %d", rounds)
	}

	buf := make([]byte, (bits+7)/8)
	excess := uint(len(buf)*8 - bits)
	p := new(big.Int)

	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, errorf("GeneratePrime", err, "reading random candidate")
		}

		buf[0] &= 0xFF >> excess
		buf[0] |= 0x80 >> excess
		buf[len(buf)-1] |= 1

		p.SetBytes(buf)
		ok, err := IsProbablePrime(random, p, rounds)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}
}
