package samoa

import "math/big"

// gcd returns the greatest common divisor of a and b without mutating either.
func gcd(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}

// lcm returns the least common multiple of a and b.
func lcm(a, b *big.Int) (*big.Int, error) {
	if a.Sign() == 0 && b.Sign() == 0 {
		return nil, errorf("lcm", ErrInvalidParameter, "lcm(0, 0) is undefined")
	}
	g := gcd(a, b)
	l := new(big.Int).Mul(a, b)
	l.Abs(l)
	return l.Div(l, g), nil
}

// modInverse returns d with 0 <= d < m and a*d ≡ 1 (mod m), using the
// iterative Extended Euclidean Algorithm. The loop accumulates Bézout
// coefficients so call depth stays constant no matter how large the
// operands are. Returns ErrNotInvertible when gcd(a, m) != 1.
func modInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, errorf("modInverse", ErrInvalidParameter, "modulus must be positive")
	}

	r0 := new(big.Int).Mod(a, m)
	r1 := new(big.Int).Set(m)
	s0 := big.NewInt(1)
	s1 := big.NewInt(0)

	q := new(big.Int)
	tmp := new(big.Int)
	for r1.Sign() != 0 {
		q.QuoRem(r0, r1, tmp)
		r0, r1, tmp = r1, tmp, r0

		tmp2 := new(big.Int).Mul(q, s1)
		tmp2.Sub(s0, tmp2)
		s0, s1 = s1, tmp2
	}

	if r0.Cmp(one) != 0 {
		return nil, errorf("modInverse", ErrNotInvertible, "gcd(a, m) = %s", r0)
	}
	return s0.Mod(s0, m), nil
}
