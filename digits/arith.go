package digits

import (
	"github.com/calebcase/packed"
)

// at returns the digit i places from the least significant end of d, or 0
// past the most significant digit.
func at(d Digits, i int) byte {
	if i >= len(d) {
		return 0
	}

	return d[len(d)-1-i]
}

// Add returns a + b.
func Add(a, b Digits) Digits {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	z := make(Digits, n+1)

	var carry byte
	for i := 0; i < n; i++ {
		s := at(a, i) + at(b, i) + carry

		carry = 0
		if s > 9 {
			s -= 10
			carry = 1
		}

		z[n-i] = s
	}
	z[0] = carry

	return Trim(z)
}

// Sub returns a - b. It panics if b is larger than a; callers order the
// operands by Cmp first.
func Sub(a, b Digits) Digits {
	if Cmp(a, b) < 0 {
		panic("digits: negative difference")
	}

	n := len(a)
	z := make(Digits, n)

	var borrow byte
	for i := 0; i < n; i++ {
		x := at(a, i)
		y := at(b, i) + borrow

		borrow = 0
		if x < y {
			x += 10
			borrow = 1
		}

		z[n-1-i] = x - y
	}

	return Trim(z)
}

// Mul returns a * b.
func Mul(a, b Digits) Digits {
	a, b = Trim(a), Trim(b)
	if IsZero(a) || IsZero(b) {
		return Zero()
	}

	// Accumulate column sums least significant first, then propagate the
	// carries once. Each column holds at most 81*min(len(a), len(b)).
	cols := make([]int, len(a)+len(b))
	for i := 0; i < len(a); i++ {
		x := int(at(a, i))
		if x == 0 {
			continue
		}

		for j := 0; j < len(b); j++ {
			cols[i+j] += x * int(at(b, j))
		}
	}

	z := make(Digits, len(cols))

	carry := 0
	for k, c := range cols {
		c += carry
		z[len(z)-1-k] = byte(c % 10)
		carry = c / 10
	}

	return Trim(z)
}

// mulDigit returns a * m for a single digit m.
func mulDigit(a Digits, m byte) Digits {
	if m == 0 {
		return Zero()
	}

	z := make(Digits, len(a)+1)

	var carry byte
	for i := 0; i < len(a); i++ {
		p := at(a, i)*m + carry
		z[len(z)-1-i] = p % 10
		carry = p / 10
	}
	z[0] = carry

	return Trim(z)
}

// QuoRem returns the quotient and remainder of a / b using long division.
// It returns a DivideByZero error when b is zero.
func QuoRem(a, b Digits) (q, r Digits, err error) {
	a, b = Trim(a), Trim(b)

	if IsZero(b) {
		return nil, nil, packed.DivideByZero.New("%s / 0", a)
	}

	if Cmp(a, b) < 0 {
		return Zero(), append(Digits(nil), a...), nil
	}

	// multiples[m] = b * m, shared by every quotient digit.
	var multiples [10]Digits
	for m := range multiples {
		multiples[m] = mulDigit(b, byte(m))
	}

	q = make(Digits, len(a))
	r = Zero()

	for i, d := range a {
		// Bring down the next digit.
		if IsZero(r) {
			r = Digits{d}
		} else {
			r = append(append(Digits(nil), r...), d)
		}

		qd := estimate(r, b)
		for Cmp(multiples[qd], r) > 0 {
			qd--
		}

		q[i] = qd
		if qd > 0 {
			r = Sub(r, multiples[qd])
		}
	}

	return Trim(q), r, nil
}

// estimate returns an upper bound for the quotient digit r / b, where r < 10
// * b. It divides the leading one or two digits of r by the leading digit of
// b and clamps the result to 9.
func estimate(r, b Digits) byte {
	switch {
	case len(r) < len(b):
		return 0
	case len(r) == len(b):
		return r[0] / b[0]
	}

	e := (int(r[0])*10 + int(r[1])) / int(b[0])
	if e > 9 {
		e = 9
	}

	return byte(e)
}
