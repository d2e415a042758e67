// Package digits implements schoolbook arithmetic on unsigned base 10 digit
// sequences.
//
// A Digits value holds one decimal digit (0-9) per byte, most significant
// digit first. Results are always trimmed of leading zeros but never below a
// single digit, so zero is represented as Digits{0}.
package digits

import (
	"strings"

	"github.com/calebcase/packed"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("digits")

// Digits is an unsigned decimal magnitude, most significant digit first.
type Digits []byte

// Zero returns the single digit zero.
func Zero() Digits {
	return Digits{0}
}

// Parse converts a string of ASCII decimal digits.
func Parse(s string) (d Digits, err error) {
	defer Error.WrapP(&err)

	if len(s) == 0 {
		return nil, packed.Invalid.New("empty digit string")
	}

	d = make(Digits, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, packed.Invalid.New("invalid digit %q at %d", c, i)
		}

		d[i] = c - '0'
	}

	return Trim(d), nil
}

// String returns the digits as ASCII text.
func (d Digits) String() string {
	if len(d) == 0 {
		return "0"
	}

	sb := &strings.Builder{}
	sb.Grow(len(d))

	for _, v := range d {
		sb.WriteByte('0' + v)
	}

	return sb.String()
}

// Trim removes leading zeros, leaving at least one digit. The result shares
// storage with d.
func Trim(d Digits) Digits {
	for len(d) > 1 && d[0] == 0 {
		d = d[1:]
	}

	if len(d) == 0 {
		return Zero()
	}

	return d
}

// IsZero reports whether every digit is zero.
func IsZero(d Digits) bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}

	return true
}

// Len returns the number of significant digits (at least 1).
func Len(d Digits) int {
	return len(Trim(d))
}

// Truncate keeps the low-order n digits of d.
func Truncate(d Digits, n int) Digits {
	if n < 1 {
		return Zero()
	}

	if len(d) > n {
		d = d[len(d)-n:]
	}

	return Trim(d)
}

// Cmp compares the magnitudes a and b and returns -1, 0 or +1. The shorter
// sequence is treated as if left padded with zeros.
func Cmp(a, b Digits) int {
	a, b = Trim(a), Trim(b)

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}
