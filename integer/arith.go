package integer

import (
	"github.com/calebcase/packed/digits"
)

// IsZero reports whether b has zero magnitude, regardless of its sign.
func (b Block) IsZero() bool {
	return digits.IsZero(b.Value)
}

// Sign returns -1, 0 or +1.
func (b Block) Sign() int {
	switch {
	case b.IsZero():
		return 0
	case b.Negative:
		return -1
	}

	return 1
}

// Neg returns -b.
func (b Block) Neg() Block {
	return New(!b.Negative, b.Value)
}

// Abs returns |b|.
func (b Block) Abs() Block {
	return New(false, b.Value)
}

// Add returns b + o.
func (b Block) Add(o Block) Block {
	if b.Negative == o.Negative {
		return New(b.Negative, digits.Add(b.Value, o.Value))
	}

	// Signs differ: the larger magnitude decides the sign.
	switch digits.Cmp(b.Value, o.Value) {
	case 0:
		return Zero()
	case 1:
		return New(b.Negative, digits.Sub(b.Value, o.Value))
	}

	return New(o.Negative, digits.Sub(o.Value, b.Value))
}

// Sub returns b - o.
func (b Block) Sub(o Block) Block {
	return b.Add(Block{
		Value:    o.Value,
		Negative: !o.Negative,
	})
}

// Mul returns b * o.
func (b Block) Mul(o Block) Block {
	return New(b.Negative != o.Negative, digits.Mul(b.Value, o.Value))
}

// QuoRem returns the quotient truncated toward zero and the remainder,
// which carries the sign of b, such that b = q*o + r. A zero o is a
// DivideByZero error.
func (b Block) QuoRem(o Block) (q, r Block, err error) {
	qv, rv, err := digits.QuoRem(b.Value, o.Value)
	if err != nil {
		return Block{}, Block{}, Error.Wrap(err)
	}

	return New(b.Negative != o.Negative, qv), New(b.Negative, rv), nil
}

// Quo returns b / o truncated toward zero.
func (b Block) Quo(o Block) (q Block, err error) {
	q, _, err = b.QuoRem(o)

	return q, err
}

// Rem returns the remainder of b / o with the sign of b.
func (b Block) Rem(o Block) (r Block, err error) {
	_, r, err = b.QuoRem(o)

	return r, err
}

// Cmp compares a and b and returns -1, 0 or +1. Zero equals zero whatever
// the stored sign.
func Cmp(a, b Block) int {
	as, bs := a.Sign(), b.Sign()

	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	case as == 0:
		return 0
	}

	c := digits.Cmp(a.Value, b.Value)
	if as < 0 {
		return -c
	}

	return c
}

// Cmp compares b to o; see the package level Cmp.
func (b Block) Cmp(o Block) int {
	return Cmp(b, o)
}
