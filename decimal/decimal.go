package decimal

import (
	"github.com/calebcase/packed"
	"github.com/calebcase/packed/digits"
	"github.com/calebcase/packed/integer"
	"github.com/calebcase/packed/layout"
)

// Add stores a + b in dst.
func Add(dst, a, b layout.Region, checked bool) error {
	return binary(dst, a, b, checked, func(x, y integer.Block) (integer.Block, error) {
		return x.Add(y), nil
	})
}

// Sub stores a - b in dst.
func Sub(dst, a, b layout.Region, checked bool) error {
	return binary(dst, a, b, checked, func(x, y integer.Block) (integer.Block, error) {
		return x.Sub(y), nil
	})
}

// Mul stores a * b in dst.
func Mul(dst, a, b layout.Region, checked bool) error {
	return binary(dst, a, b, checked, func(x, y integer.Block) (integer.Block, error) {
		return x.Mul(y), nil
	})
}

// Quo stores a / b, truncated toward zero, in dst. A zero b is a
// DivideByZero error whatever the value of checked.
func Quo(dst, a, b layout.Region, checked bool) error {
	return binary(dst, a, b, checked, func(x, y integer.Block) (integer.Block, error) {
		return x.Quo(y)
	})
}

// Rem stores the remainder of a / b in dst. The remainder has the sign of a.
// A zero b is a DivideByZero error whatever the value of checked.
func Rem(dst, a, b layout.Region, checked bool) error {
	return binary(dst, a, b, checked, func(x, y integer.Block) (integer.Block, error) {
		return x.Rem(y)
	})
}

// Neg stores -src in dst.
func Neg(dst, src layout.Region, checked bool) error {
	return unary(dst, src, checked, func(x integer.Block) (integer.Block, error) {
		return x.Neg(), nil
	})
}

// Abs stores |src| in dst.
func Abs(dst, src layout.Region, checked bool) error {
	return unary(dst, src, checked, func(x integer.Block) (integer.Block, error) {
		return x.Abs(), nil
	})
}

// Move copies src into dst, converting between precisions. Narrowing
// follows the same rules as arithmetic: Overflow when checked, truncation
// of the high-order digits otherwise.
func Move(dst, src layout.Region, checked bool) error {
	return unary(dst, src, checked, func(x integer.Block) (integer.Block, error) {
		return x, nil
	})
}

// ShiftLeft stores src * 10^n in dst.
func ShiftLeft(dst, src layout.Region, n int, checked bool) error {
	return unary(dst, src, checked, func(x integer.Block) (integer.Block, error) {
		if n < 0 {
			return integer.Block{}, packed.Invalid.New("negative shift %d", n)
		}

		value := append(append(digits.Digits(nil), x.Value...), make(digits.Digits, n)...)

		return integer.New(x.Negative, value), nil
	})
}

// ShiftRight stores src / 10^n in dst, truncated toward zero. With round set
// the magnitude is rounded half up on the last dropped digit.
func ShiftRight(dst, src layout.Region, n int, round, checked bool) error {
	return unary(dst, src, checked, func(x integer.Block) (integer.Block, error) {
		if n < 0 {
			return integer.Block{}, packed.Invalid.New("negative shift %d", n)
		}

		value := digits.Trim(x.Value)
		if n > len(value) {
			return integer.Zero(), nil
		}

		kept := append(digits.Digits(nil), value[:len(value)-n]...)
		if round && n > 0 && value[len(value)-n] >= 5 {
			kept = digits.Add(kept, digits.Digits{1})
		}

		return integer.New(x.Negative, kept), nil
	})
}

// Validate reports the first Format error in r, if any.
func Validate(r layout.Region) (err error) {
	defer Error.WrapP(&err)

	return layout.Validate(r)
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than
// b. Both regions are always bounds checked but otherwise decoded without
// error checking; zero compares equal to zero whatever its sign nibble.
func Compare(a, b layout.Region) (int, error) {
	return compare(a, b)
}

// Equal reports whether a == b.
func Equal(a, b layout.Region) (bool, error) {
	c, err := compare(a, b)
	return err == nil && c == 0, err
}

// NotEqual reports whether a != b.
func NotEqual(a, b layout.Region) (bool, error) {
	c, err := compare(a, b)
	return err == nil && c != 0, err
}

// Less reports whether a < b.
func Less(a, b layout.Region) (bool, error) {
	c, err := compare(a, b)
	return err == nil && c < 0, err
}

// LessOrEqual reports whether a <= b.
func LessOrEqual(a, b layout.Region) (bool, error) {
	c, err := compare(a, b)
	return err == nil && c <= 0, err
}

// Greater reports whether a > b.
func Greater(a, b layout.Region) (bool, error) {
	c, err := compare(a, b)
	return err == nil && c > 0, err
}

// GreaterOrEqual reports whether a >= b.
func GreaterOrEqual(a, b layout.Region) (bool, error) {
	c, err := compare(a, b)
	return err == nil && c >= 0, err
}
