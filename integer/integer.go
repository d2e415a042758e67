package integer

import (
	"math"
	"math/big"
	"strings"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"

	"github.com/calebcase/packed"
	"github.com/calebcase/packed/digits"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed decimal integer.
//
// Value holds the magnitude one digit per byte, most significant first. A
// Block returned by this package is canonical: Value has no leading zeros
// (but at least one digit) and zero is never Negative.
type Block struct {
	Value    digits.Digits
	Negative bool
}

// New returns the canonical block for the given sign and magnitude.
func New(negative bool, value digits.Digits) Block {
	b := Block{
		Value:    digits.Trim(value),
		Negative: negative,
	}

	// Note: divide and remainder may produce a negative zero, which is
	// never a valid result.
	if digits.IsZero(b.Value) {
		b.Negative = false
	}

	return b
}

// Zero returns positive zero.
func Zero() Block {
	return Block{Value: digits.Zero()}
}

// FromInt returns the block for any Go integer.
func FromInt[T constraints.Integer](v T) Block {
	if v < 0 {
		return FromBigInt(big.NewInt(int64(v)))
	}

	return FromBigInt(new(big.Int).SetUint64(uint64(v)))
}

// FromBigInt returns the block for i.
func FromBigInt(i *big.Int) Block {
	text := i.Text(10)

	negative := strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")

	value := make(digits.Digits, len(text))
	for k := 0; k < len(text); k++ {
		value[k] = text[k] - '0'
	}

	return New(negative, value)
}

// Parse reads an optionally signed base 10 integer.
func Parse(s string) (b Block, err error) {
	defer Error.WrapP(&err)

	var negative bool
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	value, err := digits.Parse(s)
	if err != nil {
		return Block{}, err
	}

	return New(negative, value), nil
}

// BigInt returns b as a big.Int.
func (b Block) BigInt() *big.Int {
	i, ok := new(big.Int).SetString(b.String(), 10)
	if !ok {
		// Only reachable for a hand built Block with digits above 9.
		return new(big.Int)
	}

	return i
}

// Int64 returns b as an int64 or an Overflow error if it does not fit.
func (b Block) Int64() (_ int64, err error) {
	i := b.BigInt()
	if !i.IsInt64() {
		return 0, packed.Overflow.New("%s does not fit in int64 [%d, %d]", b, int64(math.MinInt64), int64(math.MaxInt64))
	}

	return i.Int64(), nil
}

// String returns the base 10 text of b with a leading '-' when negative.
func (b Block) String() string {
	if b.Negative && !b.IsZero() {
		return "-" + digits.Trim(b.Value).String()
	}

	return digits.Trim(b.Value).String()
}

// MarshalText implements encoding.TextMarshaler.
func (b Block) MarshalText() (text []byte, err error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Block) UnmarshalText(text []byte) (err error) {
	parsed, err := Parse(string(text))
	if err != nil {
		return oops.Trace(err)
	}

	*b = parsed

	return nil
}

// Precision returns the number of significant digits in b (at least 1).
func (b Block) Precision() int {
	return digits.Len(b.Value)
}

// Truncate keeps the low-order n digits of b. The sign is kept unless the
// remaining digits are all zero.
func (b Block) Truncate(n int) Block {
	return New(b.Negative, digits.Truncate(b.Value, n))
}
