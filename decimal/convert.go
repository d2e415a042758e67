package decimal

import (
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/packed/integer"
	"github.com/calebcase/packed/layout"
)

// FromInt packs the integer v into dst.
func FromInt[T constraints.Integer](dst layout.Region, v T, checked bool) (err error) {
	defer Error.WrapP(&err)

	return layout.Encode(dst, integer.FromInt(v), checked)
}

// FromInt64 packs v into dst.
func FromInt64(dst layout.Region, v int64, checked bool) error {
	return FromInt(dst, v, checked)
}

// Int64 unpacks src as an int64. A value outside the int64 range is an
// Overflow error.
func Int64(src layout.Region, checked bool) (_ int64, err error) {
	defer Error.WrapP(&err)

	b, err := layout.Decode(src, checked)
	if err != nil {
		return 0, err
	}

	return b.Int64()
}

// FromBigInt packs i into dst.
func FromBigInt(dst layout.Region, i *big.Int, checked bool) (err error) {
	defer Error.WrapP(&err)

	return layout.Encode(dst, integer.FromBigInt(i), checked)
}

// BigInt unpacks src as a big.Int.
func BigInt(src layout.Region, checked bool) (_ *big.Int, err error) {
	defer Error.WrapP(&err)

	b, err := layout.Decode(src, checked)
	if err != nil {
		return nil, err
	}

	return b.BigInt(), nil
}

// FromString packs the base 10 text s (optionally signed) into dst.
func FromString(dst layout.Region, s string, checked bool) (err error) {
	defer Error.WrapP(&err)

	b, err := integer.Parse(s)
	if err != nil {
		return err
	}

	return layout.Encode(dst, b, checked)
}

// String unpacks src as base 10 text.
func String(src layout.Region, checked bool) (_ string, err error) {
	defer Error.WrapP(&err)

	b, err := layout.Decode(src, checked)
	if err != nil {
		return "", err
	}

	return b.String(), nil
}
