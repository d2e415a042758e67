package decimal

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/packed/integer"
	"github.com/calebcase/packed/layout"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// unary decodes src, applies fn and stores the result in dst.
func unary(dst, src layout.Region, checked bool, fn func(x integer.Block) (integer.Block, error)) (err error) {
	defer Error.WrapP(&err)

	err = dst.Check()
	if err != nil {
		return err
	}

	x, err := layout.Decode(src, checked)
	if err != nil {
		return err
	}

	z, err := fn(x)
	if err != nil {
		return err
	}

	return layout.Encode(dst, z, checked)
}

// binary decodes a and b, applies fn and stores the result in dst.
//
// Every region is bounds checked before anything is computed, and both
// sources are fully decoded before dst is written, so dst may alias either
// source. A failed call leaves dst untouched.
func binary(dst, a, b layout.Region, checked bool, fn func(x, y integer.Block) (integer.Block, error)) (err error) {
	defer Error.WrapP(&err)

	for _, r := range []layout.Region{dst, a, b} {
		err = r.Check()
		if err != nil {
			return err
		}
	}

	x, err := layout.Decode(a, checked)
	if err != nil {
		return err
	}

	y, err := layout.Decode(b, checked)
	if err != nil {
		return err
	}

	z, err := fn(x, y)
	if err != nil {
		return err
	}

	return layout.Encode(dst, z, checked)
}

// compare decodes a and b without error checking and compares them.
func compare(a, b layout.Region) (c int, err error) {
	defer Error.WrapP(&err)

	x, err := layout.Decode(a, false)
	if err != nil {
		return 0, err
	}

	y, err := layout.Decode(b, false)
	if err != nil {
		return 0, err
	}

	return integer.Cmp(x, y), nil
}
