package layout

import (
	"github.com/calebcase/packed"
	"github.com/calebcase/packed/digits"
	"github.com/calebcase/packed/integer"
)

// Decode reads the packed decimal in r.
//
// Bounds are always checked. When checked is true a digit nibble above 9 or
// a sign nibble that is not in Signs is a Format error; otherwise such a
// digit is read modulo 10 and an unknown sign reads as positive. The pad
// nibble of an even precision is ignored.
func Decode(r Region, checked bool) (b integer.Block, err error) {
	err = r.Check()
	if err != nil {
		return integer.Block{}, err
	}

	last := r.Data[r.End()-1]

	s, ok := Signs.Match(last)
	if !ok && checked {
		return integer.Block{}, packed.Format.New("invalid sign nibble %#x at byte %d", last&0x0F, r.End()-1)
	}

	value := make(digits.Digits, r.Precision)
	for k := 0; k < r.Precision; k++ {
		pos := r.digitPos(k)

		v := r.nibble(pos)
		if v > 9 {
			if checked {
				return integer.Block{}, packed.Format.New("invalid digit nibble %#x at byte %d", v, r.Offset+pos/2)
			}

			v %= 10
		}

		value[r.Precision-1-k] = v
	}

	return integer.New(s.Negative, value), nil
}

// Encode writes b into r.
//
// Bounds are always checked. If b has more digits than r.Precision then
// with checked set an Overflow error is returned and nothing is written;
// otherwise only the low-order r.Precision digits are written. The sign
// nibble is always Positive or Negative.
func Encode(r Region, b integer.Block, checked bool) (err error) {
	err = r.Check()
	if err != nil {
		return err
	}

	if p := b.Precision(); p > r.Precision {
		if checked {
			return packed.Overflow.New("%d digits do not fit precision %d", p, r.Precision)
		}

		b = b.Truncate(r.Precision)
	}

	value := digits.Trim(b.Value)
	for k := 0; k < r.Precision; k++ {
		var v byte
		if k < len(value) {
			v = value[len(value)-1-k]
		}

		r.setNibble(r.digitPos(k), v)
	}

	if r.Precision%2 == 0 {
		r.setNibble(0, 0)
	}

	r.setNibble(2*r.Len()-1, signOf(b.Negative).Code)

	return nil
}

// Validate reports the first Format error in r, if any.
func Validate(r Region) (err error) {
	_, err = Decode(r, true)

	return err
}

// Marshal returns b packed at the smallest precision that holds it. The
// precision is always odd so no pad nibble is used.
func Marshal(b integer.Block) []byte {
	p := b.Precision()
	if p%2 == 0 {
		p++
	}

	data := make([]byte, Len(p))

	err := Encode(Region{Data: data, Precision: p}, b, true)
	if err != nil {
		// Unreachable: the region is sized for b.
		panic(err)
	}

	return data
}

// Unmarshal decodes data as a single packed decimal filling the whole
// slice.
func Unmarshal(data []byte, checked bool) (b integer.Block, err error) {
	return Decode(Region{Data: data, Precision: 2*len(data) - 1}, checked)
}
