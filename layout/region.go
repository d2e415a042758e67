package layout

import (
	"github.com/calebcase/packed"
)

// Region is a packed decimal field inside a caller owned buffer.
//
// The field starts at Data[Offset] and holds Precision digits plus a sign
// nibble, i.e. Len() bytes.
type Region struct {
	Data      []byte
	Offset    int
	Precision int
}

// Len returns the number of bytes needed for precision digits and a sign.
func Len(precision int) int {
	return precision/2 + 1
}

// Len returns the number of bytes occupied by the region.
func (r Region) Len() int {
	return Len(r.Precision)
}

// End returns the offset one past the last byte of the region.
func (r Region) End() int {
	return r.Offset + r.Len()
}

// Check verifies that the region has a usable precision and fits its
// buffer.
func (r Region) Check() error {
	if r.Precision < 1 {
		return packed.Invalid.New("precision %d: must be at least 1", r.Precision)
	}

	if r.Offset < 0 || r.End() > len(r.Data) {
		return packed.OutOfBounds.New(
			"offset=%d precision=%d len=%d buffer=%d",
			r.Offset,
			r.Precision,
			r.Len(),
			len(r.Data),
		)
	}

	return nil
}

// nibble positions: the field holds 2*Len() nibbles, numbered from the
// high nibble of the first byte. The sign is the last nibble and digit k
// (counted from the least significant, starting at 0) sits k+1 nibbles
// before it. An even precision leaves one pad nibble at position 0.

func (r Region) nibble(pos int) byte {
	b := r.Data[r.Offset+pos/2]
	if pos%2 == 0 {
		return b >> 4
	}

	return b & 0x0F
}

func (r Region) setNibble(pos int, v byte) {
	i := r.Offset + pos/2
	if pos%2 == 0 {
		r.Data[i] = r.Data[i]&0x0F | v<<4
	} else {
		r.Data[i] = r.Data[i]&0xF0 | v&0x0F
	}
}

// digitPos returns the nibble position of the k-th least significant digit.
func (r Region) digitPos(k int) int {
	return 2*r.Len() - 2 - k
}
