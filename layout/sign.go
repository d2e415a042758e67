package layout

// Sign is a sign nibble code.
type Sign struct {
	Code     byte
	Negative bool
	Abbr     string
}

// Match returns true if this sign matches the low nibble of the given byte.
func (s Sign) Match(b byte) bool {
	return b&0x0F == s.Code
}

type signs []Sign

func (ss signs) Match(b byte) (s Sign, ok bool) {
	for _, s := range ss {
		if s.Match(b) {
			return s, true
		}
	}

	return s, false
}

// Sign codes. Encoding always writes Positive or Negative; decoding accepts
// every code in Signs.
var (
	Positive  = Sign{0x0C, false, "+"}
	Negative  = Sign{0x0D, true, "-"}
	Unsigned  = Sign{0x0F, false, "u"}
	PositiveA = Sign{0x0A, false, "+a"}
	NegativeB = Sign{0x0B, true, "-b"}
	PositiveE = Sign{0x0E, false, "+e"}

	Signs = signs{
		Positive,
		Negative,
		Unsigned,
		PositiveA,
		NegativeB,
		PositiveE,
	}
)

// signOf returns the preferred sign code for a value.
func signOf(negative bool) Sign {
	if negative {
		return Negative
	}

	return Positive
}
