package packed

import "github.com/zeebo/errs"

// Error kinds. Use Has to test for a kind, e.g. packed.Overflow.Has(err).
var (
	// OutOfBounds is returned when a region does not fit its buffer. It is
	// reported regardless of error checking.
	OutOfBounds = errs.Class("out of bounds")

	// Format is returned for a nibble that is not a valid digit or sign
	// code. Only reported when error checking is requested.
	Format = errs.Class("format")

	// Overflow is returned when a result has more digits than the
	// destination precision. Only reported when error checking is
	// requested, otherwise the result is truncated.
	Overflow = errs.Class("overflow")

	// DivideByZero is returned by divide and remainder for a zero divisor.
	DivideByZero = errs.Class("divide by zero")

	// Invalid is returned for arguments that can never be satisfied (a
	// precision below one, malformed text).
	Invalid = errs.Class("invalid")
)
