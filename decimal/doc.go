// Package decimal provides arithmetic directly on packed decimal regions.
//
// Every operand is a layout.Region: a buffer, a byte offset and a digit
// precision. A mutating operation decodes its sources, computes the exact
// result and writes it to the destination region:
//
//  number = sign * digits
//
//  | source a | source b |      exact result       | destination |
//  |----------|----------|-------------------------|-------------|
//  | 1234567  | 8765432  | add       = 9999999     | p=7 9999999 |
//  | 15239902 | 5        | mul       = 76199510    | p=5 99510   | checked=false
//  | 15239902 | 5        | mul       = 76199510    | Overflow    | checked=true
//  | -7       | 2        | quo, rem  = -3, -1      |             |
//  |----------|----------|-------------------------|-------------|
//
// Errors
//
// Failures are reported with the kinds in package packed:
//
//  | Kind         | Reported                                          |
//  |--------------|---------------------------------------------------|
//  | OutOfBounds  | always, for any region that does not fit its data |
//  | Format       | with checked, for bad digit or sign nibbles       |
//  | Overflow     | with checked, when the result needs more digits   |
//  | DivideByZero | always, for Quo and Rem with a zero divisor       |
//  |--------------|---------------------------------------------------|
//
// Without checked an oversized result keeps only its low-order digits. A
// call that fails leaves the destination untouched.
//
// Aliasing
//
// Sources are decoded in full before the destination is written, so the
// destination may be one of the sources (e.g. a += b is Add(a, a, b, ...)).
//
// Comparison
//
// Compare and the six predicates never check digit or sign nibbles: any
// sign code outside layout.Signs reads as positive and zero compares equal
// to zero whatever its sign.
package decimal
