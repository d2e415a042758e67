// Package integer provides signed decimal integers of arbitrary precision.
//
// A Block pairs a sign with a digits.Digits magnitude. Arithmetic follows
// the usual sign rules:
//
//  a + b   same signs add magnitudes; otherwise the larger magnitude wins
//  a - b   a + (-b)
//  a * b   negative iff exactly one operand is negative
//  a / b   truncated toward zero, negative iff exactly one operand is negative
//  a % b   a - (a/b)*b, so it carries the sign of a
//
// Results are always canonical: zero is never negative.
package integer
