// Package packed holds the error kinds shared by the packed decimal
// packages.
//
// The arithmetic itself lives in the subpackages:
//
//  digits   unsigned digit sequences (add, subtract, multiply, long division)
//  integer  signed decimal integers built on digits
//  layout   the nibble packed byte layout (decode, encode, sign codes)
//  decimal  arithmetic and comparison directly on packed regions
package packed
