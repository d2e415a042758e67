// Package layout provides the packed decimal byte layout.
//
// A region of precision p occupies p/2+1 bytes. Each byte holds two 4 bit
// nibbles, most significant digit first. The low nibble of the last byte is
// the sign and its high nibble is the least significant digit.
//
// Odd Precision
//
// Precision 5 fills 3 bytes exactly:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  |   digit 1     |   digit 2     | -12345 = 0x12 0x34 0x5D
//  |   digit 3     |   digit 4     |
//  |   digit 5     |   sign        |
//  |---------------|---------------|
//
// Even Precision
//
// Precision 4 also needs 3 bytes; the high nibble of the first byte is
// padding, written as zero and ignored on decode:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  |   pad (0)     |   digit 1     | +1234 = 0x01 0x23 0x4C
//  |   digit 2     |   digit 3     |
//  |   digit 4     |   sign        |
//  |---------------|---------------|
//
// Sign Codes
//
//  | Code | Meaning                      |
//  |------|------------------------------|
//  | 0xC  | positive (written)           |
//  | 0xD  | negative (written)           |
//  | 0xF  | unsigned, read as positive   |
//  | 0xA  | positive                     |
//  | 0xB  | negative                     |
//  | 0xE  | positive                     |
//  |------|------------------------------|
//
// Any other sign nibble, and any digit nibble above 9, is a Format error
// when decoding with error checking.
package layout
