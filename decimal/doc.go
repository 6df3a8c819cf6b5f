// Package decimal provides a fixed point base 10 number for prices,
// quantities and profit and loss.
//
// A Decimal stores one int64 numerator:
//
//  value = numerator * 10^-7
//
// For example:
//
//  1.23 = 12_300_000 * 10^-7
//
// The numerator is exact for magnitudes up to MaxAbs (10^11). Nothing is
// checked at run time; building with -tags fixeddebug turns range
// violations into panics.
//
// Exactness
//
// Integer construction, Add, Sub, Neg, MulInt and comparisons are exact.
// QuoInt rounds the last digit half away from zero. NewFromFloat rounds half
// away from zero and is where binary floating point error can enter. Mul,
// Quo, MulFloat, QuoFloat and FloatQuo take a float64 detour and are
// approximate by contract: the product of two numerators does not fit in
// 64 bits.
//
// Mixed operands are written explicitly:
//
//  price.MulInt(qty)                // value * integer
//  decimal.Of(100).Sub(price)       // integer - value
//  decimal.FloatQuo(1, price)       // float / value
//
// Encoding
//
// The wire form is the mantissa and exponent of the value with trailing
// zeros removed (see Mantissa), carried in a single control data block. The
// mantissa comes first as a sign and magnitude integer (see package
// integer), followed by an exponent trailer. The last two bits of the
// trailer give its size:
//
//  | 0 | 1 | Exponent                                     |
//  |-------|----------------------------------------------|
//  | 0 . 0 | 1 byte, exponent is zero                     |
//  | 0 . 1 | 1 byte, ±2^5 exponent in the upper six bits  |
//  | 1 . 0 | 2 bytes, ±2^13 exponent                      |
//  | 1 . 1 | 3 bytes, ±2^15 exponent                      |
//  |-------|----------------------------------------------|
//
// The exponent itself is stored like the mantissa: magnitude shifted left
// by one with the sign in the lowest bit. Decoding goes through
// NewFromMantissa, so producers may send any exponent; digits finer than
// 10^-7 are rounded half away from zero.
//
// Examples
//
// 5 (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 1 | 0 . 1 . 0 . 1 | 0 | Data + 1 Control Block with mantissa +5.
//  | 0 . 0 . 0 . 0 . 0 . 0 | 0 . 0 | Exponent 0.
//  |---------------|---------------|
//
// -0.0000001 (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 1 | 0 . 0 . 0 . 1 | 1 | Data + 1 Control Block with mantissa -1.
//  | 0 . 0 . 1 . 1 . 1 | 1 | 0 . 1 | ±2^5 exponent of -7.
//  |---------------|---------------|
//
// 1.25 (3 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 1 | 0 . 0 . 0 . 0 . 0 . 1 | Data Size Control Block with 2 bytes.
//  | 1 . 1 . 1 . 1 . 1 . 0 . 1 | 0 | Mantissa +125.
//  | 0 . 0 . 0 . 1 . 0 | 1 | 0 . 1 | ±2^5 exponent of -2.
//  |---------------|---------------|
package decimal
