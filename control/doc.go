// Package control provides the block framing used by the binary value
// codecs.
//
// Control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). The intention is to minimize signaling overhead and pack as much
// data directly into the control block as possible.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte is shown.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                 |
//  |---------------|---------------||----------------|---------------------------------|
//  | 1 |                           || Data           | 2^7 = 128 values                |
//  | 0 . 1 |                       || Data Size      | 1 to 64 bytes follow            |
//  | 0 . 0 . 1 |                   || Data + 1       | 2^(5+8) = 8192 values           |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 2^(4+8+8) = 1048576 values      |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | reserved, rejected by Decoder   |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | Empty value                     |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value                      |
//  |---------------|---------------||----------------|---------------------------------|
//
// Sizes are indexed starting at 1 to maximize their effective range. Zero
// length data cannot be encoded; use the Empty block.
//
// Data + 1 and Data + 2 blocks are two and three byte sequences whose first
// payload byte is small enough to share the control byte. A value that does
// not fit is promoted to a Data Size block.
package control
