package integer

import (
	"errors"
	"io"
	"math"

	"github.com/zeebo/errs"

	"github.com/calebcase/fixed/control"
)

// Error is the error class for integer encoding failures.
var Error = errs.Class("integer")

// Block is a signed integer number stored as sign and magnitude.
//
// The binary form is the magnitude shifted left by one with the sign in the
// lowest bit, written big-endian with leading zero bytes removed. Zero is a
// single zero byte.
type Block struct {
	Value    uint64
	Negative bool
}

// New returns the block for v.
func New(v int64) Block {
	if v < 0 {
		// Negation in uint64 space keeps math.MinInt64 representable.
		return Block{Value: -uint64(v), Negative: true}
	}

	return Block{Value: uint64(v)}
}

// Int64 returns the value of the block. Magnitudes beyond the int64 range
// wrap.
func (b Block) Int64() int64 {
	if b.Negative {
		return -int64(b.Value)
	}

	return int64(b.Value)
}

// AppendBinary appends the binary form of b to dst.
func (b Block) AppendBinary(dst []byte) []byte {
	hi := b.Value >> 63
	lo := b.Value << 1
	if b.Negative {
		lo |= 1
	}

	if hi != 0 {
		dst = append(dst, byte(hi))
		return appendUint(dst, lo, 8)
	}

	return appendUint(dst, lo, byteLen(lo))
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	return b.AppendBinary(make([]byte, 0, 9)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	switch {
	case len(data) == 0:
		return Error.New("invalid: size=0")
	case len(data) > 9, len(data) == 9 && data[0] > 1:
		return Error.New("invalid: value exceeds 65 bits")
	}

	var hi uint64
	if len(data) == 9 {
		hi = uint64(data[0])
		data = data[1:]
	}

	var lo uint64
	for _, c := range data {
		lo = lo<<8 | uint64(c)
	}

	b.Negative = lo&1 == 1
	b.Value = hi<<63 | lo>>1

	return nil
}

func byteLen(v uint64) int {
	n := 1
	for v > math.MaxUint8 {
		v >>= 8
		n++
	}

	return n
}

func appendUint(dst []byte, v uint64, n int) []byte {
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(8*uint(i))))
	}

	return dst
}

// Schema for an integer.
type Schema struct {
	// Signed selects the sign bit encoding. Unsigned values are written
	// as their plain big-endian magnitude.
	Signed bool
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next field into b. It returns io.EOF when the input is
// exhausted.
func (d *Decoder) Decode(b *Block) (err error) {
	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return Error.Wrap(d.cd.Err())
		}

		return io.EOF
	}

	defer Error.WrapP(&err)

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	if d.schema.Signed {
		return b.UnmarshalBinary(data)
	}

	if len(data) > 8 {
		return errors.New("unsigned value exceeds 64 bits")
	}

	b.Negative = false
	b.Value = 0
	for _, c := range data {
		b.Value = b.Value<<8 | uint64(c)
	}

	return nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder

	scratch [9]byte
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes b as a single data block.
func (e *Encoder) Encode(b Block) (err error) {
	defer Error.WrapP(&err)

	if e.schema.Signed {
		return e.ce.Data(b.AppendBinary(e.scratch[:0]))
	}

	if b.Negative && b.Value != 0 {
		return errors.New("negative value in unsigned schema")
	}

	return e.ce.Data(appendUint(e.scratch[:0], b.Value, byteLen(b.Value)))
}
