package decimal

import (
	"io"
	"math"

	"github.com/zeebo/errs"

	"github.com/calebcase/fixed/control"
	"github.com/calebcase/fixed/integer"
)

// Error is the error class for decimal encoding failures.
var Error = errs.Class("decimal")

// ErrNull is returned when a null field is decoded into a Decimal.
var ErrNull = Error.New("null value")

// Exponent trailer sizes, stored in the two lowest bits of the last byte.
const (
	expNone  = 0b00
	expSmall = 0b01
	expMid   = 0b10
	expLarge = 0b11
)

// AppendBinary appends the wire form of d to dst: the signed mantissa
// followed by the exponent trailer.
func (d Decimal) AppendBinary(dst []byte) []byte {
	mant, exp := d.Mantissa()

	dst = integer.New(mant).AppendBinary(dst)

	if exp == 0 {
		return append(dst, expNone)
	}

	var z uint32
	if exp < 0 {
		z = uint32(-int32(exp))<<1 | 1
	} else {
		z = uint32(exp) << 1
	}

	switch {
	case z < 1<<6:
		return append(dst, byte(z<<2|expSmall))
	case z < 1<<14:
		v := z<<2 | expMid
		return append(dst, byte(v>>8), byte(v))
	default:
		v := z<<2 | expLarge
		return append(dst, byte(v>>16), byte(v>>8), byte(v))
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d Decimal) MarshalBinary() (data []byte, err error) {
	return d.AppendBinary(make([]byte, 0, 12)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	if len(data) < 2 {
		return Error.New("invalid: size=%d", len(data))
	}

	n := 1
	switch data[len(data)-1] & 0b11 {
	case expMid:
		n = 2
	case expLarge:
		n = 3
	}

	if len(data) <= n {
		return Error.New("invalid: size=%d trailer=%d", len(data), n)
	}

	var exp int16

	trailer := data[len(data)-n:]
	if trailer[n-1]&0b11 == expNone {
		if trailer[0] != 0 {
			return Error.New("invalid: exponent trailer")
		}
	} else {
		var v uint32
		for _, c := range trailer {
			v = v<<8 | uint32(c)
		}

		z := v >> 2
		mag := z >> 1
		switch {
		case z&1 == 1 && mag <= -math.MinInt16:
			exp = int16(-int32(mag))
		case z&1 == 0 && mag <= math.MaxInt16:
			exp = int16(mag)
		default:
			return Error.New("invalid: exponent out of range")
		}
	}

	blk := integer.Block{}

	err = blk.UnmarshalBinary(data[:len(data)-n])
	if err != nil {
		return Error.Wrap(err)
	}

	if blk.Value > math.MaxInt64 && !(blk.Negative && blk.Value == 1<<63) {
		return Error.New("invalid: mantissa exceeds 64 bits")
	}

	*d = NewFromMantissa(blk.Int64(), exp)

	return nil
}

// Encoder is an encoder.
type Encoder struct {
	ce control.Encoder

	scratch [16]byte
}

// NewEncoder returns a new encoder.
func NewEncoder(ce control.Encoder) *Encoder {
	return &Encoder{
		ce: ce,
	}
}

// Encode writes d as a single data block.
func (e *Encoder) Encode(d Decimal) (err error) {
	defer Error.WrapP(&err)

	return e.ce.Data(d.AppendBinary(e.scratch[:0]))
}

// EncodeNull writes a null field.
func (e *Encoder) EncodeNull() (err error) {
	defer Error.WrapP(&err)

	return e.ce.Null()
}

// Decoder is a decoder.
type Decoder struct {
	cd control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(cd control.Decoder) *Decoder {
	return &Decoder{
		cd: cd,
	}
}

// Decode reads the next field into d. It returns io.EOF when the input is
// exhausted and ErrNull for a null field.
func (dec *Decoder) Decode(d *Decimal) (err error) {
	if !dec.cd.Next() {
		if dec.cd.Err() != nil {
			return Error.Wrap(dec.cd.Err())
		}

		return io.EOF
	}

	if dec.cd.Type() == control.Null {
		return ErrNull
	}

	data, err := dec.cd.Data()
	if err != nil {
		return Error.Wrap(err)
	}

	return d.UnmarshalBinary(data)
}
