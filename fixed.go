// Package fixed reads and writes streams of decimal values in the compact
// binary block format of the control and decimal packages.
//
//	enc := fixed.NewEncoder(w)
//	err := enc.Write(decimal.NewFromFloat(101.25))
//
//	dec := fixed.NewDecoder(r)
//	for {
//		var d decimal.Decimal
//		if err := dec.Read(&d); err == io.EOF {
//			break
//		}
//	}
//
// Text rendering lives in package stream.
package fixed

import (
	"io"

	"github.com/zeebo/errs"

	"github.com/calebcase/fixed/control"
	"github.com/calebcase/fixed/decimal"
	"github.com/calebcase/fixed/integer"
)

// Error is the error class of this package.
var Error = errs.Class("fixed")

// Encoder writes decimal values to an io.Writer. Signed integers, such as
// order counts or sizes in lots, may be interleaved with them.
type Encoder struct {
	de *decimal.Encoder
	ie *integer.Encoder
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	ce := control.NewEncoder(w)

	return &Encoder{
		de: decimal.NewEncoder(ce),
		ie: integer.NewEncoder(integer.Schema{Signed: true}, ce),
	}
}

// Write writes d.
func (e *Encoder) Write(d decimal.Decimal) error {
	return e.de.Encode(d)
}

// WriteNull writes a missing value.
func (e *Encoder) WriteNull() error {
	return e.de.EncodeNull()
}

// WriteInt writes the integer n.
func (e *Encoder) WriteInt(n int64) error {
	return e.ie.Encode(integer.New(n))
}

// WriteAll writes every value of ds in order.
func (e *Encoder) WriteAll(ds []decimal.Decimal) error {
	for _, d := range ds {
		if err := e.Write(d); err != nil {
			return Error.Wrap(err)
		}
	}

	return nil
}

// Decoder reads decimal values from an io.Reader. The reader must know
// where integers were interleaved and call ReadInt for them.
type Decoder struct {
	dd *decimal.Decoder
	id *integer.Decoder
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	cd := control.NewDecoder(r)

	return &Decoder{
		dd: decimal.NewDecoder(cd),
		id: integer.NewDecoder(integer.Schema{Signed: true}, cd),
	}
}

// Read reads the next value into d. It returns io.EOF at the end of the
// input and decimal.ErrNull for a missing value, leaving d unchanged.
func (dec *Decoder) Read(d *decimal.Decimal) error {
	return dec.dd.Decode(d)
}

// ReadInt reads the next value as an integer. It returns io.EOF at the end
// of the input.
func (dec *Decoder) ReadInt() (int64, error) {
	var b integer.Block

	err := dec.id.Decode(&b)
	if err != nil {
		return 0, err
	}

	return b.Int64(), nil
}

// ReadAll reads values until the end of the input. A missing value is
// an error.
func (dec *Decoder) ReadAll() (ds []decimal.Decimal, err error) {
	for {
		var d decimal.Decimal

		err = dec.Read(&d)
		if err == io.EOF {
			return ds, nil
		}
		if err != nil {
			return ds, Error.Wrap(err)
		}

		ds = append(ds, d)
	}
}
