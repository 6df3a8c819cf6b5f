package control

import (
	"errors"
	"io"

	"github.com/calebcase/oops"
)

// Decoder iterates over control blocks.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r: r,
	}
}

// skip discards the payload of the current field if it was not read.
func (d *decoder) skip() (err error) {
	if d.finished {
		return nil
	}

	size, err := d.Size()
	if err != nil {
		return err
	}

	// The Data1 and Data2 control bytes already hold the first payload
	// byte.
	switch d.t {
	case Data1, Data2:
		size--
	}

	n, err := io.CopyN(io.Discard, d.r, int64(size))
	d.consumed += uint64(n)
	if err != nil {
		return oops.Trace(err)
	}

	d.finished = true

	return nil
}

func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if d.t != Unknown {
		d.err = d.skip()
		if d.err != nil {
			return false
		}
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown
	d.size = 0
	d.data = d.data[:0]
	d.finished = false

	_, d.err = io.ReadFull(d.r, d.value[:])
	if d.err != nil {
		if errors.Is(d.err, io.EOF) {
			d.err = nil
			return false
		}

		d.err = oops.Trace(d.err)

		return false
	}

	d.consumed++

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	case DataSizeSize:
		d.err = Error.New("unimplemented: %q block", t.Abbr)

		return false
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the payload size of the current data field in bytes.
func (d *decoder) Size() (_ uint64, err error) {
	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	default:
		d.err = oops.Trace(ErrInvalidOperation)

		return 0, d.err
	}

	return d.size, nil
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = d.data[:0]
			d.err = err
		}
	}()

	if len(d.data) != 0 {
		return d.data, nil
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	if d.finished && d.t != Data {
		return nil, Error.New("data already skipped")
	}

	data = make([]byte, size)

	switch d.t {
	case Data:
		data[0] = d.value[0] & d.t.Mask
	case DataSize:
		_, err = io.ReadFull(d.r, data)
		if err != nil {
			return nil, oops.Trace(err)
		}

		d.consumed += size
	case Data1, Data2:
		data[0] = d.value[0] & d.t.Mask

		_, err = io.ReadFull(d.r, data[1:])
		if err != nil {
			return nil, oops.Trace(err)
		}

		d.consumed += size - 1
	}

	d.data = data
	d.finished = true

	return d.data, nil
}
