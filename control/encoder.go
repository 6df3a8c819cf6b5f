package control

import (
	"io"

	"github.com/calebcase/oops"
)

// Encoder writes control blocks.
type Encoder interface {
	Data(data []byte) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer

	// scratch holds a whole block so each field is a single write.
	scratch [1 + MaxDataSize]byte
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

func (e *encoder) write(p []byte) (err error) {
	_, err = e.w.Write(p)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// Data writes data using the smallest block able to carry it. Leading
// payload bits that fit under a block's mask are packed into the control
// byte itself.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)
	b := e.scratch[:0]

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		b = append(b, Data.Prefix|data[0])
	case size == 2 && data[0]&Data1.Mask == data[0]:
		b = append(b, Data1.Prefix|data[0], data[1])
	case size == 3 && data[0]&Data2.Mask == data[0]:
		b = append(b, Data2.Prefix|data[0], data[1], data[2])
	case size <= MaxDataSize:
		b = append(b, DataSize.Prefix|byte(size-1))
		b = append(b, data...)
	default:
		return Error.New("unimplemented: size=%d > %d", size, MaxDataSize)
	}

	return e.write(b)
}

func (e *encoder) Empty() (err error) {
	return e.write([]byte{Empty.Prefix})
}

func (e *encoder) Null() (err error) {
	return e.write([]byte{Null.Prefix})
}
