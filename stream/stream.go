// Package stream renders integers, floats and decimals as ASCII text into
// an append-only byte buffer.
//
// A Stream carries its formatting configuration with it: precision and zero
// fill are set once and apply to every value written afterwards, until set
// again.
//
//	s := stream.New().SetPrecision(2)
//	s.Str("bid ").Decimal(bid).Str(" ask ").Decimal(ask)
//
// A Stream is not safe for concurrent use. Give each goroutine its own, or
// take one from Acquire.
package stream

import (
	"io"

	"github.com/calebcase/fixed/digits"
)

const (
	// DefaultPrecision is the precision of a new Stream.
	DefaultPrecision = 6
	// MaxPrecision is the largest supported precision.
	MaxPrecision = 9
)

// Config is the formatting state of a Stream.
type Config struct {
	// Precision is the number of fractional digits written for floats
	// and decimals, clamped to [0, MaxPrecision].
	Precision int
	// FillZeroes keeps trailing fractional zeros ("5.000" instead of
	// "5").
	FillZeroes bool
}

// DefaultConfig returns the configuration of a new Stream.
func DefaultConfig() Config {
	return Config{Precision: DefaultPrecision}
}

// Stream is a text buffer with formatting state.
type Stream struct {
	buf []byte

	precision int
	power     int64
	fill      bool
}

// New returns an empty Stream with the default configuration.
func New() *Stream {
	return NewBuffer(nil)
}

// NewBuffer returns a Stream appending to buf.
func NewBuffer(buf []byte) *Stream {
	s := &Stream{buf: buf}
	s.Configure(DefaultConfig())

	return s
}

// Configure replaces the formatting configuration.
func (s *Stream) Configure(c Config) *Stream {
	s.SetPrecision(c.Precision)
	s.SetFillZeroes(c.FillZeroes)

	return s
}

// Config returns the current formatting configuration.
func (s *Stream) Config() Config {
	return Config{
		Precision:  s.precision,
		FillZeroes: s.fill,
	}
}

// SetPrecision sets the number of fractional digits, clamped to
// [0, MaxPrecision].
func (s *Stream) SetPrecision(k int) *Stream {
	switch {
	case k < 0:
		k = 0
	case k > MaxPrecision:
		k = MaxPrecision
	}

	s.precision = k
	s.power = digits.Pow10[k]

	return s
}

// Precision returns the current precision.
func (s *Stream) Precision() int {
	return s.precision
}

// SetFillZeroes sets whether trailing fractional zeros are written.
func (s *Stream) SetFillZeroes(fill bool) *Stream {
	s.fill = fill

	return s
}

// FillZeroes returns the current zero fill setting.
func (s *Stream) FillZeroes() bool {
	return s.fill
}

// Bytes returns the buffered text. It aliases the buffer and is valid until
// the next write.
func (s *Stream) Bytes() []byte {
	return s.buf
}

// String returns a copy of the buffered text.
func (s *Stream) String() string {
	return string(s.buf)
}

// Len returns the number of buffered bytes.
func (s *Stream) Len() int {
	return len(s.buf)
}

// Empty reports whether the buffer is empty.
func (s *Stream) Empty() bool {
	return len(s.buf) == 0
}

// Reset empties the buffer, keeping its capacity and the configuration.
func (s *Stream) Reset() {
	s.buf = s.buf[:0]
}

// Grow makes room for at least n more bytes.
func (s *Stream) Grow(n int) {
	if cap(s.buf)-len(s.buf) < n {
		buf := make([]byte, len(s.buf), 2*cap(s.buf)+n)
		copy(buf, s.buf)
		s.buf = buf
	}
}

// Write implements io.Writer. It never fails.
func (s *Stream) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)

	return len(p), nil
}

// WriteString implements io.StringWriter. It never fails.
func (s *Stream) WriteString(str string) (int, error) {
	s.buf = append(s.buf, str...)

	return len(str), nil
}

// WriteByte implements io.ByteWriter. It never fails.
func (s *Stream) WriteByte(c byte) error {
	s.buf = append(s.buf, c)

	return nil
}

// WriteTo writes the buffered text to w and empties the buffer on success.
func (s *Stream) WriteTo(w io.Writer) (n int64, err error) {
	m, err := w.Write(s.buf)
	n = int64(m)
	if err != nil {
		s.buf = s.buf[:copy(s.buf, s.buf[m:])]

		return n, err
	}

	s.buf = s.buf[:0]

	return n, nil
}

// Str appends str verbatim.
func (s *Stream) Str(str string) *Stream {
	s.buf = append(s.buf, str...)

	return s
}

// Char appends a single byte.
func (s *Stream) Char(c byte) *Stream {
	s.buf = append(s.buf, c)

	return s
}

// Newline appends '\n'.
func (s *Stream) Newline() *Stream {
	s.buf = append(s.buf, '\n')

	return s
}
