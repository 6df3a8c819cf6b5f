package stream

import (
	"math"
	"time"

	"github.com/calebcase/fixed/decimal"
	"github.com/calebcase/fixed/digits"
)

// scratchSize fits a sign, 20 digits of a uint64 and any zero padding.
const scratchSize = 32

// Int appends the decimal text of x.
func (s *Stream) Int(x int64) *Stream {
	neg, u := split(x)
	s.putUint(neg, u, 0, false)

	return s
}

// IntWidth appends x left padded with zeros to at least width digits.
func (s *Stream) IntWidth(x int64, width int) *Stream {
	neg, u := split(x)
	s.putUint(neg, u, width, false)

	return s
}

// Uint appends the decimal text of x.
func (s *Stream) Uint(x uint64) *Stream {
	s.putUint(false, x, 0, false)

	return s
}

// Duration appends the integer count of d in nanoseconds.
func (s *Stream) Duration(d time.Duration) *Stream {
	return s.Int(int64(d))
}

// Float appends x rounded to the configured precision. NaN and the
// infinities are written as "nan", "inf" and "-inf".
//
// Rounding happens in float64, so x keeps whatever binary error it already
// carries. Use Decimal for exact values.
func (s *Stream) Float(x float64) *Stream {
	switch {
	case math.IsNaN(x):
		return s.Str("nan")
	case math.IsInf(x, 1):
		return s.Str("inf")
	case math.IsInf(x, -1):
		return s.Str("-inf")
	}

	neg := x < 0
	if neg {
		x = -x
	}

	power := float64(s.power)
	x = math.Round(x*power) / power

	ip := math.Trunc(x)
	integral := uint64(ip)
	frac := uint64(math.Round((x - ip) * power))
	if frac >= uint64(s.power) {
		frac -= uint64(s.power)
		integral++
	}

	s.putDecimal(neg, integral, frac)

	return s
}

// Decimal appends d with the configured precision using integer arithmetic
// only. Digits beyond the precision are rounded half away from zero; digits
// past the native seven are zeros.
func (s *Stream) Decimal(d decimal.Decimal) *Stream {
	neg, mag := split(d.Numerator())

	integral := mag / decimal.Factor
	frac := mag % decimal.Factor

	if s.precision >= decimal.Scale {
		frac *= uint64(digits.Pow10[s.precision-decimal.Scale])
	} else {
		p := uint64(digits.Pow10[decimal.Scale-s.precision])
		frac = (frac + p/2) / p

		if frac >= uint64(s.power) {
			frac -= uint64(s.power)
			integral++
		}
	}

	s.putDecimal(neg, integral, frac)

	return s
}

// putDecimal writes integral and, when frac is nonzero or zero fill is on,
// a point and frac padded to the precision. At precision 0 with fill this
// gives "5.0".
//
// A value that rounds to zero is written as "0", never "-0".
func (s *Stream) putDecimal(neg bool, integral, frac uint64) {
	s.putUint(neg && (integral != 0 || frac != 0), integral, 0, false)

	if frac == 0 && !s.fill {
		return
	}

	s.buf = append(s.buf, '.')
	s.putUint(false, frac, s.precision, !s.fill)
}

// putUint is the digit emitter. It fills a scratch buffer from the end,
// three and then two digits per division, pads to width with zeros,
// optionally drops trailing zeros and appends the result in one copy.
func (s *Stream) putUint(neg bool, u uint64, width int, trim bool) {
	var scratch [scratchSize]byte
	i := scratchSize

	if u == 0 {
		i--
		scratch[i] = '0'
	}

	for u >= 1000 {
		q := u / 1000
		r := u - q*1000
		i -= 3
		copy(scratch[i:], digits.Rev3[3*r:3*r+3])
		u = q
	}

	for u >= 10 {
		q := u / 100
		r := u - q*100
		i -= 2
		copy(scratch[i:], digits.Rev2[2*r:2*r+2])
		u = q
	}

	if u != 0 {
		i--
		scratch[i] = byte('0' + u)
	}

	if width > scratchSize-1 {
		width = scratchSize - 1
	}
	for scratchSize-i < width {
		i--
		scratch[i] = '0'
	}

	end := scratchSize
	if trim {
		for end-1 > i && scratch[end-1] == '0' {
			end--
		}
	}

	if neg {
		i--
		scratch[i] = '-'
	}

	s.buf = append(s.buf, scratch[i:end]...)
}

func split(x int64) (neg bool, u uint64) {
	if x < 0 {
		return true, -uint64(x)
	}

	return false, uint64(x)
}
