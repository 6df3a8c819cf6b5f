package decimal

import (
	"strconv"
)

const (
	// Scale is the number of fractional decimal digits a Decimal stores.
	Scale = 7
	// Factor is 10^Scale, the numerator of the value one.
	Factor = 10_000_000
	// MaxPow is the largest power of ten that fits in the numerator.
	MaxPow = 18
	// MaxAbs is the largest magnitude for which arithmetic is exact. Values
	// beyond it are not detected and silently produce wrong results.
	MaxAbs = 1e11

	maxInt = int64(MaxAbs)
)

var pow10 = [MaxPow + 2]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// Decimal is a fixed point number with Scale fractional digits, stored as
// an integer numerator over Factor.
//
// The zero value is 0. Decimal is a plain value: copy it freely, compare it
// with ==, use it as a map key.
type Decimal struct {
	num int64
}

// Number is the set of Go numeric types accepted by Of.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// New returns the decimal equal to the integer n. It is exact.
func New(n int64) Decimal {
	assertRange(n, "New")

	return Decimal{num: n * Factor}
}

// NewFromFloat returns f rounded to the nearest multiple of 10^-Scale, ties
// away from zero.
//
// This is the only constructor that can lose information: the float already
// carries binary rounding error and the result inherits it.
func NewFromFloat(f float64) Decimal {
	assertFloat(f, "NewFromFloat")

	half := -0.5
	if f > 0 {
		half = 0.5
	}

	return Decimal{num: int64(Factor*f + half)}
}

// NewFromNumerator returns the decimal whose numerator is n, i.e. n*10^-Scale.
func NewFromNumerator(n int64) Decimal {
	return Decimal{num: n}
}

// NewFromMantissa returns the decimal equal to mant*10^exp.
//
// Digits below 10^-Scale are rounded half away from zero. Values whose
// every digit lies below the grid become zero; values above the safe range
// overflow silently.
func NewFromMantissa(mant int64, exp int16) Decimal {
	if mant == 0 {
		return Decimal{}
	}

	shift := int(exp) + Scale

	if shift >= 0 {
		if shift > MaxPow {
			assertRange(maxInt+1, "NewFromMantissa")
			shift = MaxPow
		}

		n := mant * int64(pow10[shift])
		assertMul(mant, int64(pow10[shift]), n, "NewFromMantissa")

		return Decimal{num: n}
	}

	shift = -shift
	if shift >= len(pow10) {
		return Decimal{}
	}

	neg, mag := split(mant)
	p := pow10[shift]
	mag = (mag + p/2) / p

	return join(neg, mag)
}

// Of converts a Go number to a decimal: integers exactly through New and
// floats through NewFromFloat.
func Of[T Number](v T) Decimal {
	if T(1)/2 != 0 {
		return NewFromFloat(float64(v))
	}

	return New(int64(v))
}

// Numerator returns the value multiplied by Factor.
func (d Decimal) Numerator() int64 {
	return d.num
}

// Mantissa returns mant and exp such that d equals mant*10^exp, with every
// trailing zero digit moved from mant into exp. Zero is (0, 0).
func (d Decimal) Mantissa() (mant int64, exp int16) {
	if d.num == 0 {
		return 0, 0
	}

	mant, exp = d.num, -Scale
	for mant%10 == 0 {
		mant /= 10
		exp++
	}

	return mant, exp
}

// MinScale returns the smallest number of fractional digits that
// represent d exactly.
func (d Decimal) MinScale() int {
	frac := d.num % Factor
	if frac == 0 {
		return 0
	}

	scale := Scale
	for frac%10 == 0 {
		frac /= 10
		scale--
	}

	return scale
}

// Float64 returns the nearest float64 to d.
func (d Decimal) Float64() float64 {
	return float64(d.num) / Factor
}

// Int returns the integer part of d, truncated toward zero.
func (d Decimal) Int() int64 {
	return d.num / Factor
}

// Add returns d + e.
func (d Decimal) Add(e Decimal) Decimal {
	n := d.num + e.num
	assertRange(n/Factor, "Add")

	return Decimal{num: n}
}

// Sub returns d - e.
func (d Decimal) Sub(e Decimal) Decimal {
	n := d.num - e.num
	assertRange(n/Factor, "Sub")

	return Decimal{num: n}
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	return Decimal{num: -d.num}
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	if d.num < 0 {
		return Decimal{num: -d.num}
	}

	return d
}

// MulInt returns d * n. It is exact.
func (d Decimal) MulInt(n int64) Decimal {
	r := d.num * n
	assertMul(d.num, n, r, "MulInt")

	return Decimal{num: r}
}

// QuoInt returns d / n rounded to the nearest multiple of 10^-Scale, ties
// away from zero. The sign of n is folded into the dividend first so the
// magnitude, not the raw quotient, is rounded. QuoInt panics if n is zero.
func (d Decimal) QuoInt(n int64) Decimal {
	num := d.num
	if n < 0 {
		n = -n
		num = -num
	}

	if num >= 0 {
		return Decimal{num: (num + n/2) / n}
	}

	return Decimal{num: -((-num + n/2) / n)}
}

// Mul returns d * e computed in float64 and rounded back with
// NewFromFloat. The product of two numerators does not fit in 64 bits, so
// the result is approximate.
func (d Decimal) Mul(e Decimal) Decimal {
	return NewFromFloat(d.Float64() * e.Float64())
}

// Quo returns d / e computed in float64. The result is approximate.
func (d Decimal) Quo(e Decimal) Decimal {
	return NewFromFloat(d.Float64() / e.Float64())
}

// MulFloat returns d * f computed in float64. The result is approximate.
func (d Decimal) MulFloat(f float64) Decimal {
	return NewFromFloat(d.Float64() * f)
}

// QuoFloat returns d / f computed in float64. The result is approximate.
func (d Decimal) QuoFloat(f float64) Decimal {
	return NewFromFloat(d.Float64() / f)
}

// FloatQuo returns f / d computed in float64. The result is approximate.
func FloatQuo(f float64, d Decimal) Decimal {
	return NewFromFloat(f / d.Float64())
}

// Round returns the multiple of step nearest to d, ties away from zero. The
// sign of step is ignored and a zero step returns d unchanged.
func (d Decimal) Round(step Decimal) Decimal {
	if step.num == 0 {
		return d
	}

	_, p := split(step.num)
	neg, mag := split(d.num)
	mag = (mag + p/2) / p * p

	return join(neg, mag)
}

// IntDiv returns how many whole steps of div fit into d, truncated toward
// zero. It panics if div is zero.
func (d Decimal) IntDiv(div Decimal) int64 {
	return d.num / div.num
}

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int {
	switch {
	case d.num < 0:
		return -1
	case d.num > 0:
		return 1
	}

	return 0
}

// IsZero reports whether d is 0.
func (d Decimal) IsZero() bool {
	return d.num == 0
}

// Cmp compares d and e and returns -1, 0 or +1.
func (d Decimal) Cmp(e Decimal) int {
	switch {
	case d.num < e.num:
		return -1
	case d.num > e.num:
		return 1
	}

	return 0
}

// Equal reports whether d == e.
func (d Decimal) Equal(e Decimal) bool { return d.num == e.num }

// Less reports whether d < e.
func (d Decimal) Less(e Decimal) bool { return d.num < e.num }

// LessOrEqual reports whether d <= e.
func (d Decimal) LessOrEqual(e Decimal) bool { return d.num <= e.num }

// Greater reports whether d > e.
func (d Decimal) Greater(e Decimal) bool { return d.num > e.num }

// GreaterOrEqual reports whether d >= e.
func (d Decimal) GreaterOrEqual(e Decimal) bool { return d.num >= e.num }

// Min returns the smaller of d and e.
func (d Decimal) Min(e Decimal) Decimal {
	if e.num < d.num {
		return e
	}

	return d
}

// Max returns the larger of d and e.
func (d Decimal) Max(e Decimal) Decimal {
	if e.num > d.num {
		return e
	}

	return d
}

// String returns the shortest exact decimal text of d, e.g. "-1.25".
func (d Decimal) String() string {
	return string(d.appendString(make([]byte, 0, 24)))
}

func (d Decimal) appendString(dst []byte) []byte {
	neg, mag := split(d.num)
	if neg {
		dst = append(dst, '-')
	}

	dst = strconv.AppendUint(dst, mag/Factor, 10)

	scale := d.MinScale()
	if scale == 0 {
		return dst
	}

	frac := mag % Factor / pow10[Scale-scale]

	var buf [Scale]byte
	for i := scale - 1; i >= 0; i-- {
		buf[i] = byte('0' + frac%10)
		frac /= 10
	}

	dst = append(dst, '.')

	return append(dst, buf[:scale]...)
}

func split(n int64) (neg bool, mag uint64) {
	if n < 0 {
		return true, -uint64(n)
	}

	return false, uint64(n)
}

func join(neg bool, mag uint64) Decimal {
	if neg {
		return Decimal{num: -int64(mag)}
	}

	return Decimal{num: int64(mag)}
}
