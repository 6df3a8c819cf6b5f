package stream_test

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixed/decimal"
	"github.com/calebcase/fixed/stream"
	"github.com/calebcase/oops"
)

func TestInt(t *testing.T) {
	values := []int64{
		0, 1, 7, 9, 10, 11, 99, 100, 101, 999, 1000, 1001, 9999, 10000,
		12345, 100000, 1234567, 10000000000,
		-1, -10, -100, -1000, -12345,
		math.MaxInt64, math.MinInt64,
	}

	for _, v := range values {
		require.Equal(t, strconv.FormatInt(v, 10), stream.New().Int(v).String())
	}

	for v := int64(-5000); v <= 5000; v += 3 {
		require.Equal(t, strconv.FormatInt(v, 10), stream.New().Int(v).String())
	}

	require.Equal(t, "18446744073709551615", stream.New().Uint(math.MaxUint64).String())
	require.Equal(t, "0", stream.New().Uint(0).String())
}

func TestIntWidth(t *testing.T) {
	tcs := []struct {
		in    int64
		width int
		want  string
	}{
		{42, 5, "00042"},
		{-42, 5, "-00042"},
		{0, 3, "000"},
		{123456, 3, "123456"},
		{7, 0, "7"},
		{7, -1, "7"},
		{1, 100, "0000000000000000000000000000001"},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.want, stream.New().IntWidth(tc.in, tc.width).String())
	}
}

func TestDecimal(t *testing.T) {
	type TC struct {
		in        decimal.Decimal
		precision int
		fill      bool
		want      string
		Mark      error
	}

	tcs := []TC{
		{decimal.New(5), 3, true, "5.000", oops.New("unexpected")},
		{decimal.New(5), 3, false, "5", oops.New("unexpected")},
		{decimal.New(-42), 7, true, "-42.0000000", oops.New("unexpected")},
		{decimal.New(1000), 6, false, "1000", oops.New("unexpected")},
		{decimal.New(100_000_000_000), 6, false, "100000000000", oops.New("unexpected")},
		{decimal.NewFromFloat(1.25), 1, false, "1.3", oops.New("unexpected")},
		{decimal.NewFromFloat(-1.25), 1, false, "-1.3", oops.New("unexpected")},
		{decimal.NewFromNumerator(19_999_999), 2, true, "2.00", oops.New("unexpected")},
		{decimal.NewFromNumerator(19_999_999), 2, false, "2", oops.New("unexpected")},
		{decimal.NewFromNumerator(-19_999_999), 2, true, "-2.00", oops.New("unexpected")},
		{decimal.NewFromNumerator(19_999_999), 7, false, "1.9999999", oops.New("unexpected")},
		{decimal.NewFromNumerator(19_999_999), 9, true, "1.999999900", oops.New("unexpected")},
		{decimal.NewFromNumerator(19_999_999), 9, false, "1.9999999", oops.New("unexpected")},
		{decimal.NewFromFloat(1.23), 6, false, "1.23", oops.New("unexpected")},
		{decimal.NewFromFloat(1.23), 6, true, "1.230000", oops.New("unexpected")},
		{decimal.NewFromNumerator(1), 6, false, "0", oops.New("unexpected")},
		{decimal.NewFromNumerator(1), 7, false, "0.0000001", oops.New("unexpected")},
		{decimal.NewFromNumerator(1), 9, false, "0.0000001", oops.New("unexpected")},
		{decimal.NewFromNumerator(1), 9, true, "0.000000100", oops.New("unexpected")},
		{decimal.NewFromNumerator(-1), 6, false, "0", oops.New("unexpected")},
		{decimal.NewFromNumerator(-1), 6, true, "0.000000", oops.New("unexpected")},
		{decimal.NewFromNumerator(5), 6, false, "0.000001", oops.New("unexpected")},
		{decimal.NewFromNumerator(-5), 6, false, "-0.000001", oops.New("unexpected")},
		{decimal.NewFromFloat(2.5), 0, false, "3", oops.New("unexpected")},
		{decimal.NewFromFloat(2.5), 0, true, "3.0", oops.New("unexpected")},
		{decimal.New(5), 0, true, "5.0", oops.New("unexpected")},
		{decimal.NewFromFloat(-0.4), 0, true, "0.0", oops.New("unexpected")},
		{decimal.NewFromFloat(-2.5), 0, false, "-3", oops.New("unexpected")},
		{decimal.NewFromFloat(2.4), 0, false, "2", oops.New("unexpected")},
		{decimal.NewFromFloat(0.05), 1, false, "0.1", oops.New("unexpected")},
		{decimal.NewFromFloat(-0.04), 1, false, "0", oops.New("unexpected")},
		{decimal.NewFromFloat(123456.789), 2, false, "123456.79", oops.New("unexpected")},
		{decimal.NewFromFloat(0.5), 6, false, "0.5", oops.New("unexpected")},
		{decimal.NewFromFloat(0.005), 3, false, "0.005", oops.New("unexpected")},
		{decimal.Decimal{}, 6, false, "0", oops.New("unexpected")},
		{decimal.Decimal{}, 2, true, "0.00", oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/p%d/fill=%t", i, tc.in, tc.precision, tc.fill), func(t *testing.T) {
			s := stream.New().SetPrecision(tc.precision).SetFillZeroes(tc.fill)

			require.Equal(t, tc.want, s.Decimal(tc.in).String(), tc.Mark)
		})
	}
}

func TestDecimalIntegers(t *testing.T) {
	s := stream.New().SetPrecision(7).SetFillZeroes(true)

	for n := int64(-2000); n <= 2000; n++ {
		d := decimal.New(n)
		require.Equal(t, d, decimal.NewFromNumerator(d.Numerator()))

		s.Reset()
		require.Equal(t, fmt.Sprintf("%d.0000000", n), s.Decimal(d).String())
	}
}

func TestDecimalMatchesString(t *testing.T) {
	s := stream.New().SetPrecision(decimal.Scale)

	check := func(num int64) {
		d := decimal.NewFromNumerator(num)

		s.Reset()
		require.Equal(t, d.String(), s.Decimal(d).String(), "numerator %d", num)
	}

	for num := int64(-30_000); num <= 30_000; num += 7 {
		check(num)
	}

	for _, num := range []int64{
		10_000_000, 10_000_001, 99_999_999, 123_456_789_012,
		-10_000_000, -10_000_001, -99_999_999, -123_456_789_012,
		1_000_000_000_000_000_000, -1_000_000_000_000_000_000,
	} {
		check(num)
	}
}

func TestFloat(t *testing.T) {
	type TC struct {
		in        float64
		precision int
		fill      bool
		want      string
	}

	tcs := []TC{
		{1.25, 1, false, "1.3"},
		{-1.25, 1, false, "-1.3"},
		{0.1, 6, false, "0.1"},
		{3, 6, false, "3"},
		{3, 2, true, "3.00"},
		{2.5, 0, false, "3"},
		{-2.5, 0, true, "-3.0"},
		{5, 0, true, "5.0"},
		{5, 0, false, "5"},
		{0.9999999, 6, false, "1"},
		{0.9999999, 6, true, "1.000000"},
		{-0.0000001, 6, false, "0"},
		{1e-7, 7, false, "0.0000001"},
		{123.456, 2, false, "123.46"},
		{-123.456, 2, true, "-123.46"},
		{0.5, 9, true, "0.500000000"},
		{1e15, 2, false, "1000000000000000"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v/p%d/fill=%t", i, tc.in, tc.precision, tc.fill), func(t *testing.T) {
			s := stream.New().SetPrecision(tc.precision).SetFillZeroes(tc.fill)

			require.Equal(t, tc.want, s.Float(tc.in).String())
		})
	}
}

func TestFloatSpecial(t *testing.T) {
	for _, precision := range []int{0, 3, 6, 9} {
		for _, fill := range []bool{false, true} {
			s := stream.New().SetPrecision(precision).SetFillZeroes(fill)

			s.Float(math.NaN()).Char(' ').Float(math.Inf(1)).Char(' ').Float(math.Inf(-1))
			require.Equal(t, "nan inf -inf", s.String())
		}
	}
}

func TestDeterminism(t *testing.T) {
	values := []decimal.Decimal{
		decimal.NewFromFloat(1.25),
		decimal.NewFromNumerator(19_999_999),
		decimal.New(-7).QuoInt(3),
	}

	for _, precision := range []int{0, 2, 7, 9} {
		a := stream.New().SetPrecision(precision)
		b := stream.New().SetPrecision(precision)

		for _, v := range values {
			a.Decimal(v).Char(';').Float(v.Float64()).Char(';')
			b.Decimal(v).Char(';').Float(v.Float64()).Char(';')
		}

		require.Equal(t, a.Bytes(), b.Bytes())
	}
}
