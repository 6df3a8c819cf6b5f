//go:build fixeddebug

package decimal

import (
	"fmt"
	"math"
)

// Range assertions are compiled in with -tags fixeddebug. They panic where
// release builds silently produce a wrong value.

func assertRange(v int64, op string) {
	if v > maxInt || v < -maxInt {
		panic(fmt.Sprintf("decimal: %s: %d outside of ±%d", op, v, maxInt))
	}
}

func assertFloat(f float64, op string) {
	if math.IsNaN(f) || math.Abs(f) > MaxAbs {
		panic(fmt.Sprintf("decimal: %s: %v outside of ±%d", op, f, maxInt))
	}
}

func assertMul(a, b, r int64, op string) {
	if a != 0 && (r/a != b || (a == -1 && b == math.MinInt64)) {
		panic(fmt.Sprintf("decimal: %s: %d * %d overflows", op, a, b))
	}

	assertRange(r/Factor, op)
}
