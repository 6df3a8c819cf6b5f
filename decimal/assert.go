//go:build !fixeddebug

package decimal

func assertRange(v int64, op string) {}

func assertFloat(f float64, op string) {}

func assertMul(a, b, r int64, op string) {}
