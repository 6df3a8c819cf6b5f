// Package digits holds the lookup tables used to emit decimal text a few
// digits at a time.
package digits

// Rev2 holds the two ASCII digits of every i in [0, 100) at Rev2[2*i:].
// Rev3 holds the three ASCII digits of every i in [0, 1000) at Rev3[3*i:].
//
// Emitters fill their buffers from the end, so a group lands directly in
// front of the lower-order digits already written.
var (
	Rev2 = table(2)
	Rev3 = table(3)
)

// Pow10 holds 10^0 through 10^18, every power of ten that fits in an int64.
var Pow10 = [...]int64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

func table(width int) []byte {
	n := 1
	for i := 0; i < width; i++ {
		n *= 10
	}

	t := make([]byte, n*width)
	for i := 0; i < n; i++ {
		v := i
		for j := width - 1; j >= 0; j-- {
			t[i*width+j] = byte('0' + v%10)
			v /= 10
		}
	}

	return t
}
