package decimal

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a hash of the numerator. Equal decimals hash equal.
func (d Decimal) Hash() uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(d.num))

	return xxhash.Sum64(b[:])
}
