package draw

import (
	"fmt"
	"math/bits"
)

// Mask is a bit-set encoding of a combination: bit v-1 is set for each
// value v. Two masks are equal iff the underlying sets are equal,
// regardless of draw order, which is what makes the per-draw comparison
// a single integer compare.
type Mask uint64

// Encode returns the mask for a combination of distinct values in
// 1..MaxRange.
func Encode(values []uint8) Mask {
	var m Mask
	for _, v := range values {
		m |= 1 << (v - 1)
	}
	return m
}

// Count returns the number of values encoded in the mask.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// Values expands the mask back into a sorted combination.
func (m Mask) Values() []uint8 {
	vals := make([]uint8, 0, m.Count())
	for v := uint8(1); v <= MaxRange; v++ {
		if m&(1<<(v-1)) != 0 {
			vals = append(vals, v)
		}
	}
	return vals
}

func (m Mask) String() string {
	return fmt.Sprintf("0x%08x", uint64(m))
}
