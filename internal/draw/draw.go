// Package draw implements the hot-path primitives of the search: drawing
// k distinct values from 1..n without allocating, and encoding a drawn
// combination as a bit mask so two combinations compare in O(1).
package draw

import (
	"fmt"
	"slices"
	"strings"
)

// MaxRange is the largest supported range; Mask is 64 bits wide so every
// value in 1..MaxRange maps to its own bit.
const MaxRange = 64

// Source32 is the minimal generator interface the sampler needs. The
// production implementation is xrand.Gen; tests substitute scripted
// sources to force exact draw sequences.
type Source32 interface {
	Next32() uint32
}

// SampleInto fills dst with len(dst) pairwise-distinct values from 1..n,
// using a partial Fisher-Yates over a stack-resident pool. Only len(dst)
// swap-and-pick steps run, not a full shuffle. Output order is draw
// order, not sorted.
//
// The mod (n-i) reduction carries a small modulo bias. That is intentional
// and accepted: n is tiny relative to the 32-bit output range, and the
// rejection-free loop keeps the hot path branch-predictable.
//
// Caller must guarantee 0 < len(dst) <= n <= MaxRange; this is validated
// once at engine startup, never here.
func SampleInto(dst []uint8, rng Source32, n int) {
	var pool [MaxRange]uint8
	for i := 0; i < n; i++ {
		pool[i] = uint8(i + 1)
	}

	for i := range dst {
		idx := int(rng.Next32()%uint32(n-i)) + i
		dst[i] = pool[idx]
		pool[idx] = pool[i]
	}
}

// Random draws a sorted combination of k values from 1..n. Used once at
// startup to pick the target; not part of the hot loop.
func Random(rng Source32, k, n int) []uint8 {
	vals := make([]uint8, k)
	SampleInto(vals, rng, n)
	slices.Sort(vals)
	return vals
}

// Format renders a combination as space-separated numbers.
func Format(values []uint8) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	return sb.String()
}
