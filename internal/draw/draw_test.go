package draw

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lottohunt/lottohunt/internal/xrand"
)

// constSource always returns the same value; with 0 the sampler walks the
// pool in order, which makes its mechanics easy to pin down.
type constSource uint32

func (c constSource) Next32() uint32 { return uint32(c) }

func TestSampleInto_Uniqueness(t *testing.T) {
	rng := xrand.NewGen(99)

	for _, tc := range []struct{ k, n int }{
		{1, 1},
		{1, 49},
		{6, 49},
		{10, 10},
		{32, 64},
		{64, 64},
	} {
		t.Run(fmt.Sprintf("%d_of_%d", tc.k, tc.n), func(t *testing.T) {
			dst := make([]uint8, tc.k)
			for trial := 0; trial < 200; trial++ {
				SampleInto(dst, rng, tc.n)

				seen := make(map[uint8]bool, tc.k)
				for _, v := range dst {
					require.GreaterOrEqual(t, int(v), 1)
					require.LessOrEqual(t, int(v), tc.n)
					require.False(t, seen[v], "duplicate value %d in draw %v", v, dst)
					seen[v] = true
				}
			}
		})
	}
}

func TestSampleInto_ZeroSourceWalksPool(t *testing.T) {
	// With r=0 every step picks pool[i], so the output is 1..k in order.
	dst := make([]uint8, 6)
	SampleInto(dst, constSource(0), 49)
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6}, dst)
}

func TestSampleInto_FullRangeIsPermutation(t *testing.T) {
	rng := xrand.NewGen(7)
	dst := make([]uint8, 10)
	SampleInto(dst, rng, 10)

	assert.Equal(t, Mask(1<<10-1), Encode(dst), "k=n draw must cover every value")
}

func TestEncode_OrderIndependent(t *testing.T) {
	perms := [][]uint8{
		{4, 6, 11, 16, 17, 20},
		{20, 17, 16, 11, 6, 4},
		{11, 4, 20, 6, 16, 17},
	}

	want := Encode(perms[0])
	for _, p := range perms[1:] {
		assert.Equal(t, want, Encode(p))
	}
}

func TestEncode_KnownMask(t *testing.T) {
	m := Encode([]uint8{4, 6, 11, 16, 17, 20})
	assert.Equal(t, Mask(0x00098428), m)
	assert.Equal(t, "0x00098428", m.String())
	assert.Equal(t, 6, m.Count())
}

func TestEncode_DifferentSetsDiffer(t *testing.T) {
	a := Encode([]uint8{1, 2, 3, 4, 5, 6})
	b := Encode([]uint8{1, 2, 3, 4, 5, 7})
	assert.NotEqual(t, a, b)

	// single-element sets across the full range are all distinct
	seen := make(map[Mask]bool)
	for v := uint8(1); v <= MaxRange; v++ {
		m := Encode([]uint8{v})
		require.False(t, seen[m], "mask collision for value %d", v)
		seen[m] = true
	}
}

func TestMask_Values(t *testing.T) {
	combo := []uint8{4, 6, 11, 16, 17, 20}
	assert.Equal(t, combo, Encode(combo).Values())
}

func TestRandom_SortedAndValid(t *testing.T) {
	rng := xrand.NewGen(1)
	combo := Random(rng, 6, 49)

	require.Len(t, combo, 6)
	for i := 1; i < len(combo); i++ {
		assert.Less(t, combo[i-1], combo[i], "combination must be sorted and distinct")
	}
	assert.LessOrEqual(t, int(combo[len(combo)-1]), 49)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "4 6 11 16 17 20", Format([]uint8{4, 6, 11, 16, 17, 20}))
	assert.Equal(t, "1", Format([]uint8{1}))
	assert.Equal(t, "", Format(nil))
}

func BenchmarkSampleEncode(b *testing.B) {
	rng := xrand.NewGen(1)
	var dst [6]uint8
	var sink Mask
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SampleInto(dst[:], rng, 49)
		sink = Encode(dst[:])
	}
	_ = sink
}
