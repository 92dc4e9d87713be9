package xrand

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
	mixMul1       = 0xbf58476d1ce4e5b9
	mixMul2       = 0x94d049bb133111eb
)

// SplitMix64 is a tiny full-period generator used to stretch a single
// 64-bit seed into well-distributed seed material. Its only job here is
// filling the state words of a Gen; it is not used in the draw loop.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 creates a SplitMix64 starting from seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Next advances the state by an odd increment and mixes it down.
// Same seed and call sequence always produce the same outputs.
func (s *SplitMix64) Next() uint64 {
	s.state += goldenRatio64
	z := s.state
	z = (z ^ (z >> 30)) * mixMul1
	z = (z ^ (z >> 27)) * mixMul2
	return z ^ (z >> 31)
}
