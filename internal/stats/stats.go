// Package stats aggregates draw counts across repeated search runs so
// the CLI can report how the observed effort compares to the odds.
package stats

import (
	"math"
	"sort"
)

// Summary tracks draw-count statistics over independent runs.
type Summary struct {
	Runs   int
	Sum    float64
	Sum2   float64   // sum of squares for variance calculation
	Values []float64 // all values, for median/percentile calculation

	MinDraws float64
	MaxDraws float64
}

// Add incorporates one run's total draw count.
func (s *Summary) Add(draws float64) {
	if s.Runs == 0 || draws < s.MinDraws {
		s.MinDraws = draws
	}
	if draws > s.MaxDraws {
		s.MaxDraws = draws
	}

	s.Runs++
	s.Sum += draws
	s.Sum2 += draws * draws
	s.Values = append(s.Values, draws)
}

// Mean returns the average draws per run.
func (s *Summary) Mean() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.Sum / float64(s.Runs)
}

// Variance returns the sample variance of the draw counts.
func (s *Summary) Variance() float64 {
	if s.Runs < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Runs)*mean*mean) / float64(s.Runs-1)
}

// StdDev returns the sample standard deviation.
func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Summary) StdError() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Runs))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Summary) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median draw count.
func (s *Summary) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the p-th percentile (p in [0,1]) with linear
// interpolation between adjacent values.
func (s *Summary) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
