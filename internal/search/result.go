package search

import (
	"time"

	"github.com/lottohunt/lottohunt/internal/draw"
)

// Result summarizes a completed search run.
type Result struct {
	Target    []uint8
	Mask      draw.Mask
	Seed      uint64
	Workers   int
	BatchSize int

	// Draws is the total number of combinations drawn across all
	// workers, including the winning draw and the counted overshoot of
	// workers that stopped late.
	Draws uint64

	// WorkerDraws holds each worker's own draw total; the entries sum
	// to Draws.
	WorkerDraws []uint64

	// Winner is the index of the worker that made the winning draw.
	Winner int

	Elapsed time.Duration
}

// PerSecond returns the aggregate draw throughput of the run.
func (r *Result) PerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Draws) / r.Elapsed.Seconds()
}
