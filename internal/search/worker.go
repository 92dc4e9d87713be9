package search

import (
	"context"
	"sync/atomic"

	"github.com/lottohunt/lottohunt/internal/draw"
)

// worker runs the draw loop on one goroutine. Its generator, candidate
// buffer and shuffle pool are exclusively owned; the only shared state it
// touches is the draw counter (atomic add) and the stop flag.
type worker struct {
	id     int
	src    draw.Source32
	pick   int
	rangeN int
	batch  int
	target draw.Mask

	total *atomic.Uint64
	stop  *atomic.Bool

	// drawn is this worker's own total, kept so the engine can verify
	// the shared counter against the per-worker sums.
	drawn uint64
}

// run draws batches until it makes the winning draw or observes the stop
// flag at a batch boundary. Returns true iff this worker hit the target.
//
// The stop flag and ctx are polled only between batches, so a losing
// worker can overshoot the logical stopping point by up to batch-1 draws.
// Those draws are counted; the overshoot is accepted.
func (w *worker) run(ctx context.Context) bool {
	var buf [draw.MaxRange]uint8
	hand := buf[:w.pick]

	for !w.stop.Load() {
		if ctx.Err() != nil {
			return false
		}

		for i := 0; i < w.batch; i++ {
			draw.SampleInto(hand, w.src, w.rangeN)
			if draw.Encode(hand) == w.target {
				n := uint64(i + 1)
				w.drawn += n
				w.total.Add(n)
				w.stop.Store(true)
				return true
			}
		}

		w.drawn += uint64(w.batch)
		w.total.Add(uint64(w.batch))
	}
	return false
}
