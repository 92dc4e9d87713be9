// Package search implements the concurrent brute-force draw search: a
// coordinator spawns one worker per CPU, each worker draws random
// combinations until the first one matches the target mask, and a shared
// atomic counter tracks how many draws the whole run consumed.
package search

import (
	"context"
	"io"
	"runtime"
	"slices"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lottohunt/lottohunt/internal/draw"
	"github.com/lottohunt/lottohunt/internal/xrand"
)

// Engine coordinates one search run. All shared state (counter, stop
// flag) lives inside Run, so independent engines can run side by side in
// the same process.
type Engine struct {
	cfg           Config
	logger        *log.Logger
	clock         quartz.Clock
	newSource     func(seed uint64) draw.Source32
	progressEvery time.Duration

	workers int
	seed    uint64
	seeder  *xrand.SplitMix64
	target  []uint8
	mask    draw.Mask
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for run progress and summary events.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithClock substitutes the clock used for elapsed time and progress
// ticks. Tests pass a quartz mock.
func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithSourceFactory replaces the per-worker generator constructor. Tests
// use scripted sources to force exact draw sequences.
func WithSourceFactory(f func(seed uint64) draw.Source32) Option {
	return func(e *Engine) { e.newSource = f }
}

// WithProgressInterval enables periodic progress logging while the
// search runs. Zero disables it.
func WithProgressInterval(d time.Duration) Option {
	return func(e *Engine) { e.progressEvery = d }
}

// New validates cfg and resolves everything the run needs up front: the
// worker count, the base seed, and the target combination with its mask.
// Configuration errors surface here, never inside the draw loop.
func New(cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:    cfg,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		clock:  quartz.NewReal(),
		newSource: func(seed uint64) draw.Source32 {
			return xrand.NewGen(seed)
		},
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e.workers = cfg.Workers
	if e.workers == 0 {
		e.workers = runtime.NumCPU()
	}
	if e.workers < 1 {
		e.workers = 1
	}

	e.seed = uint64(cfg.Seed)
	if cfg.Seed == 0 {
		e.seed = uint64(e.clock.Now().UnixNano())
	}

	// One seed stream feeds the target draw and every worker, so no two
	// workers ever share a generator seed.
	e.seeder = xrand.NewSplitMix64(e.seed)

	if len(cfg.Target) > 0 {
		e.target = slices.Clone(cfg.Target)
		slices.Sort(e.target)
	} else {
		e.target = draw.Random(e.newSource(e.seeder.Next()), cfg.Pick, cfg.Range)
	}
	e.mask = draw.Encode(e.target)

	return e, nil
}

// Target returns the combination the run searches for, sorted.
func (e *Engine) Target() []uint8 { return slices.Clone(e.target) }

// Mask returns the bit mask of the target combination.
func (e *Engine) Mask() draw.Mask { return e.mask }

// Workers returns the resolved worker count.
func (e *Engine) Workers() int { return e.workers }

// Seed returns the base seed the run derives all generator state from.
func (e *Engine) Seed() uint64 { return e.seed }

// Run spawns the workers, blocks until the target is found (or ctx is
// cancelled) and every worker has drained, then returns the aggregated
// result. An Engine is good for a single Run.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	e.logger.Info("starting search",
		"target", draw.Format(e.target),
		"mask", e.mask.String(),
		"workers", e.workers,
		"batch", e.cfg.BatchSize,
		"seed", e.seed)

	var (
		total  atomic.Uint64
		stop   atomic.Bool
		winner atomic.Int64
	)
	winner.Store(-1)

	workers := make([]*worker, e.workers)
	for id := range workers {
		workers[id] = &worker{
			id:     id,
			src:    e.newSource(e.seeder.Next()),
			pick:   e.cfg.Pick,
			rangeN: e.cfg.Range,
			batch:  e.cfg.BatchSize,
			target: e.mask,
			total:  &total,
			stop:   &stop,
		}
	}

	start := e.clock.Now()

	g, gctx := errgroup.WithContext(ctx)

	if e.progressEvery > 0 {
		pctx, pcancel := context.WithCancel(gctx)
		defer pcancel()
		e.clock.TickerFunc(pctx, e.progressEvery, func() error {
			draws := total.Load()
			elapsed := e.clock.Since(start)
			var rate float64
			if elapsed > 0 {
				rate = float64(draws) / elapsed.Seconds()
			}
			e.logger.Info("searching", "draws", draws, "draws_per_sec", uint64(rate))
			return nil
		}, "progress")
	}

	for _, w := range workers {
		g.Go(func() error {
			if w.run(gctx) {
				winner.CompareAndSwap(-1, int64(w.id))
			}
			return nil
		})
	}

	err := g.Wait()
	// Idempotent: the winning worker already set it. Covers the
	// cancellation path where no worker ever hit.
	stop.Store(true)
	elapsed := e.clock.Since(start)
	if err != nil {
		return nil, err
	}

	win := winner.Load()
	if win < 0 {
		// No hit means the context was cancelled before any worker won.
		return nil, ctx.Err()
	}

	perWorker := make([]uint64, e.workers)
	for id, w := range workers {
		perWorker[id] = w.drawn
	}

	res := &Result{
		Target:      e.Target(),
		Mask:        e.mask,
		Seed:        e.seed,
		Workers:     e.workers,
		BatchSize:   e.cfg.BatchSize,
		Draws:       total.Load(),
		WorkerDraws: perWorker,
		Winner:      int(win),
		Elapsed:     elapsed,
	}

	e.logger.Info("search finished",
		"draws", res.Draws,
		"winner", res.Winner,
		"elapsed", res.Elapsed,
		"draws_per_sec", uint64(res.PerSecond()))

	return res, nil
}
