package montecarlo

import (
	"context"
	"fmt"

	"github.com/katalvlaran/fracperc/bernoulli"
	"github.com/katalvlaran/fracperc/euler"
	"github.com/katalvlaran/fracperc/field"
	"github.com/katalvlaran/fracperc/fractal"
	"github.com/katalvlaran/fracperc/internal/monitoring"
	"github.com/katalvlaran/fracperc/percolation"
)

// Estimator returns 8× the Euler characteristic of the dead pixels of f.
type Estimator func(f *field.Binary, bc euler.Boundary) int

// Option customizes Run.
type Option func(*runConfig)

type runConfig struct {
	estimator Estimator
	onTrial   func(Trial)
	onField   func(run int, f *field.Binary)
	onSnap    func(run int, s percolation.Snapshot)
}

// WithEstimator replaces euler.DeadTimesEight. Panics on nil.
func WithEstimator(e Estimator) Option {
	if e == nil {
		panic("montecarlo: WithEstimator(nil)")
	}
	return func(c *runConfig) { c.estimator = e }
}

// WithTrialObserver calls fn after every run. Panics on nil.
func WithTrialObserver(fn func(Trial)) Option {
	if fn == nil {
		panic("montecarlo: WithTrialObserver(nil)")
	}
	return func(c *runConfig) { c.onTrial = fn }
}

// WithFieldObserver calls fn with the measured field of every run, after the
// percolating filter when it applies. The field must not be retained.
// Panics on nil.
func WithFieldObserver(fn func(run int, f *field.Binary)) Option {
	if fn == nil {
		panic("montecarlo: WithFieldObserver(nil)")
	}
	return func(c *runConfig) { c.onField = fn }
}

// WithSnapshotObserver calls fn with the labeled, unfiltered field of every
// run of the percolating variant. Panics on nil.
func WithSnapshotObserver(fn func(run int, s percolation.Snapshot)) Option {
	if fn == nil {
		panic("montecarlo: WithSnapshotObserver(nil)")
	}
	return func(c *runConfig) { c.onSnap = fn }
}

// Run executes params.Runs independent runs and returns their summary.
// ctx is checked between runs; a cancelled experiment returns ctx.Err() and
// no partial result.
func Run(ctx context.Context, params Params, opts ...Option) (Result, error) {
	if err := params.Validate(); err != nil {
		return Result{}, fmt.Errorf("Run: %w", err)
	}
	cfg := runConfig{estimator: euler.DeadTimesEight}
	for _, opt := range opts {
		opt(&cfg)
	}

	stream := bernoulli.NewStream(params.StreamSeed())
	var stat RunStatistic
	for run := 0; run < params.Runs; run++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		trial, err := runOnce(stream, params, &cfg, run)
		if err != nil {
			return Result{}, fmt.Errorf("Run: run %d: %w", run, err)
		}
		stat.Add(trial)
		if cfg.onTrial != nil {
			cfg.onTrial(trial)
		}
	}

	return stat.Finalize(params)
}

// runOnce draws, filters and measures one sample.
func runOnce(stream *bernoulli.Stream, params Params, cfg *runConfig, run int) (Trial, error) {
	f, err := fractal.Build(stream, params.fractal())
	if err != nil {
		return Trial{}, err
	}

	trial := Trial{Run: run}
	measure := true
	if params.PercolatingOnly {
		opts := []percolation.Option{percolation.WithStrategy(params.Strategy)}
		if cfg.onSnap != nil {
			opts = append(opts, percolation.WithSnapshot(func(s percolation.Snapshot) {
				cfg.onSnap(run, s)
			}))
		}
		ok, err := percolation.KeepSpanning(f, opts...)
		if err != nil {
			return Trial{}, err
		}
		trial.Percolating = ok
		measure = ok
		if ok {
			monitoring.Logf("run %d found a percolating cluster", run)
		} else {
			monitoring.Logf("run %d found no percolating cluster", run)
		}
	}

	if measure {
		trial.Raw = cfg.estimator(f, euler.WhiteOutside)
	}
	if trial.Raw%8 != 0 {
		trial.Integrity = true
		monitoring.Logf("run %d: non-integer Euler characteristic, 8χ = %d", run, trial.Raw)
	}
	trial.Chi = -trial.Raw / 8

	if cfg.onField != nil {
		cfg.onField(run, f)
	}
	return trial, nil
}
