package montecarlo

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/fracperc/bernoulli"
	"github.com/katalvlaran/fracperc/cluster"
	"github.com/katalvlaran/fracperc/fractal"
)

var (
	// ErrRuns indicates a number of runs smaller than one.
	ErrRuns = errors.New("montecarlo: number of runs must be at least 1")
	// ErrNoRuns indicates Finalize was called before any run was added.
	ErrNoRuns = errors.New("montecarlo: no runs recorded")
)

// Params describes one Monte Carlo experiment.
type Params struct {
	// Subdivision is M, Levels is S, P the survival probability.
	Subdivision int
	Levels      int
	P           float64
	// Runs is the number of independent samples N.
	Runs int
	// Seed initializes the random stream.
	Seed uint32
	// MixSeed folds P, M, S and N into Seed before the stream is created.
	MixSeed bool
	// PercolatingOnly restricts every sample to its percolating cluster.
	PercolatingOnly bool
	// Strategy selects the cluster labeler used by the percolating variant.
	Strategy cluster.Strategy
}

// Validate reports the first invalid parameter.
func (p Params) Validate() error {
	if err := p.fractal().Validate(); err != nil {
		return err
	}
	if p.Runs < 1 {
		return fmt.Errorf("N=%d: %w", p.Runs, ErrRuns)
	}
	return nil
}

// StreamSeed returns the seed the random stream is created with.
func (p Params) StreamSeed() uint64 {
	if p.MixSeed {
		return uint64(bernoulli.MixSeed(p.Seed, p.P, p.Subdivision, p.Levels, p.Runs))
	}
	return uint64(p.Seed)
}

// BaseName returns the output file stem shared by the result record and the
// image, e.g. "frac-perc-mink-val-NN-percolatingcluster-3x3-n-3-p-0.5".
func (p Params) BaseName() string {
	variant := ""
	if p.PercolatingOnly {
		variant = "percolatingcluster-"
	}
	return fmt.Sprintf("frac-perc-mink-val-NN-%s%dx%d-n-%d-p-%s",
		variant, p.Subdivision, p.Subdivision, p.Levels, strconv.FormatFloat(p.P, 'g', 2, 64))
}

func (p Params) fractal() fractal.Params {
	return fractal.Params{Subdivision: p.Subdivision, Levels: p.Levels, P: p.P}
}
