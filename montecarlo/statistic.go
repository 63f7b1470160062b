package montecarlo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// Trial is the outcome of one run.
type Trial struct {
	Run int
	// Chi is the Euler characteristic attributed to the surviving set.
	Chi int
	// Raw is the estimator output, 8·χ_dead.
	Raw int
	// Percolating reports a percolating cluster (percolating variant only).
	Percolating bool
	// Integrity is set when Raw is not divisible by 8.
	Integrity bool
}

// RunStatistic accumulates running sums over completed runs.
// The zero value is ready to use.
type RunStatistic struct {
	sum, sumSq  float64
	runs        int
	percolating int
	flagged     int
}

// Add folds one completed run into the sums.
func (s *RunStatistic) Add(t Trial) {
	chi := float64(t.Chi)
	s.sum += chi
	s.sumSq += chi * chi
	s.runs++
	if t.Percolating {
		s.percolating++
	}
	if t.Integrity {
		s.flagged++
	}
}

// Runs returns the number of runs added so far.
func (s *RunStatistic) Runs() int { return s.runs }

// Finalize computes the mean, the unbiased standard error of the mean and the
// percolating fraction, rescaled for the parameters of p.
// Returns ErrNoRuns if nothing was added.
func (s *RunStatistic) Finalize(p Params) (Result, error) {
	if s.runs == 0 {
		return Result{}, ErrNoRuns
	}
	n := float64(s.runs)
	mean := s.sum / n

	var stderr float64
	if s.runs > 1 {
		if v := (s.sumSq - s.sum*s.sum/n) / n / (n - 1); v > 0 {
			stderr = math.Sqrt(v)
		}
	}

	scale := ScaleFactor(p.Subdivision, p.Levels, p.P)
	res := Result{
		P:                   p.P,
		Subdivision:         p.Subdivision,
		Levels:              p.Levels,
		Runs:                s.runs,
		Seed:                p.Seed,
		PercolatingOnly:     p.PercolatingOnly,
		RawMean:             mean,
		RawStdErr:           stderr,
		Scale:               scale,
		Mean:                mean * scale,
		StdErr:              stderr * scale,
		PercolatingFraction: float64(s.percolating) / n,
		IntegrityWarnings:   s.flagged,
	}
	res.CI95 = distuv.UnitNormal.Quantile(0.975) * res.StdErr

	return res, nil
}

// ScaleFactor returns (1/(M²·p))^S.
func ScaleFactor(subdivision, levels int, p float64) float64 {
	return math.Pow(1/(float64(subdivision)*float64(subdivision)*p), float64(levels))
}

// Result is the summary of one experiment.
type Result struct {
	P           float64
	Subdivision int
	Levels      int
	Runs        int
	Seed        uint32

	PercolatingOnly bool

	// Mean and StdErr are rescaled by Scale; RawMean and RawStdErr are not.
	Mean      float64
	StdErr    float64
	RawMean   float64
	RawStdErr float64
	Scale     float64
	// CI95 is the half-width of the normal 95% confidence interval of Mean.
	CI95 float64

	PercolatingFraction float64
	IntegrityWarnings   int
}

// Record renders the one-line result record: "p mean stderr S", followed by
// "fraction N" in the percolating variant.
func (r Result) Record() string {
	fields := []string{
		formatFloat(r.P),
		formatFloat(r.Mean),
		formatFloat(r.StdErr),
		strconv.Itoa(r.Levels),
	}
	if r.PercolatingOnly {
		fields = append(fields, formatFloat(r.PercolatingFraction), strconv.Itoa(r.Runs))
	}
	return strings.Join(fields, " ")
}

// String implements fmt.Stringer for logs.
func (r Result) String() string {
	return fmt.Sprintf("p=%v M=%d S=%d N=%d mean=%.6g±%.3g percolating=%.3g warnings=%d",
		r.P, r.Subdivision, r.Levels, r.Runs, r.Mean, r.CI95, r.PercolatingFraction, r.IntegrityWarnings)
}

// formatFloat prints six significant digits without trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// FileName returns the path of the result record under prefix.
func (r Result) FileName(prefix string) string {
	p := Params{Subdivision: r.Subdivision, Levels: r.Levels, P: r.P, PercolatingOnly: r.PercolatingOnly}
	return prefix + p.BaseName() + ".dat"
}
