// Package bernoulli fills binary fields with independent Bernoulli draws taken
// from one explicit, seeded pseudo-random stream.
//
// Every fill consumes the stream in a fixed order (x outer, y inner), so an
// experiment that threads a single Stream through all of its fills is
// reproducible bit for bit from its seed.
package bernoulli

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/fracperc/field"
)

// ErrProbability indicates a draw probability outside [0,1].
var ErrProbability = errors.New("bernoulli: probability out of range")

// pcgIncrement is the fixed second PCG word; only the seed varies per stream.
const pcgIncrement = 0x9e3779b97f4a7c15

// Stream is a deterministic source of Bernoulli fields.
// A Stream is not safe for concurrent use.
type Stream struct {
	seed  uint64
	src   *rand.PCG
	draws uint64
}

// NewStream returns a stream seeded with seed.
func NewStream(seed uint64) *Stream {
	return &Stream{seed: seed, src: rand.NewPCG(seed, pcgIncrement)}
}

// Seed returns the seed the stream was created with.
func (s *Stream) Seed() uint64 { return s.seed }

// Draws returns the number of cells drawn so far.
func (s *Stream) Draws() uint64 { return s.draws }

// Fill sets every cell of f to true with probability probTrue, independently,
// and advances the stream by f.Len() draws.
// Returns ErrProbability if probTrue is outside [0,1]; f is untouched then.
// Complexity: O(Nx×Ny).
func (s *Stream) Fill(f *field.Binary, probTrue float64) error {
	if probTrue < 0 || probTrue > 1 || probTrue != probTrue {
		return fmt.Errorf("Fill(p=%v): %w", probTrue, ErrProbability)
	}
	d := distuv.Bernoulli{P: probTrue, Src: s.src}
	for x := 0; x < f.Nx(); x++ {
		for y := 0; y < f.Ny(); y++ {
			f.Set(x, y, d.Rand() == 1)
		}
	}
	s.draws += uint64(f.Len())

	return nil
}

// MixSeed folds the experiment parameters into a user seed so that different
// parameter sets started from the same seed draw different streams:
//
//	((seed·⌊100p⌋·1000 + 100·M + S)·100000) + N
//
// evaluated in wrapping uint32 arithmetic.
func MixSeed(seed uint32, p float64, subdivision, levels, runs int) uint32 {
	seed *= uint32(int(p*100 + 1e-10))
	seed *= 1000
	seed += uint32(subdivision) * 100
	seed += uint32(levels)
	seed *= 100000
	seed += uint32(runs)

	return seed
}
