package fractal

import (
	"fmt"

	"github.com/katalvlaran/fracperc/bernoulli"
	"github.com/katalvlaran/fracperc/field"
)

// Build draws one S-th approximation of fractal percolation with the given
// parameters, consuming randomness from stream. In the returned field a true
// cell is dead.
// Complexity: see package documentation.
func Build(stream *bernoulli.Stream, params Params, opts ...Option) (*field.Binary, error) {
	if stream == nil {
		return nil, ErrNilStream
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	cfg := newBuildConfig(opts...)

	side, _ := params.Side()
	final, err := field.NewBinary(side, side)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	pDeath := 1 - params.P
	size := 1
	for k := 1; k <= params.Levels; k++ {
		size *= params.Subdivision
		h := side / size // final pixels per level-k cell, M^(S-k)

		level, err := field.NewBinary(size, size)
		if err != nil {
			return nil, fmt.Errorf("Build: level %d: %w", k, err)
		}
		if err := stream.Fill(level, pDeath); err != nil {
			return nil, fmt.Errorf("Build: level %d: %w", k, err)
		}

		for xi := 0; xi < size; xi++ {
			for yi := 0; yi < size; yi++ {
				if level.At(xi, yi) {
					killBlock(final, xi*h, yi*h, h)
				}
			}
		}
		if cfg.levelHook != nil {
			cfg.levelHook(k, final)
		}
	}

	return final, nil
}

// killBlock marks dead the h×h block whose lower-left pixel is (x0,y0).
func killBlock(f *field.Binary, x0, y0, h int) {
	for x := x0; x < x0+h; x++ {
		for y := y0; y < y0+h; y++ {
			f.Set(x, y, true)
		}
	}
}
