package fractal

import (
	"fmt"
	"math"
)

// Params selects one finite approximation of fractal percolation.
type Params struct {
	// Subdivision is M, the number of sub-cells per axis at every level.
	Subdivision int
	// Levels is S, the number of approximation levels.
	Levels int
	// P is the survival probability of each cell at each level.
	P float64
}

// Validate reports the first invalid parameter, wrapped with its value.
func (p Params) Validate() error {
	if p.Subdivision < 2 {
		return fmt.Errorf("M=%d: %w", p.Subdivision, ErrSubdivision)
	}
	if p.Levels < 1 {
		return fmt.Errorf("S=%d: %w", p.Levels, ErrLevels)
	}
	if !(p.P > 0 && p.P <= 1) {
		return fmt.Errorf("p=%v: %w", p.P, ErrProbability)
	}
	if _, err := p.Side(); err != nil {
		return err
	}
	return nil
}

// Side returns M^S, the side length of the final grid.
// Returns ErrGridOverflow if M^S or M^S·M^S overflows int.
func (p Params) Side() (int, error) {
	if p.Subdivision < 2 || p.Levels < 1 {
		return 0, fmt.Errorf("M=%d S=%d: %w", p.Subdivision, p.Levels, ErrGridOverflow)
	}
	side := 1
	for k := 0; k < p.Levels; k++ {
		if side > math.MaxInt/p.Subdivision {
			return 0, fmt.Errorf("%d^%d: %w", p.Subdivision, p.Levels, ErrGridOverflow)
		}
		side *= p.Subdivision
	}
	if side > math.MaxInt/side {
		return 0, fmt.Errorf("(%d^%d)^2: %w", p.Subdivision, p.Levels, ErrGridOverflow)
	}
	return side, nil
}
