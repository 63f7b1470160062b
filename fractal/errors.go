package fractal

import "errors"

// ErrSubdivision indicates a subdivision factor M smaller than 2.
var ErrSubdivision = errors.New("fractal: subdivision must be at least 2")

// ErrLevels indicates a number of approximation levels S smaller than 1.
var ErrLevels = errors.New("fractal: number of levels must be at least 1")

// ErrProbability indicates a survival probability outside (0,1].
var ErrProbability = errors.New("fractal: survival probability out of range")

// ErrGridOverflow indicates the final grid M^S×M^S does not fit int.
var ErrGridOverflow = errors.New("fractal: grid size overflows int")

// ErrNilStream indicates Build was called without a random stream.
var ErrNilStream = errors.New("fractal: random stream is required")
