// Package fractal builds finite approximations of fractal (Mandelbrot)
// percolation on a pixel grid.
//
// Construction:
//
//	The unit square is divided into M×M cells; each survives independently
//	with probability p. Every survivor is divided again into M×M sub-cells,
//	each surviving with probability p, and so on for S levels. The S-th
//	approximation is the M^S×M^S pixel field of cells that survived every level.
//
// Implementation:
//
//	For k = 1..S a fresh M^k×M^k Bernoulli field with death probability 1−p is
//	drawn. Each dead cell (xi,yi) kills the h×h block of final pixels it
//	covers, h = M^(S−k). Killing only ever sets pixels dead, so a pixel whose
//	ancestor died at level k stays dead; later draws for its descendants are
//	consumed but have no effect. The draws for all levels come from one
//	bernoulli.Stream in level order, which keeps runs reproducible.
//
// Complexity:
//
//	Time   = O(Σ_k M^(2k) + M^(2S)·S) ⊂ O(S·M^(2S))
//	Memory = O(M^(2S))
//
// Errors:
//   - ErrSubdivision: M < 2.
//   - ErrLevels: S < 1.
//   - ErrProbability: p outside (0,1].
//   - ErrGridOverflow: M^S or (M^S)² overflows int.
//   - ErrNilStream: no random stream supplied.
package fractal
