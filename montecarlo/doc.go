// Package montecarlo estimates the expected Euler characteristic of fractal
// percolation by repeated independent simulation.
//
// Each run draws one S-th approximation (package fractal), optionally keeps
// only its percolating cluster (package percolation), and measures the dead
// pixels with white (alive) outside (package euler). The estimator returns
// 8·χ_dead; a run contributes χ = −(8·χ_dead)/8, the Euler characteristic
// attributed to the surviving set. In the percolating-cluster variant a run
// without a percolating cluster contributes χ = 0.
//
// Statistics are accumulated as running sums and finalized once:
//
//	mean   = Σχ / N
//	stderr = sqrt((Σχ² − (Σχ)²/N) / N / (N−1))
//
// and both are multiplied by (1/(M²·p))^S, which removes the leading growth
// of the Euler characteristic with the approximation level.
//
// All randomness comes from one bernoulli.Stream consumed in run and level
// order, so a parameter set and seed reproduce the same Result exactly.
package montecarlo
