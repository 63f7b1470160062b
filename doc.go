// Package fracperc estimates the Euler characteristic of fractal percolation
// by Monte Carlo simulation.
//
// What is fractal percolation?
//
//	Start from the unit square. Split every surviving square into M×M
//	sub-squares and keep each one independently with probability p. After
//	S levels the survivors form a random M^S×M^S pixel field whose limit is a
//	random fractal. Its Euler characteristic, rescaled by (1/(M²p))^S, tracks
//	the topology of the limit set as S grows.
//
// Subpackages:
//
//	field/        column-major pixel grids (dead/alive and labels), text I/O
//	bernoulli/    the seeded random stream and seed mixing
//	fractal/      builds one M^S×M^S approximation level by level
//	cluster/      4-connected component labeling (backward scan, union-find, flood fill)
//	percolation/  bounding-box spanning test, keeps the percolating cluster
//	euler/        Euler characteristic by bit-quad counting
//	montecarlo/   the experiment driver, running statistics and result record
//	render/       PGM export, heat maps and χ histograms
//	cmd/fracperc  command-line front end with JSON config and SQLite results
//
// Quick ASCII example (M = 3, S = 1, '#' alive):
//
//	# . #
//	# # #
//	# . .
//
// has one cluster spanning the square and Euler characteristic 1.
//
//	go run ./cmd/fracperc -p 0.8 -M 3 -n 4 -R 1000 -percolating
package fracperc
