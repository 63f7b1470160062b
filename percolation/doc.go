// Package percolation finds the percolating cluster of a binary field and
// removes everything else.
//
// A cluster percolates when its bounding box is the whole grid: it touches
// x = 0, x = Nx−1, y = 0 and y = Ny−1. With 4-connectivity two disjoint
// clusters cannot both percolate (a left-right crossing and a bottom-top
// crossing of the square must meet), so a second percolating label means the
// labeling is broken; Spanning reports it as ErrMultipleSpanning.
package percolation
