// Package euler computes Euler characteristics of pixel sets by counting
// 2×2 bit-quads (Gray's method).
//
// The field is framed by one ring of pixels in the boundary colour and every
// 2×2 window is classified by how many of its pixels belong to the measured
// set: Q1 (one), Q3 (three) and QD (two, diagonally opposite). Then
//
//	χ₈ = (Q1 − Q3 − 2·QD) / 4   (8-connected set)
//	χ₄ = (Q1 − Q3 + 2·QD) / 4   (4-connected set)
//
// Dead pixels are measured 8-connected, the dual of the 4-connected alive
// clusters, so components minus holes is consistent between the two phases.
package euler

import "github.com/katalvlaran/fracperc/field"

// Boundary selects the colour assumed outside the grid.
type Boundary int

const (
	// WhiteOutside surrounds the grid with alive pixels.
	WhiteOutside Boundary = iota
	// BlackOutside surrounds the grid with dead pixels. Dead components
	// joined to the unbounded outside are not counted; holes still are.
	BlackOutside
)

// String returns the boundary name.
func (b Boundary) String() string {
	if b == BlackOutside {
		return "black"
	}
	return "white"
}

// DeadTimesEight returns 8× the Euler characteristic of the dead pixels of f
// under boundary bc. A correct result is always divisible by 8.
func DeadTimesEight(f *field.Binary, bc Boundary) int {
	q1, q3, qd := quads(f, true, bc == BlackOutside)
	return 2 * (q1 - q3 - 2*qd)
}

// Alive returns the Euler characteristic of the 4-connected alive pixels of f,
// with dead pixels assumed outside the grid.
func Alive(f *field.Binary) int {
	q1, q3, qd := quads(f, false, false)
	return (q1 - q3 + 2*qd) / 4
}

// quads counts the Q1, Q3 and QD windows of the set {pixel == set} over f
// framed by one ring whose membership is outsideIn.
func quads(f *field.Binary, set, outsideIn bool) (q1, q3, qd int) {
	in := func(x, y int) bool {
		if !f.InBounds(x, y) {
			return outsideIn
		}
		return f.At(x, y) == set
	}
	for x := -1; x < f.Nx(); x++ {
		for y := -1; y < f.Ny(); y++ {
			a, b := in(x, y), in(x+1, y)
			c, d := in(x, y+1), in(x+1, y+1)
			n := btoi(a) + btoi(b) + btoi(c) + btoi(d)
			switch n {
			case 1:
				q1++
			case 3:
				q3++
			case 2:
				if a == d {
					qd++
				}
			}
		}
	}
	return q1, q3, qd
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
