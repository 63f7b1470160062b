package field

import (
	"fmt"
	"math"
	"strings"
)

// New allocates an Nx×Ny grid with every cell at the zero value of T.
// Returns ErrEmptyGrid if a dimension is < 1, ErrTooLarge if Nx×Ny overflows.
// Complexity: O(Nx×Ny) time and memory.
func New[T Cell](nx, ny int) (*Grid[T], error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("New(%d,%d): %w", nx, ny, ErrEmptyGrid)
	}
	if nx > math.MaxInt/ny {
		return nil, fmt.Errorf("New(%d,%d): %w", nx, ny, ErrTooLarge)
	}

	return &Grid[T]{nx: nx, ny: ny, cells: make([]T, nx*ny)}, nil
}

// NewBinary allocates an all-alive Nx×Ny binary field.
func NewBinary(nx, ny int) (*Binary, error) {
	return New[bool](nx, ny)
}

// NewLabels allocates an all-zero Nx×Ny label field.
func NewLabels(nx, ny int) (*Labels, error) {
	return New[int](nx, ny)
}

// Nx returns the grid width.
func (g *Grid[T]) Nx() int { return g.nx }

// Ny returns the grid height.
func (g *Grid[T]) Ny() int { return g.ny }

// Len returns the number of cells, Nx×Ny.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.nx && y >= 0 && y < g.ny
}

// At returns the cell at (x,y). It panics if (x,y) is out of range.
func (g *Grid[T]) At(x, y int) T {
	return g.cells[g.mustIndex(x, y)]
}

// Set stores v at (x,y). It panics if (x,y) is out of range.
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.mustIndex(x, y)] = v
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Count returns how many cells hold v.
func (g *Grid[T]) Count(v T) int {
	n := 0
	for _, c := range g.cells {
		if c == v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{nx: g.nx, ny: g.ny, cells: cells}
}

// Equal reports whether g and o have the same dimensions and cells.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.nx != o.nx || g.ny != o.ny {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// ReplaceBefore rewrites every occurrence of old with v among the first end
// cells in storage order and returns how many cells changed. With
// end = Index(x,y) this covers exactly the cells visited before (x,y) by an
// x-outer, y-inner scan.
func (g *Grid[T]) ReplaceBefore(old, v T, end int) int {
	if end > len(g.cells) {
		end = len(g.cells)
	}
	n := 0
	for i := 0; i < end; i++ {
		if g.cells[i] == old {
			g.cells[i] = v
			n++
		}
	}
	return n
}

// Coordinate converts a column-major index back to (x,y).
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) (x, y int) {
	return idx / g.ny, idx % g.ny
}

// Index maps (x,y) to its column-major index x·Ny + y without bounds checks.
func (g *Grid[T]) Index(x, y int) int {
	return x*g.ny + y
}

func (g *Grid[T]) mustIndex(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("field: index (%d,%d) out of range for %d×%d grid", x, y, g.nx, g.ny))
	}
	return x*g.ny + y
}

// Parse builds a binary field from text rows. The first row is the top of the
// grid (y = Ny−1); '#' or '1' marks an alive cell, '.' or '0' a dead one.
func Parse(rows ...string) (*Binary, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	ny, nx := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != nx {
			return nil, ErrNonRectangular
		}
	}
	b, err := NewBinary(nx, ny)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		y := ny - 1 - r
		for x, c := range []byte(row) {
			switch c {
			case AliveRune, '1':
				b.Set(x, y, false)
			case DeadRune, '0':
				b.Set(x, y, true)
			default:
				return nil, fmt.Errorf("Parse: %q at (%d,%d): %w", c, x, y, ErrBadCell)
			}
		}
	}
	return b, nil
}

// MustParse is like Parse but panics on error. Intended for tests and examples.
func MustParse(rows ...string) *Binary {
	b, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// Format renders b in the Parse text format, one row per line.
func Format(b *Binary) string {
	var sb strings.Builder
	sb.Grow((b.nx + 1) * b.ny)
	for y := b.ny - 1; y >= 0; y-- {
		for x := 0; x < b.nx; x++ {
			if b.At(x, y) {
				sb.WriteByte(DeadRune)
			} else {
				sb.WriteByte(AliveRune)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Alive returns the number of alive cells in b.
func Alive(b *Binary) int {
	return b.Count(false)
}
