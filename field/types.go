package field

// Cell constrains the value types a Grid may hold.
type Cell interface {
	~bool | ~int
}

// Grid is a fixed-size Nx×Ny grid of cells.
// Nx and Ny never change after construction; cells are stored column-major.
type Grid[T Cell] struct {
	nx, ny int
	cells  []T
}

// Binary is a dead/alive pixel field. A true cell is dead.
type Binary = Grid[bool]

// Labels is a connected-component label field. 0 means dead or unlabeled.
type Labels = Grid[int]

// Text characters used by Parse and Format.
const (
	AliveRune = '#'
	DeadRune  = '.'
)
