// Package field provides the rectangular pixel grids shared by every stage of
// a fractal percolation experiment.
//
// What:
//
//   - Grid[T] is a fixed-size Nx×Ny grid stored in one contiguous slice.
//   - Binary (Grid[bool]) holds the dead/alive state of each pixel:
//     true = dead (black), false = alive (white).
//   - Labels (Grid[int]) holds connected-component labels: 0 = dead or
//     unlabeled, 1..K = component identifiers.
//
// Why:
//
//   - A single storage layout keeps the construction, labeling, filtering and
//     Euler stages allocation-light and their traversal orders identical.
//   - Out-of-range access is a defect in the calling algorithm, so At and Set
//     panic instead of clamping or wrapping.
//
// Layout:
//
//   - Cells are stored column-major: index(x,y) = x·Ny + y. The raster order
//     used by the labeler (x outer, y inner) therefore walks memory linearly.
//   - y grows upwards when a grid is drawn (Parse and Format put y = Ny−1 on
//     the first text row).
//
// Complexity:
//
//   - At, Set, InBounds: O(1).
//   - Fill, Count, Clone, Equal: O(Nx×Ny).
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is smaller than one.
//   - ErrTooLarge: Nx×Ny overflows int.
//   - ErrNonRectangular: text rows of differing lengths passed to Parse.
//   - ErrBadCell: an unknown character passed to Parse.
package field
