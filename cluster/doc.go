// Package cluster labels the 4-connected components ("clusters") of alive
// cells in a binary field.
//
// What:
//
//   - Label assigns every alive cell a positive label; two alive cells share a
//     label iff they are joined by a path of edge-adjacent alive cells.
//   - Cells outside the grid count as dead, so clusters never wrap or leak
//     across the boundary.
//
// Strategies:
//
//   - BackwardScan (default): one raster pass, x outer and y inner. Only the
//     already-visited neighbours, left (x−1,y) and below (x,y−1), are
//     consulted. When both are alive with different labels the larger label is
//     rewritten to the smaller one over the visited prefix only (all earlier
//     columns plus the current column below y), and the cell takes the smaller
//     label. No second pass and no equivalence table are needed; labels may
//     be sparse after merges.
//   - UnionFind: the same raster pass recording equivalences in a union-find
//     forest (path halving, smaller root wins), followed by one
//     compress-and-renumber pass. Labels are dense 1..K.
//   - FloodFill: breadth-first search from every unvisited alive cell.
//     Labels are dense 1..K. Kept as an independent reference.
//
// All strategies produce the same partition; Canonical renumbers any label
// field so partitions can be compared directly.
//
// Complexity:
//
//   - BackwardScan: O(W×H) without merges; every merge rescans the visited
//     prefix, O((W×H)²) for adversarial fields.
//   - UnionFind:    O(W×H·α(W×H)).
//   - FloodFill:    O(W×H).
//   - Memory:       O(W×H) for the label field.
//
// Errors:
//
//   - ErrNilField: Label was called with a nil field.
//   - ErrUnknownStrategy: an undefined Strategy value was requested.
package cluster
