package cluster

import (
	"fmt"

	"github.com/katalvlaran/fracperc/field"
)

// Label assigns 4-connected component labels to the alive (false) cells of f.
// It returns the label field and the largest label allocated; dead cells keep
// label 0. For BackwardScan the labels in use may be a sparse subset of
// 1..largest, for the other strategies they are exactly 1..largest.
// f is not modified.
func Label(f *field.Binary, opts ...Option) (*field.Labels, int, error) {
	if f == nil {
		return nil, 0, ErrNilField
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	labels, err := field.NewLabels(f.Nx(), f.Ny())
	if err != nil {
		return nil, 0, fmt.Errorf("Label: %w", err)
	}

	var largest int
	switch cfg.strategy {
	case BackwardScan:
		largest = backwardScan(f, labels)
	case UnionFind:
		largest = unionFind(f, labels)
	case FloodFill:
		largest = floodFill(f, labels)
	default:
		return nil, 0, fmt.Errorf("Label: strategy %d: %w", int(cfg.strategy), ErrUnknownStrategy)
	}

	return labels, largest, nil
}

// visitedNeighbors reports whether the left and below neighbours of (x,y) are
// alive. Neighbours outside the grid are dead.
func visitedNeighbors(f *field.Binary, x, y int) (left, below bool) {
	left = x > 0 && !f.At(x-1, y)
	below = y > 0 && !f.At(x, y-1)
	return left, below
}

// backwardScan is the single-pass labeler with immediate prefix relabeling.
func backwardScan(f *field.Binary, labels *field.Labels) int {
	largest := 0
	for x := 0; x < f.Nx(); x++ {
		for y := 0; y < f.Ny(); y++ {
			if f.At(x, y) {
				continue
			}
			left, below := visitedNeighbors(f, x, y)
			switch {
			case !left && !below:
				largest++
				labels.Set(x, y, largest)
			case left && !below:
				labels.Set(x, y, labels.At(x-1, y))
			case !left && below:
				labels.Set(x, y, labels.At(x, y-1))
			default:
				l, b := labels.At(x-1, y), labels.At(x, y-1)
				keep, drop := min(l, b), max(l, b)
				if keep != drop {
					labels.ReplaceBefore(drop, keep, labels.Index(x, y))
				}
				labels.Set(x, y, keep)
			}
		}
	}
	return largest
}

// unionFind labels with an equivalence forest and renumbers densely in
// first-seen raster order.
func unionFind(f *field.Binary, labels *field.Labels) int {
	parent := []int{0} // parent[0] is unused; label l lives at parent[l]

	find := func(l int) int {
		for parent[l] != l {
			parent[l] = parent[parent[l]]
			l = parent[l]
		}
		return l
	}
	union := func(a, b int) int {
		ra, rb := find(a), find(b)
		if ra == rb {
			return ra
		}
		if rb < ra {
			ra, rb = rb, ra
		}
		parent[rb] = ra
		return ra
	}

	for x := 0; x < f.Nx(); x++ {
		for y := 0; y < f.Ny(); y++ {
			if f.At(x, y) {
				continue
			}
			left, below := visitedNeighbors(f, x, y)
			switch {
			case !left && !below:
				l := len(parent)
				parent = append(parent, l)
				labels.Set(x, y, l)
			case left && !below:
				labels.Set(x, y, labels.At(x-1, y))
			case !left && below:
				labels.Set(x, y, labels.At(x, y-1))
			default:
				labels.Set(x, y, union(labels.At(x-1, y), labels.At(x, y-1)))
			}
		}
	}

	dense := make([]int, len(parent))
	k := 0
	for x := 0; x < f.Nx(); x++ {
		for y := 0; y < f.Ny(); y++ {
			l := labels.At(x, y)
			if l == 0 {
				continue
			}
			r := find(l)
			if dense[r] == 0 {
				k++
				dense[r] = k
			}
			labels.Set(x, y, dense[r])
		}
	}
	return k
}

// floodFill grows each cluster by BFS, numbering clusters in the raster
// order of their first cell.
func floodFill(f *field.Binary, labels *field.Labels) int {
	k := 0
	var queue []int
	for x := 0; x < f.Nx(); x++ {
		for y := 0; y < f.Ny(); y++ {
			if f.At(x, y) || labels.At(x, y) != 0 {
				continue
			}
			k++
			labels.Set(x, y, k)
			queue = append(queue[:0], labels.Index(x, y))

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := labels.Coordinate(queue[qi])
				for _, d := range neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !f.InBounds(vx, vy) || f.At(vx, vy) || labels.At(vx, vy) != 0 {
						continue
					}
					labels.Set(vx, vy, k)
					queue = append(queue, labels.Index(vx, vy))
				}
			}
		}
	}
	return k
}
