package cluster

import "github.com/katalvlaran/fracperc/field"

// Count returns the number of distinct positive labels in labels.
// Complexity: O(W×H).
func Count(labels *field.Labels) int {
	seen := make(map[int]struct{})
	for x := 0; x < labels.Nx(); x++ {
		for y := 0; y < labels.Ny(); y++ {
			if l := labels.At(x, y); l > 0 {
				seen[l] = struct{}{}
			}
		}
	}
	return len(seen)
}

// Canonical returns a copy of labels renumbered 1..K in the x-outer, y-inner
// order in which each label first appears, together with K. Two label fields
// describe the same partition iff their canonical forms are equal.
func Canonical(labels *field.Labels) (*field.Labels, int) {
	out := labels.Clone()
	remap := make(map[int]int)
	for x := 0; x < out.Nx(); x++ {
		for y := 0; y < out.Ny(); y++ {
			l := out.At(x, y)
			if l == 0 {
				continue
			}
			n, ok := remap[l]
			if !ok {
				n = len(remap) + 1
				remap[l] = n
			}
			out.Set(x, y, n)
		}
	}
	return out, len(remap)
}
