package percolation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fracperc/cluster"
	"github.com/katalvlaran/fracperc/field"
)

var (
	// ErrNilField indicates a nil field or label field.
	ErrNilField = errors.New("percolation: field is nil")
	// ErrMultipleSpanning indicates two labels both span the grid, which a
	// correct 4-connected labeling cannot produce.
	ErrMultipleSpanning = errors.New("percolation: more than one spanning label")
)

// Box is the bounding box of one label and the number of cells carrying it.
// A label that no cell carries has Cells == 0 and an inverted box.
type Box struct {
	MinX, MaxX int
	MinY, MaxY int
	Cells      int
}

// Spans reports whether the box covers the full nx×ny grid in both axes.
func (b Box) Spans(nx, ny int) bool {
	return b.Cells > 0 && b.MinX == 0 && b.MaxX == nx-1 && b.MinY == 0 && b.MaxY == ny-1
}

// Bounds computes the bounding box of every label 1..maxLabel in one scan.
// The box of label l is at index l−1. Labels above maxLabel panic.
// Complexity: O(W×H + maxLabel).
func Bounds(labels *field.Labels, maxLabel int) []Box {
	nx, ny := labels.Nx(), labels.Ny()
	boxes := make([]Box, maxLabel)
	for i := range boxes {
		boxes[i] = Box{MinX: nx, MaxX: -1, MinY: ny, MaxY: -1}
	}
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			l := labels.At(x, y)
			if l <= 0 {
				continue
			}
			b := &boxes[l-1]
			b.MinX = min(b.MinX, x)
			b.MaxX = max(b.MaxX, x)
			b.MinY = min(b.MinY, y)
			b.MaxY = max(b.MaxY, y)
			b.Cells++
		}
	}
	return boxes
}

// Spanning returns the label whose bounding box is the whole grid, or 0 when
// no label spans. Returns ErrMultipleSpanning if more than one label does.
func Spanning(labels *field.Labels, maxLabel int) (int, error) {
	if labels == nil {
		return 0, ErrNilField
	}
	found := 0
	for i, b := range Bounds(labels, maxLabel) {
		if !b.Spans(labels.Nx(), labels.Ny()) {
			continue
		}
		if found != 0 {
			return 0, fmt.Errorf("Spanning: labels %d and %d: %w", found, i+1, ErrMultipleSpanning)
		}
		found = i + 1
	}
	return found, nil
}

// Snapshot is the state of a field right before KeepSpanning rewrites it.
// Label is the spanning label, 0 if none. The grids must not be retained.
type Snapshot struct {
	Field  *field.Binary
	Labels *field.Labels
	Label  int
}

// Option customizes KeepSpanning.
type Option func(*config)

type config struct {
	labelOpts []cluster.Option
	snapshot  func(Snapshot)
}

// WithStrategy selects the cluster labeling strategy.
func WithStrategy(s cluster.Strategy) Option {
	return func(c *config) {
		c.labelOpts = append(c.labelOpts, cluster.WithStrategy(s))
	}
}

// WithSnapshot registers fn to observe the labeled field before the rewrite.
// Panics on nil.
func WithSnapshot(fn func(Snapshot)) Option {
	if fn == nil {
		panic("percolation: WithSnapshot(nil)")
	}
	return func(c *config) {
		c.snapshot = fn
	}
}

// KeepSpanning labels f, finds its percolating cluster and marks dead every
// cell outside it. When no cluster percolates the whole field becomes dead.
// It reports whether a percolating cluster was found.
func KeepSpanning(f *field.Binary, opts ...Option) (bool, error) {
	if f == nil {
		return false, ErrNilField
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	labels, largest, err := cluster.Label(f, cfg.labelOpts...)
	if err != nil {
		return false, fmt.Errorf("KeepSpanning: %w", err)
	}
	keep, err := Spanning(labels, largest)
	if err != nil {
		return false, fmt.Errorf("KeepSpanning: %w", err)
	}
	if cfg.snapshot != nil {
		cfg.snapshot(Snapshot{Field: f, Labels: labels, Label: keep})
	}

	for x := 0; x < f.Nx(); x++ {
		for y := 0; y < f.Ny(); y++ {
			if keep == 0 || labels.At(x, y) != keep {
				f.Set(x, y, true)
			}
		}
	}
	return keep != 0, nil
}

// Clone returns a deep copy of s that may be retained.
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{Label: s.Label}
	if s.Field != nil {
		c.Field = s.Field.Clone()
	}
	if s.Labels != nil {
		c.Labels = s.Labels.Clone()
	}
	return c
}
