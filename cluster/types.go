package cluster

import (
	"errors"
	"fmt"
)

// Sentinel errors for cluster operations.
var (
	// ErrNilField indicates Label received a nil field.
	ErrNilField = errors.New("cluster: field is nil")
	// ErrUnknownStrategy indicates an undefined labeling strategy.
	ErrUnknownStrategy = errors.New("cluster: unknown labeling strategy")
)

// Strategy selects the labeling algorithm.
type Strategy int

const (
	// BackwardScan merges labels immediately by rewriting the visited prefix.
	BackwardScan Strategy = iota
	// UnionFind records merges in a union-find forest and renumbers at the end.
	UnionFind
	// FloodFill grows each cluster by breadth-first search.
	FloodFill
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case BackwardScan:
		return "backward-scan"
	case UnionFind:
		return "union-find"
	case FloodFill:
		return "flood-fill"
	default:
		return "unknown"
	}
}

// ParseStrategy returns the strategy named name, as printed by String.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range []Strategy{BackwardScan, UnionFind, FloodFill} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

// Option customizes Label.
type Option func(*config)

type config struct {
	strategy Strategy
}

// WithStrategy selects the labeling algorithm. The default is BackwardScan.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// neighborOffsets are the 4-connectivity offsets used by FloodFill.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
