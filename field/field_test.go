package field_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fracperc/field"
)

// TestNew_Errors verifies that New rejects empty and oversized dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		nx, ny int
		err    error
	}{
		{"ZeroWidth", 0, 3, field.ErrEmptyGrid},
		{"ZeroHeight", 3, 0, field.ErrEmptyGrid},
		{"Negative", -1, -1, field.ErrEmptyGrid},
		{"Overflow", math.MaxInt / 2, 3, field.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := field.NewBinary(tc.nx, tc.ny)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewBinary(%d,%d) error = %v; want %v", tc.nx, tc.ny, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := field.NewLabels(3, 2)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.Truef(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.Falsef(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

// TestAtSet_OutOfRangePanics ensures bounds violations fail fast.
func TestAtSet_OutOfRangePanics(t *testing.T) {
	g, err := field.NewBinary(2, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { g.At(2, 0) })
	assert.Panics(t, func() { g.At(0, -1) })
	assert.Panics(t, func() { g.Set(-1, 0, true) })
	assert.Panics(t, func() { g.Set(0, 2, true) })
	assert.NotPanics(t, func() { g.Set(1, 1, true) })
	assert.True(t, g.At(1, 1))
}

// TestColumnMajorLayout verifies Index and Coordinate round-trip in x-outer order.
func TestColumnMajorLayout(t *testing.T) {
	g, err := field.NewLabels(4, 3)
	require.NoError(t, err)

	want := 0
	for x := 0; x < g.Nx(); x++ {
		for y := 0; y < g.Ny(); y++ {
			idx := g.Index(x, y)
			assert.Equal(t, want, idx)
			gx, gy := g.Coordinate(idx)
			assert.Equal(t, [2]int{x, y}, [2]int{gx, gy})
			want++
		}
	}
	assert.Equal(t, 12, g.Len())
}

// TestParseFormat verifies orientation (first row is the top) and round-trip.
func TestParseFormat(t *testing.T) {
	rows := []string{
		"#..",
		"##.",
	}
	b, err := field.Parse(rows...)
	require.NoError(t, err)
	require.Equal(t, 3, b.Nx())
	require.Equal(t, 2, b.Ny())

	assert.False(t, b.At(0, 1), "top-left is alive")
	assert.True(t, b.At(2, 1), "top-right is dead")
	assert.False(t, b.At(1, 0), "bottom-middle is alive")
	assert.Equal(t, 3, field.Alive(b))
	assert.Equal(t, "#..\n##.\n", field.Format(b))

	_, err = field.Parse("##", "#")
	assert.ErrorIs(t, err, field.ErrNonRectangular)
	_, err = field.Parse()
	assert.ErrorIs(t, err, field.ErrEmptyGrid)
	_, err = field.Parse("#x")
	assert.ErrorIs(t, err, field.ErrBadCell)
}

// TestCloneEqualFill covers the whole-grid helpers.
func TestCloneEqualFill(t *testing.T) {
	b := field.MustParse("#.", ".#")
	c := b.Clone()
	assert.True(t, b.Equal(c))

	c.Set(0, 0, false)
	assert.False(t, b.Equal(c), "clone must not share storage")

	c.Fill(true)
	assert.Equal(t, 4, c.Count(true))
	assert.Equal(t, 0, field.Alive(c))

	other, err := field.NewBinary(2, 3)
	require.NoError(t, err)
	assert.False(t, b.Equal(other))
}

// TestReplaceBefore checks that only the visited prefix is rewritten.
func TestReplaceBefore(t *testing.T) {
	g, err := field.NewLabels(2, 2)
	require.NoError(t, err)
	g.Fill(3)

	// (1,0) is the third cell in x-outer order, so only (0,0) and (0,1) change.
	n := g.ReplaceBefore(3, 1, g.Index(1, 0))
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, g.At(0, 0))
	assert.Equal(t, 1, g.At(0, 1))
	assert.Equal(t, 3, g.At(1, 0))
	assert.Equal(t, 3, g.At(1, 1))

	assert.Equal(t, 2, g.ReplaceBefore(3, 2, 100), "end is clamped to the grid")
}
