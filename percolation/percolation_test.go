package percolation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fracperc/bernoulli"
	"github.com/katalvlaran/fracperc/cluster"
	"github.com/katalvlaran/fracperc/field"
	"github.com/katalvlaran/fracperc/percolation"
)

// TestKeepSpanning_Cross keeps a cross that spans both axes and removes a
// separate island in each of two corners.
func TestKeepSpanning_Cross(t *testing.T) {
	f := field.MustParse(
		"..#.#",
		"..#..",
		"#####",
		"..#..",
		"#.#..",
	)
	ok, err := percolation.KeepSpanning(f)
	require.NoError(t, err)
	assert.True(t, ok)

	want := "..#..\n" +
		"..#..\n" +
		"#####\n" +
		"..#..\n" +
		"..#..\n"
	if diff := cmp.Diff(want, field.Format(f)); diff != "" {
		t.Errorf("filtered field mismatch (-want +got):\n%s", diff)
	}
}

// TestKeepSpanning_NoneSpans covers two disjoint clusters, neither spanning
// both axes; the field must end fully dead.
func TestKeepSpanning_NoneSpans(t *testing.T) {
	f := field.MustParse(
		"....#",
		"....#",
		"....#",
		".....",
		"####.",
	)
	ok, err := percolation.KeepSpanning(f)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, field.Alive(f))
}

// TestKeepSpanning_HorizontalLineOnly: a line spanning x but not y does not percolate.
func TestKeepSpanning_HorizontalLineOnly(t *testing.T) {
	f := field.MustParse(
		".....",
		"#####",
		".....",
	)
	ok, err := percolation.KeepSpanning(f)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, field.Alive(f))
}

// TestKeepSpanning_SingleRow: with Ny = 1 a full row spans both axes.
func TestKeepSpanning_SingleRow(t *testing.T) {
	f := field.MustParse("####")
	ok, err := percolation.KeepSpanning(f)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, field.Alive(f))
}

// TestKeepSpanning_Snapshot verifies the snapshot sees the pre-filter state.
func TestKeepSpanning_Snapshot(t *testing.T) {
	f := field.MustParse(
		"#.#",
		"###",
		"#..",
	)
	var got percolation.Snapshot
	var aliveBefore int
	ok, err := percolation.KeepSpanning(f, percolation.WithSnapshot(func(s percolation.Snapshot) {
		got = s
		aliveBefore = field.Alive(s.Field)
	}))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 6, aliveBefore)
	assert.Equal(t, got.Labels.At(0, 0), got.Label)
	assert.Panics(t, func() { percolation.WithSnapshot(nil) })
}

// TestKeepSpanning_StrategiesAgree filters random fields with each labeling
// strategy and requires identical results.
func TestKeepSpanning_StrategiesAgree(t *testing.T) {
	stream := bernoulli.NewStream(5)
	strategies := []cluster.Strategy{cluster.BackwardScan, cluster.UnionFind, cluster.FloodFill}
	for i := 0; i < 50; i++ {
		f, err := field.NewBinary(20, 20)
		require.NoError(t, err)
		require.NoError(t, stream.Fill(f, 0.4))

		var want *field.Binary
		var wantOK bool
		for _, s := range strategies {
			g := f.Clone()
			ok, err := percolation.KeepSpanning(g, percolation.WithStrategy(s))
			require.NoError(t, err)
			if want == nil {
				want, wantOK = g, ok
				continue
			}
			require.Equalf(t, wantOK, ok, "field %d strategy %s", i, s)
			require.Truef(t, want.Equal(g), "field %d strategy %s", i, s)
		}
	}
}

// TestBounds computes boxes for two labels and an unused one.
func TestBounds(t *testing.T) {
	labels, err := field.NewLabels(4, 3)
	require.NoError(t, err)
	labels.Set(0, 0, 1)
	labels.Set(1, 2, 1)
	labels.Set(3, 1, 3)

	boxes := percolation.Bounds(labels, 3)
	want := []percolation.Box{
		{MinX: 0, MaxX: 1, MinY: 0, MaxY: 2, Cells: 2},
		{MinX: 4, MaxX: -1, MinY: 3, MaxY: -1, Cells: 0},
		{MinX: 3, MaxX: 3, MinY: 1, MaxY: 1, Cells: 1},
	}
	if diff := cmp.Diff(want, boxes); diff != "" {
		t.Errorf("Bounds mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, boxes[0].Spans(4, 3))
	assert.False(t, boxes[1].Spans(4, 3))
}

// TestSpanning_MultipleIsDefect feeds a hand-made, impossible labeling.
func TestSpanning_MultipleIsDefect(t *testing.T) {
	labels, err := field.NewLabels(2, 2)
	require.NoError(t, err)
	labels.Set(0, 0, 1)
	labels.Set(1, 1, 1)
	labels.Set(1, 0, 2)
	labels.Set(0, 1, 2)

	_, err = percolation.Spanning(labels, 2)
	assert.ErrorIs(t, err, percolation.ErrMultipleSpanning)

	_, err = percolation.Spanning(nil, 0)
	assert.ErrorIs(t, err, percolation.ErrNilField)
	_, err = percolation.KeepSpanning(nil)
	assert.ErrorIs(t, err, percolation.ErrNilField)
}

// TestSnapshot_Clone keeps the pre-filter state after KeepSpanning rewrites f.
func TestSnapshot_Clone(t *testing.T) {
	f := field.MustParse(
		"#.#",
		"#..",
		"###",
	)
	var kept percolation.Snapshot
	ok, err := percolation.KeepSpanning(f, percolation.WithSnapshot(func(s percolation.Snapshot) {
		kept = s.Clone()
	}))
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 5, field.Alive(f))
	assert.Equal(t, 6, field.Alive(kept.Field))
	assert.NotEqual(t, kept.Label, kept.Labels.At(2, 2))
	assert.Equal(t, kept.Label, kept.Labels.At(0, 0))

	var empty percolation.Snapshot
	assert.Nil(t, empty.Clone().Field)
}
