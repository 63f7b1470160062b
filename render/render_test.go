package render_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fracperc/cluster"
	"github.com/katalvlaran/fracperc/field"
	"github.com/katalvlaran/fracperc/percolation"
	"github.com/katalvlaran/fracperc/render"
)

func labeled(t *testing.T, rows ...string) percolation.Snapshot {
	t.Helper()
	f := field.MustParse(rows...)
	labels, largest, err := cluster.Label(f)
	require.NoError(t, err)
	keep, err := percolation.Spanning(labels, largest)
	require.NoError(t, err)
	return percolation.Snapshot{Field: f, Labels: labels, Label: keep}
}

// TestWritePGM_Layout pins the header, the row order and the three shades.
func TestWritePGM_Layout(t *testing.T) {
	snap := labeled(t,
		"#.#",
		"#..",
		"###",
	)
	var buf bytes.Buffer
	require.NoError(t, render.WritePGM(&buf, snap))

	want := "P2\n3 3\n255\n" +
		"0\n255\n125\n" + // y = 2
		"0\n255\n255\n" + // y = 1
		"0\n0\n0\n" // y = 0
	assert.Equal(t, want, buf.String())
}

// TestWritePGM_Unlabeled draws every alive cell grey without labels.
func TestWritePGM_Unlabeled(t *testing.T) {
	snap := percolation.Snapshot{Field: field.MustParse("#.", ".#")}
	var buf bytes.Buffer
	require.NoError(t, render.WritePGM(&buf, snap))
	assert.Equal(t, "P2\n2 2\n255\n125\n255\n255\n125\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePGM_Errors(t *testing.T) {
	assert.ErrorIs(t, render.WritePGM(&bytes.Buffer{}, percolation.Snapshot{}), render.ErrNilField)

	snap := percolation.Snapshot{Field: field.MustParse("#")}
	err := render.WritePGM(failingWriter{}, snap)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestShade(t *testing.T) {
	snap := labeled(t, "#.", "##")
	assert.Equal(t, render.Percolating, render.Shade(snap, 0, 0))
	assert.Equal(t, render.Dead, render.Shade(snap, 1, 1))
}

func pngHeader(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), data[:8])
}

func TestSaveHeatMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "field.png")
	snap := labeled(t,
		"#.#.",
		"#..#",
		"####",
		"..#.",
	)
	require.NoError(t, render.SaveHeatMap(path, "sample", snap))
	pngHeader(t, path)

	assert.ErrorIs(t, render.SaveHeatMap(path, "", percolation.Snapshot{}), render.ErrNilField)
}

func TestSaveHistogram(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chi.png")
	require.NoError(t, render.SaveHistogram(path, "chi", []int{-3, 0, 0, 1, 2, 2, 2, 5}, 4))
	pngHeader(t, path)

	assert.ErrorIs(t, render.SaveHistogram(path, "", nil, 4), render.ErrNoData)
	assert.ErrorIs(t, render.SaveHistogram(path, "", []int{1}, 0), render.ErrBins)
}
