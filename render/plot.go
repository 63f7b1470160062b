package render

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/fracperc/percolation"
)

var (
	// ErrNoData indicates an empty sample passed to SaveHistogram.
	ErrNoData = errors.New("render: no values to plot")
	// ErrBins indicates a histogram with fewer than one bin.
	ErrBins = errors.New("render: number of bins must be at least 1")
)

// Size is the edge length of saved plots.
var Size = 6 * vg.Inch

// greys is the three-shade palette of the heat map, indexed by shadeIndex.
type greys []color.Color

func (g greys) Colors() []color.Color { return g }

var shades = greys{
	color.Gray{Y: Percolating},
	color.Gray{Y: OtherAlive},
	color.Gray{Y: Dead},
}

func shadeIndex(grey int) float64 {
	switch grey {
	case Percolating:
		return 0
	case OtherAlive:
		return 1
	default:
		return 2
	}
}

// snapshotGrid adapts a snapshot to plotter.GridXYZ with cell centres at
// integer coordinates.
type snapshotGrid struct {
	snap percolation.Snapshot
}

func (g snapshotGrid) Dims() (c, r int) { return g.snap.Field.Nx(), g.snap.Field.Ny() }
func (g snapshotGrid) X(c int) float64  { return float64(c) }
func (g snapshotGrid) Y(r int) float64  { return float64(r) }
func (g snapshotGrid) Z(c, r int) float64 {
	return shadeIndex(Shade(g.snap, c, r))
}

// SaveHeatMap draws snap with the WritePGM shades and saves it to path.
func SaveHeatMap(path, title string, snap percolation.Snapshot) error {
	if snap.Field == nil {
		return ErrNilField
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	hm := plotter.NewHeatMap(snapshotGrid{snap: snap}, shades)
	hm.Min, hm.Max = 0, float64(len(shades)-1)
	p.Add(hm)

	if err := p.Save(Size, Size, path); err != nil {
		return fmt.Errorf("SaveHeatMap: %w", err)
	}
	return nil
}

// SaveHistogram plots the distribution of per-run Euler characteristics in
// bins bins and saves it to path.
func SaveHistogram(path, title string, chis []int, bins int) error {
	if len(chis) == 0 {
		return ErrNoData
	}
	if bins < 1 {
		return fmt.Errorf("bins=%d: %w", bins, ErrBins)
	}
	values := make(plotter.Values, len(chis))
	for i, c := range chis {
		values[i] = float64(c)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Euler characteristic"
	p.Y.Label.Text = "Runs"

	h, err := plotter.NewHist(values, bins)
	if err != nil {
		return fmt.Errorf("SaveHistogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(Size, Size*3/4, path); err != nil {
		return fmt.Errorf("SaveHistogram: %w", err)
	}
	return nil
}
