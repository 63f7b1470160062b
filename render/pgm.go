package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/fracperc/percolation"
)

// Grey levels of the exported images.
const (
	Percolating = 0
	OtherAlive  = 125
	Dead        = 255
	MaxGrey     = 255
)

// ErrNilField indicates a snapshot without a field.
var ErrNilField = errors.New("render: snapshot has no field")

// Shade returns the grey level of cell (x,y) of snap. Cells carrying
// snap.Label are percolating; without labels every alive cell is OtherAlive.
func Shade(snap percolation.Snapshot, x, y int) int {
	switch {
	case snap.Field.At(x, y):
		return Dead
	case snap.Label != 0 && snap.Labels != nil && snap.Labels.At(x, y) == snap.Label:
		return Percolating
	default:
		return OtherAlive
	}
}

// WritePGM writes snap as a plain (P2) greymap: header "P2", "Ny Nx" and the
// maximum grey, then one value per line, rows from y = Ny−1 down to 0.
func WritePGM(w io.Writer, snap percolation.Snapshot) error {
	if snap.Field == nil {
		return ErrNilField
	}
	f := snap.Field
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P2\n%d %d\n%d\n", f.Ny(), f.Nx(), MaxGrey)
	for y := f.Ny() - 1; y >= 0; y-- {
		for x := 0; x < f.Nx(); x++ {
			fmt.Fprintf(bw, "%d\n", Shade(snap, x, y))
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WritePGM: %w", err)
	}
	return nil
}
