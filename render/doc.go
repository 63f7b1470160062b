// Package render exports fields and experiment results as images.
//
// WritePGM writes a plain-text greymap: black for the percolating cluster,
// grey for other alive cells and white for dead cells. SaveHeatMap draws the same three shades through
// gonum/plot and SaveHistogram plots the per-run Euler characteristics of an
// experiment. The output format of the plot functions follows the file
// extension (png, svg, pdf, ...).
package render
