// SPDX-License-Identifier: MIT
package render

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlmat/mat"
	"github.com/katalvlaran/lvlmat/scalar"
)

// ErrNilMatrix is returned when a nil matrix is handed to the renderer.
var ErrNilMatrix = errors.New("render: nil matrix")

// Default geometry of a saved heat map.
const (
	defaultSide     = 4 * vg.Inch
	defaultColors   = 12
	defaultHueGamma = 1.0
)

// Grid adapts a matrix to plotter.GridXYZ. Matrix row 0 is drawn at the
// top of the image, matching how matrices are read on paper; gonum's
// y-axis grows upward, so the row index is flipped.
type Grid struct {
	m mat.Matrix[scalar.Real]
}

// NewGrid wraps m for plotting. Returns ErrNilMatrix for a nil matrix.
func NewGrid(m mat.Matrix[scalar.Real]) (*Grid, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return &Grid{m: m}, nil
}

// Dims returns (cols, rows) in gonum's (c, r) order.
func (g *Grid) Dims() (int, int) { return g.m.Cols(), g.m.Rows() }

// Z returns the element drawn at grid cell (c, r).
func (g *Grid) Z(c, r int) float64 {
	v, err := g.m.At(g.m.Rows()-1-r, c)
	if err != nil {
		// The plotter only asks inside Dims; a failure here means the
		// matrix shrank mid-plot, which the API forbids.
		panic(fmt.Sprintf("render: Z(%d,%d): %v", c, r, err))
	}

	return float64(v)
}

// X returns the x coordinate of grid column c.
func (g *Grid) X(c int) float64 { return float64(c) }

// Y returns the y coordinate of grid row r.
func (g *Grid) Y(r int) float64 { return float64(r) }

// Heatmap renders m as a heat map and saves it to path. The image format
// follows the file extension (.png, .svg, .pdf, …, as supported by
// gonum/plot).
// Returns ErrNilMatrix for a nil matrix and propagates save failures.
func Heatmap(m mat.Matrix[scalar.Real], title, path string) error {
	grid, err := NewGrid(m)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"

	hm := plotter.NewHeatMap(grid, palette.Heat(defaultColors, defaultHueGamma))
	p.Add(hm)

	if err := p.Save(defaultSide, defaultSide, path); err != nil {
		return fmt.Errorf("render: save %q: %w", path, err)
	}

	return nil
}
