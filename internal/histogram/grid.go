package histogram

import "fmt"

// Grid is a dense in-memory Histogram2D with uniform binning on both axes.
type Grid struct {
	name    string
	title   string
	entries float64

	nx, ny     int
	xmin, xmax float64
	ymin, ymax float64

	// cells[(iy-1)*nx + (ix-1)]
	cells []float64
}

// NewGrid creates an empty nx by ny grid spanning [xmin, xmax) x [ymin, ymax).
func NewGrid(name string, nx int, xmin, xmax float64, ny int, ymin, ymax float64) (*Grid, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("grid %q: bin counts must be positive, got %dx%d", name, nx, ny)
	}
	if xmax <= xmin || ymax <= ymin {
		return nil, fmt.Errorf("grid %q: empty axis range", name)
	}
	return &Grid{
		name:  name,
		nx:    nx,
		ny:    ny,
		xmin:  xmin,
		xmax:  xmax,
		ymin:  ymin,
		ymax:  ymax,
		cells: make([]float64, nx*ny),
	}, nil
}

// SetTitle sets the histogram title.
func (g *Grid) SetTitle(title string) { g.title = title }

// Set stores v in bin (ix, iy) and counts one entry. Out-of-range bins are ignored.
func (g *Grid) Set(ix, iy int, v float64) {
	if !g.inRange(ix, iy) {
		return
	}
	g.cells[(iy-1)*g.nx+(ix-1)] = v
	g.entries++
}

func (g *Grid) inRange(ix, iy int) bool {
	return ix >= 1 && ix <= g.nx && iy >= 1 && iy <= g.ny
}

func (g *Grid) Name() string     { return g.name }
func (g *Grid) Title() string    { return g.title }
func (g *Grid) Entries() float64 { return g.entries }
func (g *Grid) BinCountX() int   { return g.nx }
func (g *Grid) BinCountY() int   { return g.ny }

// BinContent returns 0 outside the in-range bins.
func (g *Grid) BinContent(ix, iy int) float64 {
	if !g.inRange(ix, iy) {
		return 0
	}
	return g.cells[(iy-1)*g.nx+(ix-1)]
}

func (g *Grid) BinWidth(axis Axis, _ int) float64 {
	lo, hi, n := g.axisRange(axis)
	return (hi - lo) / float64(n)
}

func (g *Grid) BinCenter(axis Axis, i int) float64 {
	lo, _, _ := g.axisRange(axis)
	return lo + (float64(i)-0.5)*g.BinWidth(axis, i)
}

func (g *Grid) axisRange(axis Axis) (lo, hi float64, n int) {
	if axis == Y {
		return g.ymin, g.ymax, g.ny
	}
	return g.xmin, g.xmax, g.nx
}
