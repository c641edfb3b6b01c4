package rootio

import (
	"fmt"

	"go-hep.org/x/hep/groot/rcont"
	"go-hep.org/x/hep/groot/rhist"

	"github.com/banshee-data/th2fits/internal/histogram"
)

type axes2D interface {
	XAxis() rhist.Axis
	YAxis() rhist.Axis
}

// th2 adapts a groot TH2 to histogram.Histogram2D.
//
// bins follows ROOT's global bin layout, underflow and overflow included:
// bin(ix, iy) = ix + (nx+2)*iy.
type th2 struct {
	name    string
	title   string
	entries float64

	xaxis rhist.Axis
	yaxis rhist.Axis
	nx    int
	ny    int

	bins []float64
}

func newTH2(name, class string, h rhist.H2) (*th2, error) {
	ax, ok := h.(axes2D)
	if !ok {
		return nil, fmt.Errorf("%s: no axis accessors", class)
	}

	bins, err := contents(class, h)
	if err != nil {
		return nil, err
	}

	t := &th2{
		name:  name,
		xaxis: ax.XAxis(),
		yaxis: ax.YAxis(),
	}
	t.nx = t.xaxis.NBins()
	t.ny = t.yaxis.NBins()
	if want := (t.nx + 2) * (t.ny + 2); len(bins) < want {
		return nil, fmt.Errorf("%s: %d stored bins, want %d", class, len(bins), want)
	}
	t.bins = bins

	if v, ok := h.(interface{ Title() string }); ok {
		t.title = v.Title()
	}
	if v, ok := h.(interface{ Entries() float64 }); ok {
		t.entries = v.Entries()
	}
	return t, nil
}

// contents copies the bin array of the concrete TH2 flavour into float64.
func contents(class string, h rhist.H2) ([]float64, error) {
	switch v := h.(type) {
	case interface{ Array() rcont.ArrayD }:
		return append([]float64(nil), v.Array().Data...), nil
	case interface{ Array() rcont.ArrayF }:
		data := v.Array().Data
		out := make([]float64, len(data))
		for i, x := range data {
			out[i] = float64(x)
		}
		return out, nil
	case interface{ Array() rcont.ArrayI }:
		data := v.Array().Data
		out := make([]float64, len(data))
		for i, x := range data {
			out[i] = float64(x)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: unsupported bin storage", class)
	}
}

func (t *th2) Name() string     { return t.name }
func (t *th2) Title() string    { return t.title }
func (t *th2) Entries() float64 { return t.entries }
func (t *th2) BinCountX() int   { return t.nx }
func (t *th2) BinCountY() int   { return t.ny }

func (t *th2) axis(a histogram.Axis) rhist.Axis {
	if a == histogram.Y {
		return t.yaxis
	}
	return t.xaxis
}

func (t *th2) BinCenter(a histogram.Axis, i int) float64 {
	return t.axis(a).BinCenter(i)
}

func (t *th2) BinWidth(a histogram.Axis, i int) float64 {
	return t.axis(a).BinWidth(i)
}

// BinContent clamps out-of-range indices onto the underflow/overflow bins,
// matching TH2::GetBin.
func (t *th2) BinContent(ix, iy int) float64 {
	ix = clamp(ix, 0, t.nx+1)
	iy = clamp(iy, 0, t.ny+1)
	return t.bins[ix+(t.nx+2)*iy]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
