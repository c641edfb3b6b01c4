// Package preview renders quick-look images of a converted histogram.
package preview

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/th2fits/internal/fitsimg"
)

// Size is the edge length of PNG previews.
var Size = 6 * vg.Inch

// pixelGrid exposes an image as a plotter.GridXYZ in 1-based pixel coordinates.
type pixelGrid struct {
	img fitsimg.Image
}

func (g pixelGrid) Dims() (c, r int)   { return g.img.NX, g.img.NY }
func (g pixelGrid) Z(c, r int) float64 { return g.img.Pixels[r*g.img.NX+c] }
func (g pixelGrid) X(c int) float64    { return float64(c + 1) }
func (g pixelGrid) Y(r int) float64    { return float64(r + 1) }

// WritePNG renders img as a heat map.
func WritePNG(w io.Writer, img fitsimg.Image, title string) error {
	if err := img.Validate(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Pixel (axis 1)"
	p.Y.Label.Text = "Pixel (axis 2)"

	hm := plotter.NewHeatMap(pixelGrid{img: img}, palette.Heat(12, 1))
	if hm.Min == hm.Max {
		// A flat image still needs a non-empty color range.
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	wt, err := p.WriterTo(Size, Size, "png")
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
