package preview

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/th2fits/internal/fitsimg"
)

var viridis = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// WriteHTML renders img as an interactive scatter heat map. Points sit at
// pixel centers and are colored by value.
func WriteHTML(w io.Writer, img fitsimg.Image, title string) error {
	if err := img.Validate(); err != nil {
		return err
	}

	pixels := img.Pixels[:img.NX*img.NY]
	data := make([]opts.ScatterData, 0, len(pixels))
	for r := 0; r < img.NY; r++ {
		for c := 0; c < img.NX; c++ {
			data = append(data, opts.ScatterData{Value: []interface{}{c + 1, r + 1, pixels[r*img.NX+c]}})
		}
	}

	lo, hi := floats.Min(pixels), floats.Max(pixels)
	if lo == hi {
		hi = lo + 1
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%dx%d pixels", img.NX, img.NY)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: img.NX + 1, Name: "Pixel (axis 1)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: img.NY + 1, Name: "Pixel (axis 2)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)

	scatter.AddSeries("pixels", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
