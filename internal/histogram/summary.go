package histogram

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the statistics printed before a conversion.
type Summary struct {
	Name    string
	Title   string
	Entries float64

	NX, NY     int
	XMin, XMax float64
	YMin, YMax float64

	// Statistics over the in-range bin contents.
	Sum    float64
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes a Summary of h.
func Summarize(h Histogram2D) Summary {
	nx, ny := h.BinCountX(), h.BinCountY()
	s := Summary{
		Name:    h.Name(),
		Title:   h.Title(),
		Entries: h.Entries(),
		NX:      nx,
		NY:      ny,
	}
	if nx <= 0 || ny <= 0 {
		return s
	}

	s.XMin = h.BinCenter(X, 1) - h.BinWidth(X, 1)/2
	s.XMax = h.BinCenter(X, nx) + h.BinWidth(X, nx)/2
	s.YMin = h.BinCenter(Y, 1) - h.BinWidth(Y, 1)/2
	s.YMax = h.BinCenter(Y, ny) + h.BinWidth(Y, ny)/2

	contents := Flatten(h, FlattenOptions{RowBound: RowBoundY})
	s.Sum = floats.Sum(contents)
	s.Min = floats.Min(contents)
	s.Max = floats.Max(contents)
	if len(contents) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(contents, nil)
	} else {
		s.Mean, s.StdDev = contents[0], 0
	}
	return s
}

// Print writes the summary in the same spirit as ROOT's TH1::Print.
func (s Summary) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"TH2.Print Name  = %s, Entries= %g, Total sum= %g\n"+
			"  Title  = %s\n"+
			"  Bins   = %d x %d\n"+
			"  X      = [%g, %g)\n"+
			"  Y      = [%g, %g)\n"+
			"  Mean   = %g, StdDev= %g, Min= %g, Max= %g\n",
		s.Name, s.Entries, s.Sum,
		s.Title,
		s.NX, s.NY,
		s.XMin, s.XMax,
		s.YMin, s.YMax,
		nanZero(s.Mean), nanZero(s.StdDev), s.Min, s.Max,
	)
	return err
}

func nanZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
