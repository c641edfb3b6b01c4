// Package histogram describes the 2-D histograms the converter reads and
// how their bins are laid out into a flat image buffer.
package histogram

import (
	"fmt"
	"strings"
)

// Axis selects one of the two histogram axes.
type Axis int

const (
	X Axis = iota
	Y
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Histogram2D is a read-only view of a named 2-D histogram.
// All bin indices are 1-based; in-range bins are [1, BinCountX] x [1, BinCountY].
type Histogram2D interface {
	// Name returns the key the histogram was stored under.
	Name() string
	// Title returns the free-form histogram title, possibly empty.
	Title() string
	// Entries returns the number of fill calls recorded for the histogram.
	Entries() float64

	BinCountX() int
	BinCountY() int

	// BinCenter returns the center of bin i along axis.
	BinCenter(axis Axis, i int) float64
	// BinWidth returns the width of bin i along axis.
	BinWidth(axis Axis, i int) float64
	// BinContent returns the value stored in bin (ix, iy).
	BinContent(ix, iy int) float64
}

// RowBound selects the limit of the outer (row) loop used by Flatten.
type RowBound int

const (
	// RowBoundX bounds rows by the X bin count. Only square histograms are
	// fully covered; this matches the layout produced by the historical tool.
	RowBoundX RowBound = iota
	// RowBoundY bounds rows by the Y bin count and covers every bin.
	RowBoundY
)

func (b RowBound) String() string {
	switch b {
	case RowBoundX:
		return "x"
	case RowBoundY:
		return "y"
	default:
		return fmt.Sprintf("RowBound(%d)", int(b))
	}
}

// ParseRowBound parses "x" or "y" (case-insensitive).
func ParseRowBound(s string) (RowBound, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return RowBoundX, nil
	case "y":
		return RowBoundY, nil
	default:
		return RowBoundX, fmt.Errorf("invalid row bound %q (want x or y)", s)
	}
}
