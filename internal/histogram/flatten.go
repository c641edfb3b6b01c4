package histogram

// FlattenOptions controls bin traversal.
type FlattenOptions struct {
	// Reverse walks the X axis back-to-front.
	Reverse bool
	// RowBound selects the outer loop limit.
	RowBound RowBound
}

// Rows returns the number of rows Flatten visits for h under b.
func (b RowBound) Rows(h Histogram2D) int {
	if b == RowBoundY {
		return h.BinCountY()
	}
	return h.BinCountX()
}

// Flatten linearizes the bin contents of h with X varying fastest.
//
// Rows iy run from 1 to the row bound, columns ix from 1 to BinCountX. With
// Reverse the sampled column is BinCountX-ix+1. The result has
// BinCountX*rows values; under RowBoundX a non-square histogram yields more
// or fewer values than BinCountX*BinCountY.
func Flatten(h Histogram2D, opts FlattenOptions) []float64 {
	nx := h.BinCountX()
	rows := opts.RowBound.Rows(h)
	if nx <= 0 || rows <= 0 {
		return nil
	}

	out := make([]float64, 0, nx*rows)
	for iy := 1; iy <= rows; iy++ {
		for ix := 1; ix <= nx; ix++ {
			col := ix
			if opts.Reverse {
				col = nx - ix + 1
			}
			out = append(out, h.BinContent(col, iy))
		}
	}
	return out
}
