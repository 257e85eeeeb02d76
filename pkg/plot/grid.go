package plot

import (
	"slices"
	"sort"
)

// Grid is a rectangular coordinate grid reconstructed from flat point
// triples. Z is indexed [row][col], rows following Y and columns following X.
type Grid struct {
	X []float64   // sorted unique x coordinates, one per column
	Y []float64   // sorted unique y coordinates, one per row
	Z [][]float64 // len(Y) × len(X) value matrix
}

// ReconstructGrid infers a rectangular grid from flat x/y/z triples.
//
// The candidate check is |unique(x)| * |unique(y)| == len(z). When it holds,
// z is reshaped row-major in input order into a len(unique(y)) × len(unique(x))
// matrix over the sorted unique coordinates. When it does not, the data is
// not a complete grid and ok is false; callers are expected to degrade to
// unordered point rendering rather than fail.
func ReconstructGrid(x, y, z []float64) (g Grid, ok bool) {
	ux := uniqueSorted(x)
	uy := uniqueSorted(y)

	if len(ux)*len(uy) != len(z) {
		return Grid{}, false
	}

	zz := make([][]float64, len(uy))
	for i := range uy {
		zz[i] = z[i*len(ux) : (i+1)*len(ux)]
	}
	return Grid{X: ux, Y: uy, Z: zz}, true
}

// uniqueSorted returns the distinct values of vs in ascending order.
func uniqueSorted(vs []float64) []float64 {
	out := slices.Clone(vs)
	sort.Float64s(out)
	return slices.Compact(out)
}
