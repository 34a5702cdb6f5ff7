package histogram

import (
	"fmt"
	"math"
	"sort"

	"github.com/HF7weatherman/hfutils/internal/domain"
)

// Centers returns the midpoints of consecutive bin edges.
func Centers(edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}
	centers := make([]float64, len(edges)-1)
	for i := range centers {
		centers[i] = (edges[i] + edges[i+1]) / 2
	}
	return centers
}

// Edges returns n+1 linearly spaced bin edges spanning [min, max].
func Edges(min, max float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("edges: need at least one bin, got %d", n)
	}
	if !(min < max) {
		return nil, fmt.Errorf("edges: min %v must be below max %v", min, max)
	}
	edges := make([]float64, n+1)
	width := (max - min) / float64(n)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	// Avoid float drift on the closing edge.
	edges[n] = max
	return edges, nil
}

// Compound counts paired samples into a 2-D histogram. Bins are half-open
// [e_i, e_i+1) with the last bin closed on the right. Pairs with a NaN
// coordinate or a coordinate outside the edges are dropped.
func Compound(xs, ys, xEdges, yEdges []float64) (domain.Hist2D, error) {
	if len(xs) != len(ys) {
		return domain.Hist2D{}, fmt.Errorf(
			"compound: sample length mismatch: %d x vs %d y", len(xs), len(ys))
	}
	if err := checkEdges("x", xEdges); err != nil {
		return domain.Hist2D{}, err
	}
	if err := checkEdges("y", yEdges); err != nil {
		return domain.Hist2D{}, err
	}

	counts := make([][]float64, len(yEdges)-1)
	for iy := range counts {
		counts[iy] = make([]float64, len(xEdges)-1)
	}

	for i := range xs {
		ix := binIndex(xEdges, xs[i])
		iy := binIndex(yEdges, ys[i])
		if ix < 0 || iy < 0 {
			continue
		}
		counts[iy][ix]++
	}

	return domain.Hist2D{XEdges: xEdges, YEdges: yEdges, Counts: counts}, nil
}

// Conditional normalises compound counts along the given axis: each count is
// divided by the bin width along that axis and by the total of its
// row (axis x) or column (axis y). Rows or columns without samples come out
// as NaN, mirroring a 0/0 division.
func Conditional(
	counts [][]float64,
	normBins []float64,
	axis domain.NormAxis,
) ([][]float64, error) {
	if len(counts) == 0 || len(counts[0]) == 0 {
		return nil, fmt.Errorf("conditional: empty counts")
	}
	nx, ny := len(counts[0]), len(counts)

	out := make([][]float64, ny)
	for iy := range out {
		if len(counts[iy]) != nx {
			return nil, fmt.Errorf("conditional: ragged counts at row %d", iy)
		}
		out[iy] = make([]float64, nx)
	}

	switch axis {
	case domain.NormX:
		if len(normBins) != nx+1 {
			return nil, fmt.Errorf(
				"conditional: got %d norm bin edges for %d x bins", len(normBins), nx)
		}
		for iy := 0; iy < ny; iy++ {
			rowSum := 0.0
			for ix := 0; ix < nx; ix++ {
				rowSum += counts[iy][ix]
			}
			for ix := 0; ix < nx; ix++ {
				out[iy][ix] = counts[iy][ix] / (normBins[ix+1] - normBins[ix]) / rowSum
			}
		}
	case domain.NormY:
		if len(normBins) != ny+1 {
			return nil, fmt.Errorf(
				"conditional: got %d norm bin edges for %d y bins", len(normBins), ny)
		}
		for ix := 0; ix < nx; ix++ {
			colSum := 0.0
			for iy := 0; iy < ny; iy++ {
				colSum += counts[iy][ix]
			}
			for iy := 0; iy < ny; iy++ {
				out[iy][ix] = counts[iy][ix] / (normBins[iy+1] - normBins[iy]) / colSum
			}
		}
	default:
		return nil, fmt.Errorf("conditional: unknown norm axis %q", axis)
	}

	return out, nil
}

// binIndex returns the bin holding v, or -1 when v is NaN or outside the
// edges. The last bin is closed on the right.
func binIndex(edges []float64, v float64) int {
	if math.IsNaN(v) || v < edges[0] || v > edges[len(edges)-1] {
		return -1
	}
	if v == edges[len(edges)-1] {
		return len(edges) - 2
	}
	// The first edge strictly above v bounds the bin on the right.
	i := sort.Search(len(edges), func(i int) bool { return edges[i] > v })
	return i - 1
}

// checkEdges validates that bin edges are usable: at least two, strictly
// ascending.
func checkEdges(name string, edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("%s edges: need at least 2, got %d", name, len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return fmt.Errorf("%s edges: not strictly ascending at index %d", name, i)
		}
	}
	return nil
}
