package types

// Hist2D holds a two-dimensional histogram. Counts[iy][ix] is the bin
// bounded by XEdges[ix], XEdges[ix+1] and YEdges[iy], YEdges[iy+1]. Counts
// are float64 so compound counts and conditionally normalised densities
// share the type.
type Hist2D struct {
	XEdges []float64
	YEdges []float64
	Counts [][]float64
}

// NX returns the number of bins along x.
func (h Hist2D) NX() int { return len(h.XEdges) - 1 }

// NY returns the number of bins along y.
func (h Hist2D) NY() int { return len(h.YEdges) - 1 }
