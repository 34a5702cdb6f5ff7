package types

import "time"

// LocalTimeOptions controls the approximate-local-time assignment used by
// diurnal-cycle averaging.
type LocalTimeOptions struct {
	// KeepResolution truncates the longitude offset to a multiple of the
	// dataset's sampling resolution so local times stay on the sampling grid.
	KeepResolution bool

	// Center shifts the truncated offset by half a sampling interval.
	// Only meaningful together with KeepResolution.
	Center bool
}

// FetchSpec describes a remote gridded-variable query.
type FetchSpec struct {
	Measurement string
	Field       string
	Start       time.Time
	Stop        time.Time
}

// HistSpec describes a 2-D histogram run over two sample columns.
type HistSpec struct {
	XColumn string
	YColumn string
	XEdges  []float64
	YEdges  []float64

	// Norm selects conditional normalisation; empty means compound counts.
	Norm NormAxis
}
