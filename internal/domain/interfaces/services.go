package interfaces

import domaintypes "github.com/HF7weatherman/hfutils/internal/domain/types"

// CycleService computes area-averaged diurnal cycles.
type CycleService interface {
	// ComputeDataset averages an in-memory dataset by approximate local time.
	ComputeDataset(
		ds domaintypes.Dataset,
		opts domaintypes.LocalTimeOptions,
	) (domaintypes.DiurnalCycle, error)

	// ComputeFile loads a dataset CSV, averages it, and, when outPath is
	// non-empty, persists the result.
	ComputeFile(
		inPath, outPath string,
		opts domaintypes.LocalTimeOptions,
	) (domaintypes.DiurnalCycle, error)
}

// HistService computes compound and conditional 2-D histograms.
type HistService interface {
	// ComputeFile loads two sample columns from a CSV, bins them, and, when
	// outPath is non-empty, persists the result.
	ComputeFile(
		inPath, outPath string,
		spec domaintypes.HistSpec,
	) (domaintypes.Hist2D, error)
}
