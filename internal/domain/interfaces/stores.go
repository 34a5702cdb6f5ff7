package interfaces

import domaintypes "github.com/HF7weatherman/hfutils/internal/domain/types"

// DatasetStore loads and saves gridded datasets on disk.
type DatasetStore interface {
	LoadDataset(path string) (domaintypes.Dataset, error)
	SaveDataset(path string, ds domaintypes.Dataset) error
}

// SampleStore reads paired sample columns from a CSV file.
type SampleStore interface {
	LoadColumns(path, xColumn, yColumn string) (xs, ys []float64, err error)
}

// ResultStore persists analysis results.
type ResultStore interface {
	SaveCycle(path string, c domaintypes.DiurnalCycle) error
	LoadCycle(path string) (domaintypes.DiurnalCycle, error)
	SaveHist(path string, h domaintypes.Hist2D) error
}
