package cycle

import (
	"github.com/HF7weatherman/hfutils/internal/diurnal"
	"github.com/HF7weatherman/hfutils/internal/domain"
)

// Service computes area-averaged diurnal cycles and persists the results.
//
// A run consists of:
//   - Loading a gridded dataset from the dataset store.
//   - Detecting the sampling resolution and averaging every variable by
//     approximate local time of day.
//   - Persisting the resulting cycle via the result store.
type Service struct {
	datasets domain.DatasetStore
	results  domain.ResultStore
}

// New constructs a cycle Service with the given stores.
func New(datasets domain.DatasetStore, results domain.ResultStore) *Service {
	return &Service{datasets: datasets, results: results}
}

// ComputeDataset averages an in-memory dataset by approximate local time.
func (s *Service) ComputeDataset(
	ds domain.Dataset,
	opts domain.LocalTimeOptions,
) (domain.DiurnalCycle, error) {
	return diurnal.AverageCycle(ds, opts)
}

// ComputeFile loads the dataset at inPath, averages it, and, when outPath is
// non-empty, persists the cycle there.
func (s *Service) ComputeFile(
	inPath, outPath string,
	opts domain.LocalTimeOptions,
) (domain.DiurnalCycle, error) {
	ds, err := s.datasets.LoadDataset(inPath)
	if err != nil {
		return domain.DiurnalCycle{}, err
	}

	cycle, err := diurnal.AverageCycle(ds, opts)
	if err != nil {
		return domain.DiurnalCycle{}, err
	}

	if outPath != "" {
		if err := s.results.SaveCycle(outPath, cycle); err != nil {
			return domain.DiurnalCycle{}, err
		}
	}
	return cycle, nil
}

// Compile-time assertion that Service implements domain.CycleService.
var _ domain.CycleService = (*Service)(nil)
