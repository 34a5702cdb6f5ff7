package hist

import (
	"github.com/HF7weatherman/hfutils/internal/domain"
	"github.com/HF7weatherman/hfutils/internal/histogram"
)

// Service computes compound and conditional 2-D histograms from sample CSVs.
type Service struct {
	samples domain.SampleStore
	results domain.ResultStore
}

// New constructs a histogram Service with the given stores.
func New(samples domain.SampleStore, results domain.ResultStore) *Service {
	return &Service{samples: samples, results: results}
}

// ComputeFile loads the spec's two sample columns from inPath, bins them
// into compound counts, applies conditional normalisation when requested,
// and, when outPath is non-empty, persists the histogram there.
func (s *Service) ComputeFile(
	inPath, outPath string,
	spec domain.HistSpec,
) (domain.Hist2D, error) {
	xs, ys, err := s.samples.LoadColumns(inPath, spec.XColumn, spec.YColumn)
	if err != nil {
		return domain.Hist2D{}, err
	}

	h, err := histogram.Compound(xs, ys, spec.XEdges, spec.YEdges)
	if err != nil {
		return domain.Hist2D{}, err
	}

	switch spec.Norm {
	case "":
		// compound counts as-is
	case domain.NormX:
		h.Counts, err = histogram.Conditional(h.Counts, h.XEdges, domain.NormX)
	case domain.NormY:
		h.Counts, err = histogram.Conditional(h.Counts, h.YEdges, domain.NormY)
	default:
		h.Counts, err = histogram.Conditional(h.Counts, nil, spec.Norm)
	}
	if err != nil {
		return domain.Hist2D{}, err
	}

	if outPath != "" {
		if err := s.results.SaveHist(outPath, h); err != nil {
			return domain.Hist2D{}, err
		}
	}
	return h, nil
}

// Compile-time assertion that Service implements domain.HistService.
var _ domain.HistService = (*Service)(nil)
