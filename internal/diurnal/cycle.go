package diurnal

import (
	"errors"
	"math"
	"sort"

	"github.com/HF7weatherman/hfutils/internal/domain"
)

// ErrEmptyDataset is returned when a dataset has no variables or no grid
// cells to average.
var ErrEmptyDataset = errors.New("dataset has no samples to average")

// AverageCycle computes the average diurnal cycle of a dataset.
//
// Every (time, lon) cell is assigned an approximate local time, and each
// variable is averaged over the wall-clock second of day of those local
// times. NaN samples are skipped; a group whose samples are all NaN keeps a
// NaN mean and a zero count. The sampling resolution is detected from the
// dataset's time axis.
func AverageCycle(
	ds domain.Dataset,
	opts domain.LocalTimeOptions,
) (domain.DiurnalCycle, error) {
	if len(ds.Grids) == 0 || len(ds.Lons) == 0 {
		return domain.DiurnalCycle{}, ErrEmptyDataset
	}

	resolution, err := Resolution(ds.Times)
	if err != nil {
		return domain.DiurnalCycle{}, err
	}

	// Group keys depend only on the axes, so compute the (time, lon) ->
	// key mapping once and reuse it for every variable.
	keyAt := make([][]domain.SecondOfDay, len(ds.Times))
	keySet := map[domain.SecondOfDay]struct{}{}
	for i, t := range ds.Times {
		keyAt[i] = make([]domain.SecondOfDay, len(ds.Lons))
		for j, lon := range ds.Lons {
			local := ApproxLocalTime(t, lon, resolution, opts).UTC()
			hh, mm, ss := local.Clock()
			key := domain.SecondOfDay(hh*3600 + mm*60 + ss)
			keyAt[i][j] = key
			keySet[key] = struct{}{}
		}
	}

	keys := make([]domain.SecondOfDay, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	keyIdx := make(map[domain.SecondOfDay]int, len(keys))
	for idx, key := range keys {
		keyIdx[key] = idx
	}

	cycle := domain.DiurnalCycle{
		Keys:   keys,
		Means:  make(map[domain.VarName][]float64, len(ds.Grids)),
		Counts: make(map[domain.VarName][]int, len(ds.Grids)),
	}

	for name, grid := range ds.Grids {
		sums := make([]float64, len(keys))
		counts := make([]int, len(keys))

		for i := range ds.Times {
			for j := range ds.Lons {
				v := grid.Values[i][j]
				if math.IsNaN(v) {
					continue
				}
				idx := keyIdx[keyAt[i][j]]
				sums[idx] += v
				counts[idx]++
			}
		}

		means := make([]float64, len(keys))
		for idx := range keys {
			if counts[idx] == 0 {
				means[idx] = math.NaN()
				continue
			}
			means[idx] = sums[idx] / float64(counts[idx])
		}
		cycle.Means[name] = means
		cycle.Counts[name] = counts
	}

	return cycle, nil
}
