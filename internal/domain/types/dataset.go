package types

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Grid holds one variable on a (time x lon) grid. Values[i][j] is the sample
// at Times[i], Lons[j] of the owning dataset; gaps are NaN.
type Grid struct {
	Name   VarName
	Units  string
	Values [][]float64
}

// NewGrid returns a grid of the given shape with every cell set to NaN.
func NewGrid(name VarName, units string, nTimes, nLons int) *Grid {
	values := make([][]float64, nTimes)
	for i := range values {
		row := make([]float64, nLons)
		for j := range row {
			row[j] = math.NaN()
		}
		values[i] = row
	}
	return &Grid{Name: name, Units: units, Values: values}
}

// Dataset is a named collection of variables sharing a time axis (strictly
// ascending, UTC) and a longitude axis (ascending, degrees east).
type Dataset struct {
	Name  string
	Times []time.Time
	Lons  []float64
	Grids map[VarName]*Grid
}

// VarNames returns the dataset's variable names in sorted order.
func (d Dataset) VarNames() []VarName {
	names := make([]VarName, 0, len(d.Grids))
	for name := range d.Grids {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Sample is one observation of a single variable.
type Sample struct {
	Time  time.Time
	Lon   float64
	Value float64
}

// FromSamples assembles a single-variable dataset from unordered samples.
// The time and longitude axes are the sorted unique values observed;
// unsampled grid cells stay NaN. Duplicate (time, lon) samples are an error.
func FromSamples(name string, varName VarName, units string, samples []Sample) (Dataset, error) {
	if len(samples) == 0 {
		return Dataset{}, fmt.Errorf("dataset %q: no samples", name)
	}

	timeSet := map[int64]time.Time{}
	lonSet := map[float64]struct{}{}
	for _, s := range samples {
		timeSet[s.Time.UnixNano()] = s.Time.UTC()
		lonSet[s.Lon] = struct{}{}
	}

	times := make([]time.Time, 0, len(timeSet))
	for _, t := range timeSet {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	lons := make([]float64, 0, len(lonSet))
	for lon := range lonSet {
		lons = append(lons, lon)
	}
	sort.Float64s(lons)

	timeIdx := make(map[int64]int, len(times))
	for i, t := range times {
		timeIdx[t.UnixNano()] = i
	}
	lonIdx := make(map[float64]int, len(lons))
	for j, lon := range lons {
		lonIdx[lon] = j
	}

	grid := NewGrid(varName, units, len(times), len(lons))
	seen := make(map[[2]int]struct{}, len(samples))
	for _, s := range samples {
		i := timeIdx[s.Time.UnixNano()]
		j := lonIdx[s.Lon]
		if _, dup := seen[[2]int{i, j}]; dup {
			return Dataset{}, fmt.Errorf("dataset %q: duplicate sample for %s at lon %v",
				name, s.Time.UTC().Format(time.RFC3339), s.Lon)
		}
		seen[[2]int{i, j}] = struct{}{}
		grid.Values[i][j] = s.Value
	}

	return Dataset{
		Name:  name,
		Times: times,
		Lons:  lons,
		Grids: map[VarName]*Grid{varName: grid},
	}, nil
}
