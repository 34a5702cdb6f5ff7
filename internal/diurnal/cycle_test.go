package diurnal_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/HF7weatherman/hfutils/internal/diurnal"
	"github.com/HF7weatherman/hfutils/internal/domain"
)

// sixHourDataset builds one UTC day sampled every six hours at longitudes 0
// and 180, with values[i][j] = i + 10*j.
func sixHourDataset(t *testing.T) domain.Dataset {
	t.Helper()

	start := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	times := make([]time.Time, 4)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * 6 * time.Hour)
	}

	grid := domain.NewGrid("tas", "K", 4, 2)
	for i := 0; i < 4; i++ {
		for j := 0; j < 2; j++ {
			grid.Values[i][j] = float64(i + 10*j)
		}
	}

	return domain.Dataset{
		Name:  "test",
		Times: times,
		Lons:  []float64{0, 180},
		Grids: map[domain.VarName]*domain.Grid{"tas": grid},
	}
}

func TestAverageCycle_GroupsByLocalTime(t *testing.T) {
	ds := sixHourDataset(t)

	cycle, err := diurnal.AverageCycle(ds, domain.LocalTimeOptions{KeepResolution: true})
	if err != nil {
		t.Fatalf("AverageCycle: %v", err)
	}

	// Lon 180 is offset by exactly +12 h, so each local-time group picks up
	// one sample from each longitude.
	wantKeys := []domain.SecondOfDay{0, 21600, 43200, 64800}
	if diff := cmp.Diff(wantKeys, cycle.Keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	// key 00:00 averages values (i=0,lon=0)=0 and (i=2,lon=180)=12, etc.
	wantMeans := []float64{6, 7, 6, 7}
	if diff := cmp.Diff(wantMeans, cycle.Means["tas"]); diff != "" {
		t.Fatalf("means mismatch (-want +got):\n%s", diff)
	}
	wantCounts := []int{2, 2, 2, 2}
	if diff := cmp.Diff(wantCounts, cycle.Counts["tas"]); diff != "" {
		t.Fatalf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestAverageCycle_SkipsNaN(t *testing.T) {
	ds := sixHourDataset(t)
	ds.Grids["tas"].Values[0][0] = math.NaN()

	cycle, err := diurnal.AverageCycle(ds, domain.LocalTimeOptions{KeepResolution: true})
	if err != nil {
		t.Fatalf("AverageCycle: %v", err)
	}

	// The 00:00 group lost one of its two samples.
	if got := cycle.Counts["tas"][0]; got != 1 {
		t.Fatalf("count: got %d, want 1", got)
	}
	if got := cycle.Means["tas"][0]; got != 12 {
		t.Fatalf("mean: got %v, want 12", got)
	}
}

func TestAverageCycle_AllNaNGroup(t *testing.T) {
	ds := sixHourDataset(t)
	ds.Grids["tas"].Values[0][0] = math.NaN()
	ds.Grids["tas"].Values[2][1] = math.NaN()

	cycle, err := diurnal.AverageCycle(ds, domain.LocalTimeOptions{KeepResolution: true})
	if err != nil {
		t.Fatalf("AverageCycle: %v", err)
	}

	if got := cycle.Counts["tas"][0]; got != 0 {
		t.Fatalf("count: got %d, want 0", got)
	}
	if got := cycle.Means["tas"][0]; !math.IsNaN(got) {
		t.Fatalf("mean: got %v, want NaN", got)
	}
}

func TestAverageCycle_UnevenSampling(t *testing.T) {
	ds := sixHourDataset(t)
	ds.Times[3] = ds.Times[3].Add(time.Minute)

	if _, err := diurnal.AverageCycle(ds, domain.LocalTimeOptions{}); !errors.Is(err, diurnal.ErrUnevenSampling) {
		t.Fatalf("got %v, want ErrUnevenSampling", err)
	}
}

func TestAverageCycle_EmptyDataset(t *testing.T) {
	if _, err := diurnal.AverageCycle(domain.Dataset{}, domain.LocalTimeOptions{}); !errors.Is(err, diurnal.ErrEmptyDataset) {
		t.Fatalf("got %v, want ErrEmptyDataset", err)
	}
}
