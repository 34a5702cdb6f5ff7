package store_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/HF7weatherman/hfutils/internal/domain"
	"github.com/HF7weatherman/hfutils/internal/store"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDataset_BuildsGrid(t *testing.T) {
	path := writeTemp(t, "ds.csv", strings.Join([]string{
		"time,lon,tas",
		"2021-03-01T06:00:00Z,90,2",
		"2021-03-01T00:00:00Z,0,1",
		"2021-03-01T06:00:00Z,0,3",
	}, "\n"))

	s := store.NewFileStore()
	ds, err := s.LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}

	wantTimes := []time.Time{
		time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 3, 1, 6, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(wantTimes, ds.Times); diff != "" {
		t.Fatalf("times mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 90}, ds.Lons); diff != "" {
		t.Fatalf("lons mismatch (-want +got):\n%s", diff)
	}

	// The unsampled (00:00, lon 90) cell stays NaN.
	want := [][]float64{
		{1, math.NaN()},
		{3, 2},
	}
	if diff := cmp.Diff(want, ds.Grids["tas"].Values, cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDataset_DuplicateRow(t *testing.T) {
	path := writeTemp(t, "ds.csv", strings.Join([]string{
		"time,lon,tas",
		"2021-03-01T00:00:00Z,0,1",
		"2021-03-01T00:00:00Z,0,2",
	}, "\n"))

	if _, err := store.NewFileStore().LoadDataset(path); err == nil {
		t.Fatal("expected duplicate sample error")
	}
}

func TestLoadDataset_BadHeader(t *testing.T) {
	path := writeTemp(t, "ds.csv", "lon,time,tas\n0,2021-03-01T00:00:00Z,1\n")
	if _, err := store.NewFileStore().LoadDataset(path); err == nil {
		t.Fatal("expected header error")
	}
}

func TestDataset_SaveLoad_RoundTrip(t *testing.T) {
	grid := domain.NewGrid("pr", "mm/h", 2, 2)
	grid.Values[0][0] = 0.5
	grid.Values[1][1] = 1.5

	ds := domain.Dataset{
		Name: "rt",
		Times: []time.Time{
			time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2022, 1, 1, 1, 0, 0, 0, time.UTC),
		},
		Lons:  []float64{-10, 20},
		Grids: map[domain.VarName]*domain.Grid{"pr": grid},
	}

	path := filepath.Join(t.TempDir(), "rt.csv")
	s := store.NewFileStore()
	if err := s.SaveDataset(path, ds); err != nil {
		t.Fatalf("SaveDataset: %v", err)
	}
	got, err := s.LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}

	if diff := cmp.Diff(ds.Grids["pr"].Values, got.Grids["pr"].Values, cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ds.Lons, got.Lons); diff != "" {
		t.Fatalf("lons mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadColumns(t *testing.T) {
	path := writeTemp(t, "samples.csv", strings.Join([]string{
		"w,cwv,pr",
		"1,30,0.1",
		"2,,0.2",
		"3,50,0.3",
	}, "\n"))

	xs, ys, err := store.NewFileStore().LoadColumns(path, "cwv", "pr")
	if err != nil {
		t.Fatalf("LoadColumns: %v", err)
	}
	if diff := cmp.Diff([]float64{30, math.NaN(), 50}, xs, cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("xs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.1, 0.2, 0.3}, ys); diff != "" {
		t.Fatalf("ys mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadColumns_MissingColumn(t *testing.T) {
	path := writeTemp(t, "samples.csv", "a,b\n1,2\n")
	if _, _, err := store.NewFileStore().LoadColumns(path, "a", "zz"); err == nil {
		t.Fatal("expected missing column error")
	}
}
