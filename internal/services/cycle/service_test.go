package cycle_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/HF7weatherman/hfutils/internal/domain"
	"github.com/HF7weatherman/hfutils/internal/services/cycle"
	"github.com/HF7weatherman/hfutils/internal/store"
)

func TestComputeFile_PersistsCycle(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "ds.csv")
	outPath := filepath.Join(dir, "ds_diurnal.csv")

	// Two longitudes twelve hours apart in local time, sampled every six
	// hours for one day.
	rows := []string{"time,lon,tas"}
	for i, clock := range []string{"00", "06", "12", "18"} {
		rows = append(rows,
			"2021-03-01T"+clock+":00:00Z,0,"+strconv.Itoa(i),
			"2021-03-01T"+clock+":00:00Z,180,"+strconv.Itoa(i+10),
		)
	}
	if err := os.WriteFile(inPath, []byte(strings.Join(rows, "\n")), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	fs := store.NewFileStore()
	svc := cycle.New(fs, fs)

	got, err := svc.ComputeFile(inPath, outPath, domain.LocalTimeOptions{KeepResolution: true})
	if err != nil {
		t.Fatalf("ComputeFile: %v", err)
	}
	if len(got.Keys) != 4 {
		t.Fatalf("got %d keys, want 4", len(got.Keys))
	}

	loaded, err := fs.LoadCycle(outPath)
	if err != nil {
		t.Fatalf("LoadCycle: %v", err)
	}
	if len(loaded.Keys) != 4 {
		t.Fatalf("persisted cycle has %d keys, want 4", len(loaded.Keys))
	}
	if loaded.Means["tas"][0] != got.Means["tas"][0] {
		t.Fatalf("persisted mean %v differs from computed %v",
			loaded.Means["tas"][0], got.Means["tas"][0])
	}
}

func TestComputeFile_NoOutPath(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "ds.csv")
	content := strings.Join([]string{
		"time,lon,tas",
		"2021-03-01T00:00:00Z,0,1",
		"2021-03-01T06:00:00Z,0,2",
	}, "\n")
	if err := os.WriteFile(inPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	fs := store.NewFileStore()
	svc := cycle.New(fs, fs)
	if _, err := svc.ComputeFile(inPath, "", domain.LocalTimeOptions{}); err != nil {
		t.Fatalf("ComputeFile: %v", err)
	}
}
