package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/HF7weatherman/hfutils/internal/domain"
)

// FileStore exchanges datasets and analysis results as CSV files.
type FileStore struct {
	mu sync.Mutex
}

// NewFileStore returns a CSV-backed store.
func NewFileStore() *FileStore { return &FileStore{} }

// ---------- Datasets ----------

// LoadDataset reads a long-form dataset CSV (header "time,lon,<var...>").
// The time and longitude axes are the sorted unique values observed; grid
// cells without a row stay NaN.
func (s *FileStore) LoadDataset(path string) (domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) < 2 {
		return domain.Dataset{}, fmt.Errorf("%s: no data rows", path)
	}

	header := rows[0]
	if len(header) < 3 || header[0] != "time" || header[1] != "lon" {
		return domain.Dataset{}, fmt.Errorf(
			"%s: header must be time,lon,<var...>, got %q", path, strings.Join(header, ","))
	}
	varNames := make([]domain.VarName, len(header)-2)
	for i, name := range header[2:] {
		if name == "" {
			return domain.Dataset{}, fmt.Errorf("%s: empty variable name in header", path)
		}
		varNames[i] = domain.VarName(name)
	}

	type cell struct{ i, j int }
	timeSet := map[int64]time.Time{}
	lonSet := map[float64]struct{}{}

	parsed := make([]struct {
		t      time.Time
		lon    float64
		values []float64
	}, 0, len(rows)-1)

	for n, row := range rows[1:] {
		line := n + 2
		if len(row) != len(header) {
			return domain.Dataset{}, fmt.Errorf("%s:%d: got %d cells, want %d",
				path, line, len(row), len(header))
		}
		t, err := time.Parse(time.RFC3339, row[0])
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("%s:%d: bad time: %w", path, line, err)
		}
		lon, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("%s:%d: bad lon: %w", path, line, err)
		}
		values := make([]float64, len(varNames))
		for k, cellText := range row[2:] {
			v, err := parseValue(cellText)
			if err != nil {
				return domain.Dataset{}, fmt.Errorf("%s:%d: bad %s value: %w",
					path, line, varNames[k], err)
			}
			values[k] = v
		}
		timeSet[t.UnixNano()] = t.UTC()
		lonSet[lon] = struct{}{}
		parsed = append(parsed, struct {
			t      time.Time
			lon    float64
			values []float64
		}{t.UTC(), lon, values})
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

	ds := domain.Dataset{
		Name:  datasetName(path),
		Times: times,
		Lons:  lons,
		Grids: make(map[domain.VarName]*domain.Grid, len(varNames)),
	}
	for _, name := range varNames {
		ds.Grids[name] = domain.NewGrid(name, "", len(times), len(lons))
	}

	seen := make(map[cell]int, len(parsed))
	for n, p := range parsed {
		c := cell{timeIdx[p.t.UnixNano()], lonIdx[p.lon]}
		if prev, dup := seen[c]; dup {
			return domain.Dataset{}, fmt.Errorf(
				"%s:%d: duplicate sample for %s at lon %v (first at line %d)",
				path, n+2, p.t.Format(time.RFC3339), p.lon, prev)
		}
		seen[c] = n + 2
		for k, name := range varNames {
			ds.Grids[name].Values[c.i][c.j] = p.values[k]
		}
	}

	return ds, nil
}

// SaveDataset writes a dataset in long form, one row per (time, lon) cell.
func (s *FileStore) SaveDataset(path string, ds domain.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := ds.VarNames()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{"time", "lon"}, varNameStrings(names)...)
	if err := w.Write(header); err != nil {
		return err
	}
	for i, t := range ds.Times {
		for j, lon := range ds.Lons {
			row := make([]string, 0, len(header))
			row = append(row, t.UTC().Format(time.RFC3339),
				strconv.FormatFloat(lon, 'g', -1, 64))
			for _, name := range names {
				row = append(row, formatValue(ds.Grids[name].Values[i][j]))
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes(), 0o644)
}

// ---------- Sample columns ----------

// LoadColumns reads two named columns of a CSV into paired float slices.
// Empty cells load as NaN so downstream binning can drop them.
func (s *FileStore) LoadColumns(path, xColumn, yColumn string) ([]float64, []float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("%s: no data rows", path)
	}

	xIdx, yIdx := -1, -1
	for i, name := range rows[0] {
		switch name {
		case xColumn:
			xIdx = i
		case yColumn:
			yIdx = i
		}
	}
	if xIdx < 0 {
		return nil, nil, fmt.Errorf("%s: no column %q", path, xColumn)
	}
	if yIdx < 0 {
		return nil, nil, fmt.Errorf("%s: no column %q", path, yColumn)
	}

	xs := make([]float64, 0, len(rows)-1)
	ys := make([]float64, 0, len(rows)-1)
	for n, row := range rows[1:] {
		line := n + 2
		if xIdx >= len(row) || yIdx >= len(row) {
			return nil, nil, fmt.Errorf("%s:%d: short row", path, line)
		}
		x, err := parseValue(row[xIdx])
		if err != nil {
			return nil, nil, fmt.Errorf("%s:%d: bad %s value: %w", path, line, xColumn, err)
		}
		y, err := parseValue(row[yIdx])
		if err != nil {
			return nil, nil, fmt.Errorf("%s:%d: bad %s value: %w", path, line, yColumn, err)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}

// datasetName derives a dataset name from its file path.
func datasetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func varNameStrings(names []domain.VarName) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = name.String()
	}
	return out
}

var (
	_ domain.DatasetStore = (*FileStore)(nil)
	_ domain.SampleStore  = (*FileStore)(nil)
	_ domain.ResultStore  = (*FileStore)(nil)
)
