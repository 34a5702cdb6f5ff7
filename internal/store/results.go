package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/HF7weatherman/hfutils/internal/domain"
	"github.com/HF7weatherman/hfutils/internal/histogram"
)

// EncodeCycle writes a diurnal cycle as CSV: one row per local-time key,
// per variable a mean column and a <var>_count column.
func EncodeCycle(w io.Writer, c domain.DiurnalCycle) error {
	cw := csv.NewWriter(w)

	names := c.VarNames()
	header := []string{"local_time"}
	for _, name := range names {
		header = append(header, name.String(), name.String()+"_count")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for idx, key := range c.Keys {
		row := []string{key.Clock()}
		for _, name := range names {
			row = append(row,
				formatValue(c.Means[name][idx]),
				strconv.Itoa(c.Counts[name][idx]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeHist writes a 2-D histogram as CSV: x-bin centers across the header,
// y-bin centers down the first column. The counts must match the shape the
// edges describe.
func EncodeHist(w io.Writer, h domain.Hist2D) error {
	if len(h.Counts) != h.NY() {
		return fmt.Errorf("histogram: got %d count rows for %d y bins",
			len(h.Counts), h.NY())
	}
	for iy, row := range h.Counts {
		if len(row) != h.NX() {
			return fmt.Errorf("histogram: row %d has %d cells for %d x bins",
				iy, len(row), h.NX())
		}
	}

	cw := csv.NewWriter(w)

	header := []string{"y_center"}
	for _, x := range histogram.Centers(h.XEdges) {
		header = append(header, strconv.FormatFloat(x, 'g', -1, 64))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	yCenters := histogram.Centers(h.YEdges)
	for iy, row := range h.Counts {
		out := []string{strconv.FormatFloat(yCenters[iy], 'g', -1, 64)}
		for _, v := range row {
			out = append(out, formatValue(v))
		}
		if err := cw.Write(out); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCycle persists a diurnal cycle as CSV.
func (s *FileStore) SaveCycle(path string, c domain.DiurnalCycle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := EncodeCycle(&buf, c); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes(), 0o644)
}

// LoadCycle reads a diurnal cycle CSV written by SaveCycle.
func (s *FileStore) LoadCycle(path string) (domain.DiurnalCycle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return domain.DiurnalCycle{}, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return domain.DiurnalCycle{}, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) < 2 {
		return domain.DiurnalCycle{}, fmt.Errorf("%s: no data rows", path)
	}

	header := rows[0]
	if len(header) < 3 || header[0] != "local_time" || (len(header)-1)%2 != 0 {
		return domain.DiurnalCycle{}, fmt.Errorf(
			"%s: header must be local_time,<var>,<var>_count,...", path)
	}
	names := make([]domain.VarName, 0, (len(header)-1)/2)
	for i := 1; i < len(header); i += 2 {
		name := header[i]
		if header[i+1] != name+"_count" {
			return domain.DiurnalCycle{}, fmt.Errorf(
				"%s: column %q not followed by %q", path, name, name+"_count")
		}
		names = append(names, domain.VarName(name))
	}

	cycle := domain.DiurnalCycle{
		Keys:   make([]domain.SecondOfDay, 0, len(rows)-1),
		Means:  make(map[domain.VarName][]float64, len(names)),
		Counts: make(map[domain.VarName][]int, len(names)),
	}

	for n, row := range rows[1:] {
		line := n + 2
		if len(row) != len(header) {
			return domain.DiurnalCycle{}, fmt.Errorf("%s:%d: short row", path, line)
		}
		key, err := parseClock(row[0])
		if err != nil {
			return domain.DiurnalCycle{}, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		cycle.Keys = append(cycle.Keys, key)
		for k, name := range names {
			mean, err := parseValue(row[1+2*k])
			if err != nil {
				return domain.DiurnalCycle{}, fmt.Errorf("%s:%d: bad %s mean: %w",
					path, line, name, err)
			}
			count, err := strconv.Atoi(row[2+2*k])
			if err != nil {
				return domain.DiurnalCycle{}, fmt.Errorf("%s:%d: bad %s count: %w",
					path, line, name, err)
			}
			cycle.Means[name] = append(cycle.Means[name], mean)
			cycle.Counts[name] = append(cycle.Counts[name], count)
		}
	}
	return cycle, nil
}

// SaveHist persists a 2-D histogram as CSV.
func (s *FileStore) SaveHist(path string, h domain.Hist2D) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := EncodeHist(&buf, h); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes(), 0o644)
}

// parseClock parses an HH:MM:SS local-time key.
func parseClock(s string) (domain.SecondOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("bad local_time %q", s)
	}
	hh, err1 := strconv.Atoi(parts[0])
	mm, err2 := strconv.Atoi(parts[1])
	ss, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil ||
		hh < 0 || mm < 0 || mm > 59 || ss < 0 || ss > 59 {
		return 0, fmt.Errorf("bad local_time %q", s)
	}
	total := hh*3600 + mm*60 + ss
	if total >= domain.SecondsPerDay {
		return 0, fmt.Errorf("bad local_time %q", s)
	}
	return domain.SecondOfDay(total), nil
}
