package postcode

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

// CSVSource serves lookups from a keyed CSV table on disk. The header
// must carry a "Postcode" column and a "1km_grid" column; any further
// "<n>km_grid" columns are served through Columns, and unrelated columns
// (latitude/longitude and the like) pass through ignored.
//
// The file is read once, on the first lookup; keys are normalized at
// load so query postcodes and table keys always compare equal.
type CSVSource struct {
	path string

	loadOnce sync.Once
	loadErr  error
	rows     map[string]map[int]string
}

// OpenCSV returns a lazily-loaded CSV source for the table at path.
// The file itself is not touched until the first lookup.
func OpenCSV(path string) *CSVSource {
	return &CSVSource{path: path}
}

// GridRef1km implements Source.
func (s *CSVSource) GridRef1km(ctx context.Context, postcode string) (string, error) {
	cols, err := s.Columns(ctx, postcode)
	if err != nil {
		return "", err
	}
	return cols[1], nil
}

// Columns implements TableSource. The returned map is the caller's to keep.
func (s *CSVSource) Columns(_ context.Context, postcode string) (map[int]string, error) {
	s.loadOnce.Do(s.load)
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	row, ok := s.rows[postcode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, postcode)
	}
	out := make(map[int]string, len(row))
	for km, ref := range row {
		out[km] = ref
	}
	return out, nil
}

func (s *CSVSource) load() {
	f, err := os.Open(s.path)
	if err != nil {
		s.loadErr = fmt.Errorf("postcode: open table: %w", err)
		return
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		s.loadErr = fmt.Errorf("%w: %v", ErrTable, err)
		return
	}
	pcCol := -1
	kmCols := map[int]int{} // column index -> resolution km
	for i, name := range header {
		switch {
		case strings.EqualFold(name, "Postcode"):
			pcCol = i
		case strings.HasSuffix(name, "km_grid"):
			km, convErr := strconv.Atoi(strings.TrimSuffix(name, "km_grid"))
			if convErr != nil {
				s.loadErr = fmt.Errorf("%w: column %q", ErrTable, name)
				return
			}
			kmCols[i] = km
		}
	}
	if pcCol < 0 {
		s.loadErr = fmt.Errorf("%w: no Postcode column", ErrTable)
		return
	}
	if _, ok := headerHas(kmCols, 1); !ok {
		s.loadErr = fmt.Errorf("%w: no 1km_grid column", ErrTable)
		return
	}

	rows := make(map[string]map[int]string)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.loadErr = fmt.Errorf("%w: %v", ErrTable, err)
			return
		}
		cols := make(map[int]string, len(kmCols))
		for i, km := range kmCols {
			if ref := strings.TrimSpace(record[i]); ref != "" {
				cols[km] = ref
			}
		}
		rows[Normalize(record[pcCol])] = cols
	}
	s.rows = rows
}

// headerHas reports whether any mapped column carries the resolution km.
func headerHas(kmCols map[int]int, km int) (int, bool) {
	for i, k := range kmCols {
		if k == km {
			return i, true
		}
	}
	return -1, false
}
