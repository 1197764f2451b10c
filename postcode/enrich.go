package postcode

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Bubo-AI/spatial-utilities/bnggrid"
)

// Column is one grid reference at one resolution.
type Column struct {
	ResolutionKm int
	Ref          string
}

// Record is the enrichment result for a single input postcode.
// Columns is sorted largest resolution first and is empty when the
// postcode was not found.
type Record struct {
	Postcode string // normalized form
	Found    bool
	Columns  []Column
}

// Ref returns the record's reference at the given resolution, or ""
// when absent.
func (r Record) Ref(km int) string {
	for _, c := range r.Columns {
		if c.ResolutionKm == km {
			return c.Ref
		}
	}
	return ""
}

// Options configures Enrich.
//
//   - With2km — also derive the non-standard 2 km reference from the
//     1 km column. Off by default, matching the table's stored columns.
type Options struct {
	With2km bool
}

// DefaultOptions returns the default enrichment settings.
func DefaultOptions() Options {
	return Options{}
}

// Enrich joins the given postcodes against src, one Record per input in
// input order. Postcodes are normalized before lookup. A postcode
// missing from the source yields Found=false and no columns rather than
// an error; any other source failure aborts the whole batch.
//
// When src is a TableSource its stored columns are used as-is; gaps the
// table can fill from the 1 km reference (100, 10, 5 km) are derived,
// never overriding stored values. A plain Source contributes only the
// 1 km reference plus the derivable columns.
func Enrich(ctx context.Context, src Source, postcodes []string, opts Options) ([]Record, error) {
	table, _ := src.(TableSource)

	out := make([]Record, 0, len(postcodes))
	for _, pc := range postcodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		norm := Normalize(pc)
		rec := Record{Postcode: norm}

		cols, err := lookup(ctx, src, table, norm)
		switch {
		case err == nil:
			rec.Found = true
			if err = fillDerived(cols, opts.With2km); err != nil {
				return nil, fmt.Errorf("postcode %q: %w", norm, err)
			}
			rec.Columns = sortColumns(cols)
		case errors.Is(err, ErrNotFound):
			// left-join semantics: keep the row, mark it missing
		default:
			return nil, fmt.Errorf("postcode %q: %w", norm, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// lookup fetches the stored columns for one postcode, preferring the
// full table row when the source can serve it.
func lookup(ctx context.Context, src Source, table TableSource, norm string) (map[int]string, error) {
	if table != nil {
		return table.Columns(ctx, norm)
	}
	ref, err := src.GridRef1km(ctx, norm)
	if err != nil {
		return nil, err
	}
	return map[int]string{1: ref}, nil
}

// fillDerived adds the columns derivable from the 1 km reference that
// the table did not store.
func fillDerived(cols map[int]string, with2km bool) error {
	ref1km, ok := cols[1]
	if !ok {
		return nil
	}
	if err := check1km(ref1km); err != nil {
		return err
	}
	if _, ok := cols[100]; !ok {
		cols[100] = ref1km[:2]
	}
	if _, ok := cols[10]; !ok {
		cols[10] = ref1km[:2] + string(ref1km[2]) + string(ref1km[4])
	}
	if _, ok := cols[5]; !ok {
		cols[5] = quadrant5km(ref1km)
	}
	if _, ok := cols[2]; with2km && !ok {
		ref2km, err := bnggrid.Derive2km(ref1km)
		if err != nil {
			return err
		}
		cols[2] = ref2km
	}
	return nil
}

// quadrant5km coarsens a 1 km reference to 5 km: tens digits plus the
// quadrant the units digits select.
func quadrant5km(ref1km string) string {
	ns, ew := byte('S'), byte('W')
	if ref1km[5] >= '5' { // northing units
		ns = 'N'
	}
	if ref1km[3] >= '5' { // easting units
		ew = 'E'
	}
	return ref1km[:2] + string(ref1km[2]) + string(ref1km[4]) + string(ns) + string(ew)
}

// check1km validates the stored 1 km reference shape: two grid letters
// and four digits.
func check1km(ref string) error {
	if len(ref) != 6 {
		return fmt.Errorf("%w: 1 km reference %q", ErrTable, ref)
	}
	for _, b := range []byte(ref[:2]) {
		if b < 'A' || b > 'Z' || b == 'I' {
			return fmt.Errorf("%w: 1 km reference %q", ErrTable, ref)
		}
	}
	for _, b := range []byte(ref[2:]) {
		if b < '0' || b > '9' {
			return fmt.Errorf("%w: 1 km reference %q", ErrTable, ref)
		}
	}
	return nil
}

// sortColumns orders resolutions largest first.
func sortColumns(cols map[int]string) []Column {
	out := make([]Column, 0, len(cols))
	for km, ref := range cols {
		out = append(out, Column{ResolutionKm: km, Ref: ref})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ResolutionKm > out[j].ResolutionKm })
	return out
}
