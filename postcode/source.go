package postcode

import (
	"context"
	"strings"
	"unicode"
)

// Source is the read interface over the postcode lookup table. The table
// is populated externally; implementations only serve lookups.
//
// GridRef1km returns the 1 km grid reference for a postcode already run
// through Normalize, or ErrNotFound.
type Source interface {
	GridRef1km(ctx context.Context, postcode string) (string, error)
}

// TableSource is a Source whose backing table stores the full
// per-resolution column set. Columns returns resolution (km) to grid
// reference for one postcode, or ErrNotFound.
type TableSource interface {
	Source
	Columns(ctx context.Context, postcode string) (map[int]string, error)
}

// Normalize standardises a postcode for lookup: every whitespace rune is
// stripped and the rest folds to upper case.
func Normalize(pc string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, pc)
}
