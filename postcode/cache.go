package postcode

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCacheSize bounds the cache when the caller passes size <= 0.
const defaultCacheSize = 4096

// CachedSource fronts another Source with a fixed-size LRU over whole
// rows, so wrapping a TableSource keeps its stored columns visible. Only
// successful lookups are cached: the table is append-only in practice,
// so a miss today may be a hit after the next table refresh.
type CachedSource struct {
	src   Source
	table TableSource // nil when src stores only the 1 km reference
	cache *lru.Cache[string, map[int]string]
}

// NewCachedSource wraps src with an LRU of the given size (entries).
func NewCachedSource(src Source, size int) (*CachedSource, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, map[int]string](size)
	if err != nil {
		return nil, err
	}
	table, _ := src.(TableSource)
	return &CachedSource{src: src, table: table, cache: cache}, nil
}

// GridRef1km implements Source.
func (s *CachedSource) GridRef1km(ctx context.Context, postcode string) (string, error) {
	row, err := s.row(ctx, postcode)
	if err != nil {
		return "", err
	}
	return row[1], nil
}

// Columns implements TableSource. When the wrapped source stores only
// the 1 km reference the row carries that single column.
func (s *CachedSource) Columns(ctx context.Context, postcode string) (map[int]string, error) {
	row, err := s.row(ctx, postcode)
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, len(row))
	for km, ref := range row {
		out[km] = ref
	}
	return out, nil
}

// row serves one postcode's columns from the cache, fetching on miss.
// The cached map is shared between hits; Columns hands out copies so
// callers can mutate freely.
func (s *CachedSource) row(ctx context.Context, postcode string) (map[int]string, error) {
	if row, ok := s.cache.Get(postcode); ok {
		return row, nil
	}
	var row map[int]string
	if s.table != nil {
		cols, err := s.table.Columns(ctx, postcode)
		if err != nil {
			return nil, err
		}
		row = cols
	} else {
		ref, err := s.src.GridRef1km(ctx, postcode)
		if err != nil {
			return nil, err
		}
		row = map[int]string{1: ref}
	}
	s.cache.Add(postcode, row)
	return row, nil
}
