// Package postcode joins postcodes with their British National Grid
// references across resolutions.
//
// What:
//
//   - Source: the read interface over an externally-populated lookup
//     table mapping a normalized postcode to its 1 km grid reference.
//   - TableSource: a Source that can also serve the full pre-joined
//     per-resolution column set (100/50/20/10/5/1 km) for a postcode.
//   - Enrich: the batch join — one Record per input postcode, columns
//     ordered largest to smallest resolution, missing postcodes kept as
//     not-found rows (left-join semantics). Columns a table does not
//     store are derived from the 1 km reference where possible: 100 km
//     (letters), 10 km (tens digits), 5 km (tens digits + quadrant) and,
//     on request, the non-standard 2 km reference via bnggrid.Derive2km.
//   - Concrete sources: OpenCSV (keyed CSV table, loaded once),
//     OpenPostgres (pc2ng table over database/sql with the pgx driver),
//     NewCachedSource (LRU front for repeated lookups) and
//     NewSourceFromEnv (DSN or path picked up from the environment).
//
// Why:
//
//   - Enriching address-level datasets with area identifiers at the
//     resolution each downstream aggregation needs, without shipping the
//     whole reference table into the process.
//
// Normalization: table keys and query postcodes both go through
// Normalize (strip all whitespace, fold to upper case), so "so17 1bj"
// and "SO17 1BJ" hit the same row.
//
// Errors:
//
//   - ErrNotFound: the postcode has no row in the source. Enrich absorbs
//     this into Record.Found; direct Source users see the sentinel.
//   - ErrNoSource: no store location configured in the environment.
//   - ErrTable: the backing CSV table is malformed.
package postcode
