// Package bnggrid builds the enumerable lattices of British National Grid
// reference labels and navigates between neighbouring cells.
//
// What:
//
//   - Letters: the 5x5 matrix of grid letters ('A' at the north-west,
//     'I' skipped), i.e. the 500 km squares.
//   - Matrix100km: the 25x25 matrix of two-letter 100 km squares, the
//     letter matrix composed with itself.
//   - Matrix5km: the 500x500 matrix of six-character 5 km references
//     (letters + easting digit + northing digit + quadrant pair).
//   - NorthNeighbourLetter / EastNeighbourLetter: single-letter moves on
//     the 5x5 scheme.
//   - Derive2km: the non-standard 2 km reference covering a 1 km square
//     (2 km squares anchor on odd 1 km coordinates).
//   - Locate5km / UKWindow: index math into the 5 km matrix and the
//     sub-matrix covering Great Britain between HL09NW and TW90SE.
//
// Why:
//
//   - Enumerating every reference at a resolution, e.g. to pre-compute
//     per-cell aggregates or to rasterize coverage maps.
//   - Deriving coarser or merged references (2 km) during postcode
//     enrichment without decoding to coordinates.
//
// All matrices are computed once on first use and are immutable
// afterwards; accessors never expose the backing storage for mutation.
// Rows grow southward and columns eastward, so index (0,0) is the
// scheme's north-west corner.
//
// Complexity:
//
//   - Letters / Matrix100km / Matrix5km: O(cells) on first call, O(1)
//     afterwards; Matrix5km holds 250,000 labels (a few MB).
//   - Neighbours, Derive2km, Locate5km: O(1).
//
// Errors:
//
//   - ErrLetter: input is not a single grid letter A-Z excluding 'I'.
//   - ErrLetterRange: the requested neighbour leaves the 5x5 scheme.
//   - ErrRef1km / ErrRef5km: malformed reference for the given operation.
//   - ErrIndex: matrix access out of range.
package bnggrid
