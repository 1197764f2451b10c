// Package spatialutilities converts between British National Grid (BNG)
// alphanumeric grid references and metre-scale easting/northing
// coordinates, and enriches postcode datasets with grid references at
// every useful resolution.
//
// What's inside:
//
//	bngref/   — the reference codec: parse, decode to any corner or the
//	            midpoint of a reference box, and encode coordinates back
//	            into references at a chosen precision.
//	bnggrid/  — the lattice builder: the 5x5 letter matrix, the 25x25
//	            100 km matrix, the 500x500 5 km matrix, letter
//	            neighbours, non-standard 2 km derivation, and the
//	            UK-covering 5 km window.
//	postcode/ — the enrichment layer: lookup-table sources (CSV,
//	            Postgres, LRU-cached), postcode normalization, and the
//	            batch join producing per-resolution reference columns.
//	cmd/      — bng2en (reference to coordinates) and pcgrid (batch
//	            postcode enrichment).
//
// Everything in bngref and bnggrid is a pure, deterministic function of
// its inputs: no I/O, no shared mutable state, safe for concurrent use.
// The only I/O lives behind the postcode.Source interface.
//
// Quick example:
//
//	c, err := bngref.Decode("NZ20NE", bngref.SW)
//	// c.Easting == 425000, c.Northing == 505000
//
// The grid itself: the first letter of a reference names a 500 km
// square, the second a 100 km square inside it ('I' is never used), the
// digit groups narrow the square down to as little as 1 m, and an
// optional N/S + E/W suffix pair selects a quadrant. Coordinates count
// metres east and north of the SW corner of square "SV".
package spatialutilities
