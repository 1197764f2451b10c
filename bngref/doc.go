// Package bngref converts British National Grid (BNG) alphanumeric grid
// references to and from metre-scale easting/northing coordinates.
//
// What:
//
//   - Parse validates a reference against the BNG grammar: two letters
//     (A–Z excluding 'I'), zero to ten digits forming two equal-length
//     easting/northing groups, and an optional N/S + E/W quadrant pair.
//   - Decode resolves a reference to the coordinate of a chosen point of
//     its bounding box (SW corner by default); DecodeBox returns the full
//     SW/NE box.
//   - Encode is the inverse: it produces the reference whose box contains
//     a given coordinate at a requested digit precision.
//
// Coordinate frame:
//
//   - Coordinates are metres relative to the SW corner of grid cell "SV",
//     the conventional false origin of the National Grid. The first letter
//     selects a 500 km cell, the second a 100 km cell nested inside it.
//   - Digit groups refine the cell: 0, 2, 4, 6, 8 or 10 digits give a box
//     of 100 km, 10 km, 1 km, 100 m, 10 m or 1 m per side. A full quadrant
//     pair (both N/S and E/W letters) halves the box once more.
//
// Why:
//
//   - Joining datasets keyed by grid references with datasets keyed by
//     coordinates (and vice versa) without a projection library.
//   - Feeding planar-geometry pipelines: Box.Bound exposes a decoded cell
//     as an orb.Bound.
//
// Complexity: all operations are O(1) pure functions of their inputs.
//
// Errors:
//
//   - ErrFormat: the string does not match the reference grammar.
//   - ErrPoint: unrecognized corner/midpoint selector.
//   - ErrDigits: Encode given an odd or out-of-range digit count.
//   - ErrRange: Encode given a coordinate outside the lettered scheme.
package bngref
