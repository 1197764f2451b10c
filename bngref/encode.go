package bngref

import (
	"fmt"
)

// Scheme extent relative to the SV origin: the first letter's column spans
// [-2,2] cells of 500 km and its row spans [-1,3].
const (
	minEasting  = -2 * cell500km
	maxEasting  = 3 * cell500km
	minNorthing = -1 * cell500km
	maxNorthing = 4 * cell500km
)

// Encode returns the grid reference whose box contains c, carrying the
// given total digit count (0, 2, 4, 6, 8 or 10 — both axes together).
// It is the inverse of Decode at full precision:
// Decode(Encode(c, 10), SW) == c for any in-scheme coordinate.
//
// Encode never emits quadrant letters; halved-precision references decode
// to coordinates that full-digit references represent exactly.
//
// Returns ErrDigits for an invalid digit count and ErrRange when c lies
// outside the lettered scheme.
func Encode(c Coordinate, digits int) (string, error) {
	if digits < 0 || digits > 2*fullDigits || digits%2 != 0 {
		return "", fmt.Errorf("%w: %d", ErrDigits, digits)
	}
	if c.Easting < minEasting || c.Easting >= maxEasting ||
		c.Northing < minNorthing || c.Northing >= maxNorthing {
		return "", fmt.Errorf("%w: (%d, %d)", ErrRange, c.Easting, c.Northing)
	}

	// Shift to the scheme's own SW corner so all arithmetic is non-negative.
	e := c.Easting - minEasting
	n := c.Northing - minNorthing

	c1, c2, de := e/cell500km, e%cell500km/cell100km, e%cell100km
	y1, y2, dn := n/cell500km, n%cell500km/cell100km, n%cell100km

	// Rows count southward in the letter grid; the northing axis counts
	// northward, hence the flip. The first letter's shifted column already
	// matches the un-rebased grid ("SV" offset folded into minEasting).
	l1 := indexLetter((4-y1)*5 + c1)
	l2 := indexLetter((4-y2)*5 + c2)

	half := digits / 2
	if half == 0 {
		return fmt.Sprintf("%c%c", l1, l2), nil
	}
	scale := pow10(fullDigits - half)
	return fmt.Sprintf("%c%c%0*d%0*d", l1, l2, half, de/scale, half, dn/scale), nil
}

// indexLetter is the inverse of letterIndex: 0..24 to a grid letter,
// reopening the gap at 'I'.
func indexLetter(i int) byte {
	b := byte('A' + i)
	if b >= 'I' {
		b++
	}
	return b
}
