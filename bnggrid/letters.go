package bnggrid

import "fmt"

// The lettering scheme is a 5x5 block, 'A' at the north-west, read
// row-major towards the south-east, with 'I' left out. Letters therefore
// compress onto indices 0..24.
const (
	letterSide  = 5
	letterCells = letterSide * letterSide
	skipped     = 'I'
)

// letterOffset compresses a grid letter onto 0..24.
// Returns ErrLetter for anything but an uppercase grid letter.
func letterOffset(b byte) (int, error) {
	if b < 'A' || b > 'Z' || b == skipped {
		return 0, fmt.Errorf("%w: %q", ErrLetter, string(b))
	}
	if b > skipped {
		b--
	}
	return int(b - 'A'), nil
}

// offsetLetter is the inverse of letterOffset for offsets 0..24.
func offsetLetter(off int) byte {
	b := byte('A' + off)
	if b >= skipped {
		b++
	}
	return b
}

// NorthNeighbourLetter returns the letter one row to the north of b in
// the 5x5 scheme (letters increase southward, so the compressed index
// drops by five, re-opening the gap at 'I' as needed).
//
// Returns ErrLetter for non-letter input and ErrLetterRange when b sits
// in the scheme's top row (A-E): the neighbour would belong to the block
// above, which a single letter cannot express. Callers merging cells
// across 100 km boundaries handle that wrap themselves (see Derive2km).
func NorthNeighbourLetter(b byte) (byte, error) {
	off, err := letterOffset(b)
	if err != nil {
		return 0, err
	}
	if off < letterSide {
		return 0, fmt.Errorf("%w: no letter north of %q", ErrLetterRange, string(b))
	}
	return offsetLetter(off - letterSide), nil
}

// EastNeighbourLetter returns the letter one column to the east of b.
// Returns ErrLetter for non-letter input and ErrLetterRange when b sits
// in the scheme's east column (E, K, P, U, Z).
func EastNeighbourLetter(b byte) (byte, error) {
	off, err := letterOffset(b)
	if err != nil {
		return 0, err
	}
	if off%letterSide == letterSide-1 {
		return 0, fmt.Errorf("%w: no letter east of %q", ErrLetterRange, string(b))
	}
	return offsetLetter(off + 1), nil
}
