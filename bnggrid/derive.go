package bnggrid

import "fmt"

// Derive2km returns the non-standard 2 km reference covering a 1 km
// square. 2 km squares merge two consecutive 1 km squares on each axis
// and keep the 1 km naming convention, anchored so that both the easting
// and northing values are always odd: each value rounds up to the next
// odd number (v + (v+1) mod 2).
//
// Should rounding carry an axis past 99, the reference moves into the
// neighbouring 100 km square on that axis: the value re-enters at the
// low edge and the letter pair advances north or east (wrapping through
// the 5x5 letter blocks, second letter first).
//
// The input reads letter, letter, two easting digits, two northing
// digits ("SU1234"); anything else returns ErrRef1km. Applying Derive2km
// to its own output is the identity, since the output is odd-anchored.
func Derive2km(ref1km string) (string, error) {
	if len(ref1km) != 6 {
		return "", fmt.Errorf("%w: %q", ErrRef1km, ref1km)
	}
	first, err := letterOffset(ref1km[0])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrRef1km, ref1km)
	}
	second, err := letterOffset(ref1km[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrRef1km, ref1km)
	}
	for _, d := range ref1km[2:] {
		if d < '0' || d > '9' {
			return "", fmt.Errorf("%w: %q", ErrRef1km, ref1km)
		}
	}
	e := 10*int(ref1km[2]-'0') + int(ref1km[3]-'0')
	n := 10*int(ref1km[4]-'0') + int(ref1km[5]-'0')

	// Anchor each axis on the next odd value.
	e += (e + 1) % 2
	n += (n + 1) % 2

	if e > 99 {
		e -= 100
		if first, second, err = eastwardPair(first, second); err != nil {
			return "", err
		}
	}
	if n > 99 {
		n -= 100
		if first, second, err = northwardPair(first, second); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%c%c%02d%02d", offsetLetter(first), offsetLetter(second), e, n), nil
}

// northwardPair moves a (first, second) letter-offset pair one 100 km
// square north. The second letter wraps from the top row of its block to
// the bottom row of the block above, advancing the first letter; at the
// scheme's own top edge there is nowhere to go.
func northwardPair(first, second int) (int, int, error) {
	if second >= letterSide {
		return first, second - letterSide, nil
	}
	if first < letterSide {
		return 0, 0, fmt.Errorf("%w: north of the lettering scheme", ErrLetterRange)
	}
	return first - letterSide, second + letterCells - letterSide, nil
}

// eastwardPair moves the pair one 100 km square east, wrapping the
// second letter from the east column of its block to the west column of
// the block to the east.
func eastwardPair(first, second int) (int, int, error) {
	if second%letterSide < letterSide-1 {
		return first, second + 1, nil
	}
	if first%letterSide == letterSide-1 {
		return 0, 0, fmt.Errorf("%w: east of the lettering scheme", ErrLetterRange)
	}
	return first + 1, second - (letterSide - 1), nil
}
