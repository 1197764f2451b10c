package bnggrid

import "sync"

// Matrix dimensions at each resolution. A 100 km square divides into a
// 10x10 grid of 10 km squares, each split into four 5 km quadrants, so a
// 100 km square spans 20x20 cells of the 5 km matrix.
const (
	side100km = letterSide * letterSide // 25: 100 km squares per scheme side
	side10km  = 10                      // 10 km squares per 100 km square side
	side5km   = side10km * 2            // 20: 5 km squares per 100 km square side
	sideFull  = side100km * side5km     // 500: 5 km squares per scheme side
)

// All matrices are pure, process-wide constants computed on first use.
var (
	lettersOnce sync.Once
	lettersMx   Matrix

	m100Once sync.Once
	m100Mx   Matrix

	m5Once sync.Once
	m5Mx   Matrix
)

// Letters returns the 5x5 matrix of grid letters: 'A' at the north-west
// through 'Z' at the south-east, skipping 'I'.
func Letters() Matrix {
	lettersOnce.Do(func() {
		cells := make([][]string, letterSide)
		for r := 0; r < letterSide; r++ {
			cells[r] = make([]string, letterSide)
			for c := 0; c < letterSide; c++ {
				cells[r][c] = string(offsetLetter(r*letterSide + c))
			}
		}
		lettersMx = newMatrix(cells)
	})
	return lettersMx
}

// Matrix100km returns the 25x25 matrix of two-letter 100 km squares.
// Each 5x5 super-cell corresponds to one first letter; positions within
// it to the second letter, so cell (r,c) reads
// letters[r/5][c/5] + letters[r%5][c%5].
func Matrix100km() Matrix {
	m100Once.Do(func() {
		cells := make([][]string, side100km)
		for r := 0; r < side100km; r++ {
			cells[r] = make([]string, side100km)
			for c := 0; c < side100km; c++ {
				first := offsetLetter((r / letterSide * letterSide) + c/letterSide)
				second := offsetLetter((r % letterSide * letterSide) + c%letterSide)
				cells[r][c] = string([]byte{first, second})
			}
		}
		m100Mx = newMatrix(cells)
	})
	return m100Mx
}

// Matrix5km returns the 500x500 matrix of six-character 5 km references.
// Each cell combines the 100 km two-letter prefix with the repeating
// 20x20 sub-pattern: easting digit (ascending west to east), northing
// digit (descending north to south), and the NW/NE/SW/SE quadrant pair.
// Cell (r,c) is consistent with Locate5km: Matrix5km().At(Locate5km(ref))
// yields ref back.
func Matrix5km() Matrix {
	m5Once.Do(func() {
		m100 := Matrix100km()
		cells := make([][]string, sideFull)
		for r := 0; r < sideFull; r++ {
			cells[r] = make([]string, sideFull)
			pr := r % side5km // row within the 100 km square
			for c := 0; c < sideFull; c++ {
				pc := c % side5km
				prefix, _ := m100.At(r/side5km, c/side5km)
				cells[r][c] = prefix + sub5km(pr, pc)
			}
		}
		m5Mx = newMatrix(cells)
	})
	return m5Mx
}

// sub5km renders the four-character tail of a 5 km reference from its
// position inside a 100 km square: easting digit, northing digit, then
// the quadrant letters picked by row/column parity.
func sub5km(pr, pc int) string {
	tail := [4]byte{
		'0' + byte(pc/2),             // easting tens digit, ascending
		'0' + byte(side10km-1-pr/2),  // northing tens digit, descending
		'N', 'W',
	}
	if pr%2 == 1 {
		tail[2] = 'S'
	}
	if pc%2 == 1 {
		tail[3] = 'E'
	}
	return string(tail[:])
}
