package bnggrid

import (
	"fmt"
	"sync"
)

// Great Britain fits inside the 5 km lattice between these two corner
// references: HL09NW at the north-west, TW90SE at the south-east.
const (
	ukNorthWest5km = "HL09NW"
	ukSouthEast5km = "TW90SE"
)

// Locate5km returns the position of a 5 km reference within the full
// 500x500 matrix. The reference reads letter, letter, easting digit,
// northing digit, N/S quadrant, E/W quadrant. Returns ErrRef5km on any
// other shape (including the unused letter 'I').
func Locate5km(ref string) (Index, error) {
	if len(ref) != 6 {
		return Index{}, fmt.Errorf("%w: %q", ErrRef5km, ref)
	}
	first, err := letterOffset(ref[0])
	if err != nil {
		return Index{}, fmt.Errorf("%w: %q", ErrRef5km, ref)
	}
	second, err := letterOffset(ref[1])
	if err != nil {
		return Index{}, fmt.Errorf("%w: %q", ErrRef5km, ref)
	}
	de, dn := int(ref[2]-'0'), int(ref[3]-'0')
	if de < 0 || de > 9 || dn < 0 || dn > 9 {
		return Index{}, fmt.Errorf("%w: %q", ErrRef5km, ref)
	}
	if (ref[4] != 'N' && ref[4] != 'S') || (ref[5] != 'W' && ref[5] != 'E') {
		return Index{}, fmt.Errorf("%w: %q", ErrRef5km, ref)
	}

	row := first/letterSide*side5km*letterSide +
		second/letterSide*side5km +
		(side10km-1-dn)*2
	if ref[4] == 'S' {
		row++
	}
	col := first%letterSide*side5km*letterSide +
		second%letterSide*side5km +
		de*2
	if ref[5] == 'E' {
		col++
	}
	return Index{Row: row, Col: col}, nil
}

var (
	ukOnce sync.Once
	ukWin  Window
)

// UKWindow returns the sub-matrix of Matrix5km covering Great Britain,
// bounded inclusively by HL09NW and TW90SE. Computed once; the returned
// window shares the cached backing storage.
func UKWindow() Window {
	ukOnce.Do(func() {
		nw, err := Locate5km(ukNorthWest5km)
		if err != nil {
			panic(err) // corner constants are known-valid
		}
		se, err := Locate5km(ukSouthEast5km)
		if err != nil {
			panic(err)
		}
		full := Matrix5km()
		cells := make([][]string, se.Row-nw.Row+1)
		for r := range cells {
			cells[r] = full.cells[nw.Row+r][nw.Col : se.Col+1]
		}
		ukWin = Window{Matrix: newMatrix(cells), Origin: nw}
	})
	return ukWin
}
