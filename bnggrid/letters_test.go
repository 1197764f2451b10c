package bnggrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bubo-AI/spatial-utilities/bnggrid"
)

// TestLetters pins the 5x5 letter matrix: row-major from 'A' at the
// north-west, 'I' absent.
func TestLetters(t *testing.T) {
	m := bnggrid.Letters()
	require.Equal(t, 5, m.Rows())
	require.Equal(t, 5, m.Cols())

	rows := [5][5]string{
		{"A", "B", "C", "D", "E"},
		{"F", "G", "H", "J", "K"},
		{"L", "M", "N", "O", "P"},
		{"Q", "R", "S", "T", "U"},
		{"V", "W", "X", "Y", "Z"},
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			got, err := m.At(r, c)
			require.NoError(t, err)
			assert.Equal(t, rows[r][c], got, "(%d,%d)", r, c)
			assert.NotEqual(t, "I", got, "the letter 'I' is never used")
		}
	}
}

// TestNeighbourLetters cross-checks both neighbour functions against the
// letter matrix itself: the north neighbour of the letter at (r,c) is
// the letter at (r-1,c), the east neighbour the letter at (r,c+1).
func TestNeighbourLetters(t *testing.T) {
	m := bnggrid.Letters()

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			letter, err := m.At(r, c)
			require.NoError(t, err)
			b := letter[0]

			north, err := bnggrid.NorthNeighbourLetter(b)
			if r == 0 {
				assert.ErrorIs(t, err, bnggrid.ErrLetterRange, "north of top-row %q", letter)
			} else {
				require.NoError(t, err, "north of %q", letter)
				want, _ := m.At(r-1, c)
				assert.Equal(t, want, string(north), "north of %q", letter)
			}

			east, err := bnggrid.EastNeighbourLetter(b)
			if c == 4 {
				assert.ErrorIs(t, err, bnggrid.ErrLetterRange, "east of east-column %q", letter)
			} else {
				require.NoError(t, err, "east of %q", letter)
				want, _ := m.At(r, c+1)
				assert.Equal(t, want, string(east), "east of %q", letter)
			}
		}
	}
}

// TestNeighbourLetters_SkipAdjustment spells out the cases around the
// missing 'I': the skip only shows up when source and neighbour fall on
// opposite sides of the gap.
func TestNeighbourLetters_SkipAdjustment(t *testing.T) {
	for _, tc := range []struct {
		from, want byte
		north      bool
	}{
		{'N', 'H', true},  // crosses the gap: raw distance six
		{'O', 'J', true},  // both after 'I': raw distance five
		{'F', 'A', true},  // both before 'I'
		{'Q', 'L', true},  // well after the gap
		{'H', 'J', false}, // east across the gap skips 'I' itself
		{'N', 'O', false}, // plain eastward step
	} {
		var got byte
		var err error
		if tc.north {
			got, err = bnggrid.NorthNeighbourLetter(tc.from)
		} else {
			got, err = bnggrid.EastNeighbourLetter(tc.from)
		}
		require.NoError(t, err, "from %q", string(tc.from))
		assert.Equal(t, string(tc.want), string(got), "from %q north=%v", string(tc.from), tc.north)
	}
}

// TestNeighbourLetters_Commute verifies north-then-east equals
// east-then-north away from the scheme edges.
func TestNeighbourLetters_Commute(t *testing.T) {
	m := bnggrid.Letters()
	for r := 1; r < 5; r++ {
		for c := 0; c < 4; c++ {
			letter, err := m.At(r, c)
			require.NoError(t, err)

			n, err := bnggrid.NorthNeighbourLetter(letter[0])
			require.NoError(t, err)
			ne1, err := bnggrid.EastNeighbourLetter(n)
			require.NoError(t, err)

			e, err := bnggrid.EastNeighbourLetter(letter[0])
			require.NoError(t, err)
			ne2, err := bnggrid.NorthNeighbourLetter(e)
			require.NoError(t, err)

			assert.Equal(t, ne1, ne2, "from %q", letter)
		}
	}
}

// TestNeighbourLetters_Invalid rejects everything that is not a single
// uppercase grid letter.
func TestNeighbourLetters_Invalid(t *testing.T) {
	for _, b := range []byte{'I', 'a', '1', ' ', 0} {
		_, err := bnggrid.NorthNeighbourLetter(b)
		assert.ErrorIs(t, err, bnggrid.ErrLetter, "north of %q", string(b))
		_, err = bnggrid.EastNeighbourLetter(b)
		assert.ErrorIs(t, err, bnggrid.ErrLetter, "east of %q", string(b))
	}
}
