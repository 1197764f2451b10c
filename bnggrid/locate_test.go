package bnggrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bubo-AI/spatial-utilities/bnggrid"
)

// TestLocate5km pins the index arithmetic for the UK corner references
// and a mid-country square.
func TestLocate5km(t *testing.T) {
	for ref, want := range map[string]bnggrid.Index{
		"HL09NW": {Row: 140, Col: 200},
		"TW90SE": {Row: 399, Col: 339},
		"SU13NE": {Row: 372, Col: 283},
		"AA09NW": {Row: 0, Col: 0},
		"ZZ90SE": {Row: 499, Col: 499},
	} {
		got, err := bnggrid.Locate5km(ref)
		require.NoError(t, err, "ref %q", ref)
		assert.Equal(t, want, got, "ref %q", ref)
	}
}

// TestLocate5km_Invalid rejects malformed 5 km references.
func TestLocate5km_Invalid(t *testing.T) {
	for _, ref := range []string{
		"",
		"SU13N",    // missing E/W quadrant
		"SU13NEX",  // too long
		"IU13NE",   // unused letter
		"SUA3NE",   // non-digit easting
		"SU13XW",   // bad N/S quadrant
		"SU13NX",   // bad E/W quadrant
		"su13ne",   // lower case is not tolerated here
	} {
		_, err := bnggrid.Locate5km(ref)
		assert.ErrorIs(t, err, bnggrid.ErrRef5km, "ref %q", ref)
	}
}

// TestUKWindow checks the window span against the corner indices and the
// corner labels themselves.
func TestUKWindow(t *testing.T) {
	w := bnggrid.UKWindow()

	nw, err := bnggrid.Locate5km("HL09NW")
	require.NoError(t, err)
	se, err := bnggrid.Locate5km("TW90SE")
	require.NoError(t, err)

	assert.Equal(t, se.Row-nw.Row+1, w.Matrix.Rows(), "row span")
	assert.Equal(t, se.Col-nw.Col+1, w.Matrix.Cols(), "column span")
	assert.Equal(t, nw, w.Origin)

	assert.Equal(t, "HL09NW", at(t, w.Matrix, 0, 0))
	assert.Equal(t, "TW90SE", at(t, w.Matrix, w.Matrix.Rows()-1, w.Matrix.Cols()-1))
}

// TestWindow_Locate maps an absolute reference to window coordinates and
// rejects references outside the window.
func TestWindow_Locate(t *testing.T) {
	w := bnggrid.UKWindow()

	idx, err := w.Locate("SU13NE")
	require.NoError(t, err)
	assert.Equal(t, bnggrid.Index{Row: 232, Col: 83}, idx)
	assert.Equal(t, "SU13NE", at(t, w.Matrix, idx.Row, idx.Col))

	_, err = w.Locate("AA09NW") // north-west of Great Britain's extent
	assert.ErrorIs(t, err, bnggrid.ErrIndex)

	_, err = w.Locate("bogus!")
	assert.ErrorIs(t, err, bnggrid.ErrRef5km)
}
