package postcode_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bubo-AI/spatial-utilities/postcode"
)

// writeTable drops a CSV lookup table into a temp dir and returns its path.
func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pc2ng.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleTable = `Postcode,Latitude,Longitude,100km_grid,50km_grid,20km_grid,10km_grid,5km_grid,1km_grid
SO17 1BJ,50.93,-1.39,SU,SUSW,SUSW4,SU41,SU41NW,SU4215
eh8 9yl,55.94,-3.18,NT,NTSE,NTSE2,NT27,NT27SE,NT2772
`

// TestCSVSource_Lookup loads the table lazily and serves normalized keys.
func TestCSVSource_Lookup(t *testing.T) {
	src := postcode.OpenCSV(writeTable(t, sampleTable))
	ctx := context.Background()

	ref, err := src.GridRef1km(ctx, "SO171BJ")
	require.NoError(t, err)
	assert.Equal(t, "SU4215", ref)

	// Table keys were normalized at load.
	ref, err = src.GridRef1km(ctx, "EH89YL")
	require.NoError(t, err)
	assert.Equal(t, "NT2772", ref)

	_, err = src.GridRef1km(ctx, "ZZ99ZZ")
	assert.ErrorIs(t, err, postcode.ErrNotFound)
}

// TestCSVSource_Columns serves the stored per-resolution columns and
// ignores non-grid columns.
func TestCSVSource_Columns(t *testing.T) {
	src := postcode.OpenCSV(writeTable(t, sampleTable))

	cols, err := src.Columns(context.Background(), "SO171BJ")
	require.NoError(t, err)
	assert.Equal(t, map[int]string{
		100: "SU",
		50:  "SUSW",
		20:  "SUSW4",
		10:  "SU41",
		5:   "SU41NW",
		1:   "SU4215",
	}, cols)
}

// TestCSVSource_EnrichStoredColumns routes stored 50/20 km columns
// through the batch join, which a bare Source cannot provide.
func TestCSVSource_EnrichStoredColumns(t *testing.T) {
	src := postcode.OpenCSV(writeTable(t, sampleTable))

	recs, err := postcode.Enrich(context.Background(), src,
		[]string{"so17 1bj"}, postcode.Options{With2km: true})
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, "SUSW", rec.Ref(50))
	assert.Equal(t, "SUSW4", rec.Ref(20))
	assert.Equal(t, "SU4315", rec.Ref(2))

	kms := make([]int, 0, len(rec.Columns))
	for _, c := range rec.Columns {
		kms = append(kms, c.ResolutionKm)
	}
	assert.Equal(t, []int{100, 50, 20, 10, 5, 2, 1}, kms)
}

// TestCSVSource_Malformed rejects tables without the required columns.
func TestCSVSource_Malformed(t *testing.T) {
	for name, content := range map[string]string{
		"no postcode column": "Zipcode,1km_grid\nSO171BJ,SU4215\n",
		"no 1km column":      "Postcode,100km_grid\nSO171BJ,SU\n",
		"bad grid column":    "Postcode,xxkm_grid,1km_grid\nSO171BJ,?,SU4215\n",
	} {
		src := postcode.OpenCSV(writeTable(t, content))
		_, err := src.GridRef1km(context.Background(), "SO171BJ")
		assert.ErrorIs(t, err, postcode.ErrTable, name)
	}
}

// TestCSVSource_MissingFile surfaces the open failure on first lookup.
func TestCSVSource_MissingFile(t *testing.T) {
	src := postcode.OpenCSV(filepath.Join(t.TempDir(), "nope.csv"))
	_, err := src.GridRef1km(context.Background(), "SO171BJ")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, postcode.ErrNotFound)
}
