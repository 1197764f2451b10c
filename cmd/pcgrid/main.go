// Command pcgrid enriches postcodes with their British National Grid
// references and writes the result as CSV on stdout.
//
// Usage:
//
//	pcgrid [flags] [postcode ...]
//
// Postcodes come from the arguments, or one per line on stdin when no
// arguments are given. The lookup table is located by -csv or -dsn,
// falling back to the PC2NG_PATH / PC2NG_PG_DSN environment variables
// (a .env file in the working directory is honoured).
//
// Flags:
//
//	-csv path   CSV lookup table
//	-dsn dsn    Postgres connection string for the pc2ng table
//	-2km        also derive the non-standard 2 km references
//	-cache n    front the source with an n-entry LRU (0 disables)
package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Bubo-AI/spatial-utilities/postcode"
)

func main() {
	csvPath := flag.String("csv", "", "CSV lookup table")
	dsn := flag.String("dsn", "", "Postgres connection string for the pc2ng table")
	with2km := flag.Bool("2km", false, "also derive 2 km references")
	cacheSize := flag.Int("cache", 0, "LRU cache size in entries (0 disables)")
	flag.Parse()

	if err := run(*csvPath, *dsn, *with2km, *cacheSize, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "pcgrid:", err)
		os.Exit(1)
	}
}

func run(csvPath, dsn string, with2km bool, cacheSize int, postcodes []string) error {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	src, err := openSource(csvPath, dsn)
	if err != nil {
		return err
	}
	if cacheSize > 0 {
		if src, err = postcode.NewCachedSource(src, cacheSize); err != nil {
			return err
		}
	}

	if len(postcodes) == 0 {
		if postcodes, err = readLines(os.Stdin); err != nil {
			return err
		}
	}

	records, err := postcode.Enrich(context.Background(), src, postcodes,
		postcode.Options{With2km: with2km})
	if err != nil {
		return err
	}
	return writeCSV(os.Stdout, records)
}

func openSource(csvPath, dsn string) (postcode.Source, error) {
	switch {
	case dsn != "":
		return postcode.OpenPostgres(dsn)
	case csvPath != "":
		return postcode.OpenCSV(csvPath), nil
	}
	return postcode.NewSourceFromEnv()
}

func readLines(f *os.File) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}

// writeCSV emits one row per record with a header built from the union
// of resolutions present, largest first.
func writeCSV(f *os.File, records []postcode.Record) error {
	seen := map[int]bool{}
	for _, rec := range records {
		for _, col := range rec.Columns {
			seen[col.ResolutionKm] = true
		}
	}
	kms := make([]int, 0, len(seen))
	for km := range seen {
		kms = append(kms, km)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(kms)))

	w := csv.NewWriter(f)
	header := []string{"postcode"}
	for _, km := range kms {
		header = append(header, strconv.Itoa(km)+"km_grid")
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{rec.Postcode}
		for _, km := range kms {
			row = append(row, rec.Ref(km))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
