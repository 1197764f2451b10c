// File: bngref/bench_test.go
package bngref_test

import (
	"testing"

	"github.com/Bubo-AI/spatial-utilities/bngref"
)

// BenchmarkDecode measures a full parse+resolve of a quadrant reference.
func BenchmarkDecode(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := bngref.Decode("NZ20NE", bngref.SW); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEncode measures the inverse at 1 km precision.
func BenchmarkEncode(b *testing.B) {
	c := bngref.Coordinate{Easting: 432_198, Northing: 521_576}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := bngref.Encode(c, 4); err != nil {
			b.Fatal(err)
		}
	}
}
