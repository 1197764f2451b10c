// Command bng2en converts a British National Grid reference to easting
// and northing coordinates.
//
// Usage:
//
//	bng2en <grid_ref> [point]
//
// point selects which point of the reference box to print: SW (default),
// NW, NE, SE, MID, or SWNE for the full box. Output is comma-separated
// metres on stdout; the exit status is 2 on a malformed invocation and
// 1 on an invalid reference or point.
//
// Example:
//
//	$ bng2en NZ20NE SW
//	425000, 505000
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Bubo-AI/spatial-utilities/bngref"
)

func main() {
	args := os.Args[1:]
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: bng2en <grid_ref> [point]")
		os.Exit(2)
	}
	gridRef := strings.ToUpper(strings.TrimSpace(args[0]))
	pointArg := "SW"
	if len(args) == 2 {
		pointArg = strings.ToUpper(strings.TrimSpace(args[1]))
	}

	point, err := bngref.ParsePoint(pointArg)
	if err != nil {
		fatal(err)
	}

	var values []int
	if point == bngref.SWNE {
		box, err := bngref.DecodeBox(gridRef)
		if err != nil {
			fatal(err)
		}
		values = []int{box.Min.Easting, box.Min.Northing, box.Max.Easting, box.Max.Northing}
	} else {
		c, err := bngref.Decode(gridRef, point)
		if err != nil {
			fatal(err)
		}
		values = []int{c.Easting, c.Northing}
	}

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	fmt.Println(strings.Join(parts, ", "))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "bng2en:", err)
	os.Exit(1)
}
