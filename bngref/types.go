// Package bngref defines the value types shared by the codec:
// points of interest on a reference box, coordinates, and boxes.
package bngref

import (
	"strings"

	"github.com/paulmach/orb"
)

// Point selects which point of a reference's bounding box Decode resolves.
//
//   - SW, NW, NE, SE — the four corners.
//   - Mid            — the centre (integer metres, floor of the half-box).
//   - SWNE           — the whole box; served by DecodeBox rather than Decode.
type Point int

const (
	// SW is the south-west corner, the anchor of every reference box.
	SW Point = iota
	// NW is the north-west corner.
	NW
	// NE is the north-east corner.
	NE
	// SE is the south-east corner.
	SE
	// Mid is the box centre, rounded down to whole metres.
	Mid
	// SWNE denotes the full box (both SW and NE corners).
	SWNE
)

// pointNames maps the canonical string form of each selector.
var pointNames = map[string]Point{
	"SW":   SW,
	"NW":   NW,
	"NE":   NE,
	"SE":   SE,
	"MID":  Mid,
	"SWNE": SWNE,
}

// ParsePoint resolves a selector string ("SW", "NW", "NE", "SE", "MID",
// "SWNE"; case-insensitive) to a Point. Returns ErrPoint for anything else.
func ParsePoint(s string) (Point, error) {
	p, ok := pointNames[strings.ToUpper(s)]
	if !ok {
		return SW, ErrPoint
	}
	return p, nil
}

// String returns the canonical selector form, e.g. "MID".
func (p Point) String() string {
	switch p {
	case SW:
		return "SW"
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SE:
		return "SE"
	case Mid:
		return "MID"
	case SWNE:
		return "SWNE"
	}
	return "INVALID"
}

// Coordinate is an easting/northing pair in metres relative to the SW
// corner of grid cell "SV" (the National Grid false origin).
type Coordinate struct {
	Easting  int
	Northing int
}

// Point returns the coordinate as a planar orb.Point (X=easting, Y=northing).
func (c Coordinate) Point() orb.Point {
	return orb.Point{float64(c.Easting), float64(c.Northing)}
}

// Box is the axis-aligned square a grid reference denotes.
// Min is the SW corner, Max the NE corner; Max-Min equals the precision.
type Box struct {
	Min Coordinate
	Max Coordinate
}

// Bound returns the box as an orb.Bound for planar-geometry consumers.
func (b Box) Bound() orb.Bound {
	return orb.Bound{Min: b.Min.Point(), Max: b.Max.Point()}
}
