package bngref

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Grammar: two letters (no 'I'), an even run of up to ten digits, then an
// optional N/S and E/W quadrant letter. Interior whitespace between the
// groups is tolerated; callers trim surrounding whitespace beforehand.
var refPattern = regexp.MustCompile(`^([A-HJ-Z])([A-HJ-Z])\s*((?:\d\d){0,5})\s*([NS])?([EW])?$`)

const (
	fullDigits = 5 // digit places per axis at full (1 m) precision

	cell500km = 500_000 // metres per first-letter cell side
	cell100km = 100_000 // metres per second-letter cell side
)

// Ref is a validated grid reference. The zero value is not meaningful;
// obtain a Ref through Parse. Refs are immutable.
type Ref struct {
	letters [2]byte
	east    string // easting digit group, may be empty
	north   string // northing digit group, same length as east
	quadNS  byte   // 'N', 'S', or 0 when absent
	quadEW  byte   // 'E', 'W', or 0 when absent
}

// Parse validates s against the grid-reference grammar (case-insensitive)
// and splits it into its letter, digit and quadrant parts.
// Returns ErrFormat when s does not match.
func Parse(s string) (Ref, error) {
	m := refPattern.FindStringSubmatch(strings.ToUpper(s))
	if m == nil {
		return Ref{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	half := len(m[3]) / 2
	r := Ref{
		letters: [2]byte{m[1][0], m[2][0]},
		east:    m[3][:half],
		north:   m[3][half:],
	}
	if m[4] != "" {
		r.quadNS = m[4][0]
	}
	if m[5] != "" {
		r.quadEW = m[5][0]
	}
	return r, nil
}

// String reassembles the canonical form of the reference.
func (r Ref) String() string {
	var b strings.Builder
	b.WriteByte(r.letters[0])
	b.WriteByte(r.letters[1])
	b.WriteString(r.east)
	b.WriteString(r.north)
	if r.quadNS != 0 {
		b.WriteByte(r.quadNS)
	}
	if r.quadEW != 0 {
		b.WriteByte(r.quadEW)
	}
	return b.String()
}

// Precision returns the side length, in metres, of the box r denotes:
// 10^(5-halfDigits), halved once when both quadrant letters are present.
func (r Ref) Precision() int {
	p := pow10(fullDigits - len(r.east))
	if r.quadNS != 0 && r.quadEW != 0 {
		p /= 2
	}
	return p
}

// SW returns the south-west anchor of the reference box.
//
// Each letter maps onto a 5x5 cell grid ('A' at the north-west, 'I'
// skipped); the first letter is then re-based so that cell "SV" sits at
// the origin. Digit groups scale up to 5 places; a quadrant letter shifts
// the anchor by one (possibly halved) precision step on its axis.
func (r Ref) SW() Coordinate {
	g1 := letterIndex(r.letters[0])
	g2 := letterIndex(r.letters[1])

	// Column/row of each letter cell; rows counted northward here.
	c1, r1 := g1%5, 4-g1/5
	c2, r2 := g2%5, 4-g2/5

	// Re-base the first letter so "SV" is the origin.
	c1 -= 2
	r1 -= 1

	scale := pow10(fullDigits - len(r.east))
	de, dn := 0, 0
	if r.east != "" {
		de = atoi(r.east) * scale
		dn = atoi(r.north) * scale
	}

	precision := r.Precision()
	if r.quadEW == 'E' {
		de += precision
	}
	if r.quadNS == 'N' {
		dn += precision
	}

	return Coordinate{
		Easting:  c1*cell500km + c2*cell100km + de,
		Northing: r1*cell500km + r2*cell100km + dn,
	}
}

// At resolves the given point of the reference box. SWNE is a box-shaped
// result and is served by Box instead; requesting it here (or any value
// outside the enum) returns ErrPoint.
func (r Ref) At(p Point) (Coordinate, error) {
	sw := r.SW()
	precision := r.Precision()
	switch p {
	case SW:
		return sw, nil
	case NW:
		return Coordinate{sw.Easting, sw.Northing + precision}, nil
	case SE:
		return Coordinate{sw.Easting + precision, sw.Northing}, nil
	case NE:
		return Coordinate{sw.Easting + precision, sw.Northing + precision}, nil
	case Mid:
		return Coordinate{sw.Easting + precision/2, sw.Northing + precision/2}, nil
	}
	return Coordinate{}, fmt.Errorf("%w: %v", ErrPoint, p)
}

// Box returns the full SW/NE box of the reference.
func (r Ref) Box() Box {
	sw := r.SW()
	precision := r.Precision()
	return Box{
		Min: sw,
		Max: Coordinate{sw.Easting + precision, sw.Northing + precision},
	}
}

// Decode parses s and resolves the point p of its box in one step.
// Returns ErrFormat for a malformed reference and ErrPoint for SWNE
// (use DecodeBox) or an out-of-enum selector.
func Decode(s string, p Point) (Coordinate, error) {
	r, err := Parse(s)
	if err != nil {
		return Coordinate{}, err
	}
	return r.At(p)
}

// DecodeBox parses s and returns its full SW/NE box.
func DecodeBox(s string) (Box, error) {
	r, err := Parse(s)
	if err != nil {
		return Box{}, err
	}
	return r.Box(), nil
}

// letterIndex compresses a grid letter to 0..24, closing the gap left by
// the unused letter 'I'. Input is guaranteed valid by the grammar.
func letterIndex(b byte) int {
	if b > 'I' {
		b--
	}
	return int(b - 'A')
}

// atoi converts a digit-only string already vetted by the grammar.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// pow10 returns 10^n for small non-negative n.
func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
