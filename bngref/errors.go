package bngref

import "errors"

var (
	// ErrFormat indicates the input does not match the grid-reference grammar.
	ErrFormat = errors.New("bngref: invalid grid reference")
	// ErrPoint indicates an unrecognized corner/midpoint selector.
	ErrPoint = errors.New("bngref: invalid point selector")
	// ErrDigits indicates a digit count outside {0,2,4,6,8,10}.
	ErrDigits = errors.New("bngref: digit count must be even and at most 10")
	// ErrRange indicates a coordinate outside the lettered 25x25 scheme.
	ErrRange = errors.New("bngref: coordinate outside the National Grid lettering scheme")
)
