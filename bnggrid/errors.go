package bnggrid

import "errors"

var (
	// ErrLetter indicates input that is not a single grid letter (A-Z, no 'I').
	ErrLetter = errors.New("bnggrid: not a grid letter")
	// ErrLetterRange indicates the requested neighbour lies outside the 5x5 letter scheme.
	ErrLetterRange = errors.New("bnggrid: neighbour outside the letter scheme")
	// ErrRef1km indicates a malformed 1 km reference (two letters + four digits).
	ErrRef1km = errors.New("bnggrid: invalid 1 km grid reference")
	// ErrRef5km indicates a malformed 5 km reference (two letters + two digits + quadrant pair).
	ErrRef5km = errors.New("bnggrid: invalid 5 km grid reference")
	// ErrIndex indicates a matrix access out of range.
	ErrIndex = errors.New("bnggrid: index out of range")
)
