package postcode

import "errors"

var (
	// ErrNotFound indicates the postcode has no row in the lookup table.
	ErrNotFound = errors.New("postcode: not found")
	// ErrNoSource indicates no lookup-table location is configured.
	ErrNoSource = errors.New("postcode: no source configured")
	// ErrTable indicates a malformed backing table.
	ErrTable = errors.New("postcode: malformed lookup table")
)
