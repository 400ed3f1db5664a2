package pathfind

import "errors"

// Sentinel errors returned by NewPathfinder during setup. Per-search failures
// (a source or target on the border, an unreachable target) are reported as
// bool returns from FloodFill/FindPath/GetPath rather than errors — see doc.go.
var (
	// ErrEmptyCostField indicates Width or Height was not positive.
	ErrEmptyCostField = errors.New("pathfind: width and height must be positive")
	// ErrDimensionMismatch indicates the cost buffer's length does not equal Width*Height.
	ErrDimensionMismatch = errors.New("pathfind: cost field length does not match width*height")
)
