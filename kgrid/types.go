// SPDX-License-Identifier: MIT

package kgrid

import "errors"

// Sentinel errors for kgrid operations.
var (
	// ErrGridTooSmall indicates a resolution below MinSize; a single-point loop is degenerate.
	ErrGridTooSmall = errors.New("kgrid: resolution must be at least 2")
	// ErrOutOfRange indicates a loop or cycle index outside [0, Nk).
	ErrOutOfRange = errors.New("kgrid: index out of range")
)

// MinSize is the smallest resolution that yields a closed loop with a non-trivial link.
const MinSize = 2

// Point is a single momentum-space sample (kx, ky).
type Point struct {
	Kx, Ky float64
}

// Grid is an Nk×Nk row-major mesh of momentum points. It is immutable once built.
type Grid struct {
	nk     int
	points []Point
}
