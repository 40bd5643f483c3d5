// SPDX-License-Identifier: MIT

package kgrid

import (
	"fmt"
	"math"
)

// New builds the Nk×Nk momentum grid with grid(n, m) = (2π·n/Nk, 2π·m/Nk).
// Returns ErrGridTooSmall if nk < MinSize.
// Deterministic: two calls with the same nk produce bit-identical points.
// Complexity: O(Nk²) time and memory.
func New(nk int) (*Grid, error) {
	if nk < MinSize {
		return nil, fmt.Errorf("New(%d): %w", nk, ErrGridTooSmall)
	}
	points := make([]Point, nk*nk)
	for n := 0; n < nk; n++ {
		kx := 2.0 * math.Pi * float64(n) / float64(nk)
		for m := 0; m < nk; m++ {
			points[n*nk+m] = Point{
				Kx: kx,
				Ky: 2.0 * math.Pi * float64(m) / float64(nk),
			}
		}
	}

	return &Grid{nk: nk, points: points}, nil
}

// Size returns the resolution Nk (the grid holds Nk×Nk points).
func (g *Grid) Size() int {
	return g.nk
}

// InBounds reports whether (n, m) addresses a grid point.
// Complexity: O(1).
func (g *Grid) InBounds(n, m int) bool {
	return n >= 0 && n < g.nk && m >= 0 && m < g.nk
}

// At returns the stored point at loop index n and cycle index m.
// Returns ErrOutOfRange for indices outside [0, Nk).
func (g *Grid) At(n, m int) (Point, error) {
	if !g.InBounds(n, m) {
		return Point{}, fmt.Errorf("At(%d,%d): %w", n, m, ErrOutOfRange)
	}

	return g.points[n*g.nk+m], nil
}

// Row returns a copy of the Nk points of loop index n, ordered by cycle index.
// Returns ErrOutOfRange if n is outside [0, Nk).
func (g *Grid) Row(n int) ([]Point, error) {
	if n < 0 || n >= g.nk {
		return nil, fmt.Errorf("Row(%d): %w", n, ErrOutOfRange)
	}
	row := make([]Point, g.nk)
	copy(row, g.points[n*g.nk:(n+1)*g.nk])

	return row, nil
}

// Points returns a copy of all points in row-major order (n outer, m inner).
func (g *Grid) Points() []Point {
	out := make([]Point, len(g.points))
	copy(out, g.points)

	return out
}

// Equal reports whether g and other hold bit-identical points.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.nk != other.nk {
		return false
	}
	for i := range g.points {
		if math.Float64bits(g.points[i].Kx) != math.Float64bits(other.points[i].Kx) ||
			math.Float64bits(g.points[i].Ky) != math.Float64bits(other.points[i].Ky) {
			return false
		}
	}

	return true
}
