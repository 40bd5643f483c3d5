// SPDX-License-Identifier: MIT

// Package kgrid samples the square Brillouin zone [0, 2π)² on a regular
// Nk×Nk mesh of momentum points.
//
// The grid is indexed (n, m): n is the loop index, held fixed while a
// Wilson loop is evaluated, and m is the cycle index swept around the closed
// loop 0…Nk−1 and back to 0.
//
//	grid(n, m) = (2π·n/Nk, 2π·m/Nk)
//
// A Grid is immutable once built. At(n, 0) always returns the same stored
// value, so a loop closed back onto its starting point sees exactly the
// momentum it started from.
//
// ⚙️ Usage:
//
//	g, err := kgrid.New(100)
//	if err != nil {
//	  // handle ErrGridTooSmall
//	}
//	k, _ := g.At(3, 0)
//
// Complexity: O(Nk²) time and memory to build; O(1) per lookup.
package kgrid
