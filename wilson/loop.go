// SPDX-License-Identifier: MIT

package wilson

import (
	"fmt"

	"github.com/katalvlaran/wilsonloop/bloch"
	"github.com/katalvlaran/wilsonloop/kgrid"
)

// Loop computes the Wilson loop of the occupied band for loop index n.
//
// Algorithm Outline:
//  1. U₀ ← lowest-band eigenvector at grid(n, 0); W ← 1.
//  2. For m = 1..Nk−1: Uₘ ← lowest-band eigenvector at grid(n, m);
//     W ← W·⟨U_{m−1}|Uₘ⟩.
//  3. Close the loop: re-evaluate the projector at the stored point grid(n, 0)
//     and multiply by ⟨U_{Nk−1}|U₀⟩.
//
// No state is shared between loop indices. Intermediate projectors never
// leave this function; only the gauge-invariant closed product is returned.
// Its modulus is ≤ 1 and approaches 1 as Nk grows.
//
// Errors:
//   - ErrNilGrid, ErrNilSolver, kgrid.ErrOutOfRange, solver errors.
//
// Complexity: O(Nk) eigensolves.
func Loop(g *kgrid.Grid, n int, mass float64, s bloch.Solver) (complex128, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if s == nil {
		return 0, ErrNilSolver
	}
	row, err := g.Row(n)
	if err != nil {
		return 0, fmt.Errorf("Loop: %w", err)
	}

	prev, err := project(s, row[0], mass)
	if err != nil {
		return 0, fmt.Errorf("Loop(n=%d, m=0): %w", n, err)
	}
	w := complex(1, 0)
	for m := 1; m < len(row); m++ {
		u, err := project(s, row[m], mass)
		if err != nil {
			return 0, fmt.Errorf("Loop(n=%d, m=%d): %w", n, m, err)
		}
		w *= prev.Inner(u)
		prev = u
	}

	// link (Nk−1) → 0 on the same stored point as the start
	closing, err := project(s, row[0], mass)
	if err != nil {
		return 0, fmt.Errorf("Loop(n=%d, closing): %w", n, err)
	}
	w *= prev.Inner(closing)

	return w, nil
}

// Spectrum evaluates Loop independently for every loop index n = 0..Nk−1.
// The result has length Nk and is ordered by n.
func Spectrum(g *kgrid.Grid, mass float64, s bloch.Solver) ([]complex128, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	out := make([]complex128, g.Size())
	for n := range out {
		w, err := Loop(g, n, mass, s)
		if err != nil {
			return nil, err
		}
		out[n] = w
	}

	return out, nil
}

// project returns the occupied-band projector of the QWZ Hamiltonian at k.
func project(s bloch.Solver, k kgrid.Point, mass float64) (bloch.Vector2, error) {
	return bloch.LowestBand(s, bloch.QWZ(k, mass))
}
