// SPDX-License-Identifier: MIT

package wilson

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wilsonloop/bloch"
	"github.com/katalvlaran/wilsonloop/kgrid"
)

// CriticalMasses are the masses at which the QWZ gap closes.
var CriticalMasses = []float64{-2, 0, 2}

// Compute runs the full pipeline for mass M:
// grid → Hamiltonian → projector → Wilson loops → phase track → Chern number.
//
// Errors:
//   - ErrNonFiniteMass for NaN/±Inf mass.
//   - Options.Validate errors (ErrUnsupportedBands, ErrUnsupportedSubspace,
//     kgrid.ErrGridTooSmall, bloch.ErrUnknownSolver).
//   - Solver errors (bloch.ErrEigenFailed for iterative solvers).
func Compute(mass float64, opts Options) (*Result, error) {
	if math.IsNaN(mass) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("Compute: %w", ErrNonFiniteMass)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	solver, err := bloch.ParseSolver(opts.Solver)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	grid, err := kgrid.New(opts.Nk)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	spectrum, err := Spectrum(grid, mass, solver)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	phases := Phases(spectrum)
	track := make([]float64, len(phases))
	copy(track, phases)
	Unwrap(track)

	res := &Result{
		Mass:      mass,
		Options:   opts,
		Grid:      grid,
		Spectrum:  spectrum,
		Phases:    phases,
		Track:     track,
		OpenChern: Chern(track),
	}
	res.Chern = res.OpenChern
	if opts.CloseSeam {
		res.Chern = ChernClosed(track)
	}

	return res, nil
}

// NearCritical reports whether mass lies within tol of a gap-closing mass,
// where the Chern number is not expected to converge.
func NearCritical(mass, tol float64) bool {
	for _, mc := range CriticalMasses {
		if math.Abs(mass-mc) <= tol {
			return true
		}
	}

	return false
}
