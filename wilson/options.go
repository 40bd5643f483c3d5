// SPDX-License-Identifier: MIT

package wilson

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wilsonloop/bloch"
	"github.com/katalvlaran/wilsonloop/kgrid"
)

// Defaults reproduce the reference run.
const (
	// DefaultBands is the number of bands of the QWZ model.
	DefaultBands = 2

	// DefaultSubspace is the dimension of the occupied subspace at half filling.
	DefaultSubspace = 1

	// DefaultNk is the grid resolution in both directions.
	DefaultNk = 100

	// DefaultSolver names the analytic 2×2 Hermitian solver.
	DefaultSolver = bloch.SolverClosedForm

	// DefaultCloseSeam keeps the seam step out of the Chern sum.
	DefaultCloseSeam = false
)

// Sentinel errors for invalid options and inputs.
var (
	// ErrUnsupportedBands indicates Bands != 2; only the two-band QWZ model is implemented.
	ErrUnsupportedBands = errors.New("wilson: only two-band Hamiltonians are supported")

	// ErrUnsupportedSubspace indicates Subspace != 1; the Wilson loop is a 1×1 scalar here.
	ErrUnsupportedSubspace = errors.New("wilson: only a one-dimensional occupied subspace is supported")

	// ErrNonFiniteMass indicates a NaN or ±Inf mass parameter.
	ErrNonFiniteMass = errors.New("wilson: mass must be finite")

	// ErrNilGrid indicates a nil *kgrid.Grid was passed.
	ErrNilGrid = errors.New("wilson: grid is nil")

	// ErrNilSolver indicates a nil bloch.Solver was passed.
	ErrNilSolver = errors.New("wilson: solver is nil")
)

// Options configures a Wilson-loop computation.
//
// Fields:
//   - Bands:     number of bands; must be 2.
//   - Subspace:  occupied-subspace dimension; must be 1.
//   - Nk:        grid resolution (loop index, cycle index and number of
//     Wilson-loop eigenvalues); must be ≥ 2.
//   - Solver:    bloch solver name ("closed", "jacobi", "gonum").
//   - CloseSeam: if true, Result.Chern uses ChernClosed instead of Chern.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Nk = 4 // small grid for tests
type Options struct {
	Bands     int
	Subspace  int
	Nk        int
	Solver    string
	CloseSeam bool
}

// DefaultOptions returns the reference configuration: two bands, one
// occupied band, Nk = 100, closed-form solver, open Chern sum.
func DefaultOptions() Options {
	return Options{
		Bands:     DefaultBands,
		Subspace:  DefaultSubspace,
		Nk:        DefaultNk,
		Solver:    DefaultSolver,
		CloseSeam: DefaultCloseSeam,
	}
}

// Validate checks o in a fixed order: bands, subspace, resolution, solver.
// The first violation is returned.
func (o Options) Validate() error {
	if o.Bands != DefaultBands {
		return fmt.Errorf("Options: bands=%d: %w", o.Bands, ErrUnsupportedBands)
	}
	if o.Subspace != DefaultSubspace {
		return fmt.Errorf("Options: subspace=%d: %w", o.Subspace, ErrUnsupportedSubspace)
	}
	if o.Nk < kgrid.MinSize {
		return fmt.Errorf("Options: nk=%d: %w", o.Nk, kgrid.ErrGridTooSmall)
	}
	if _, err := bloch.ParseSolver(o.Solver); err != nil {
		return fmt.Errorf("Options: %w", err)
	}

	return nil
}
