// SPDX-License-Identifier: MIT

package bloch

import (
	"fmt"
	"sort"
)

// Solver names accepted by ParseSolver.
const (
	SolverClosedForm = "closed"
	SolverJacobi     = "jacobi"
	SolverGonum      = "gonum"
)

// Solver diagonalizes a Hermitian 2×2 matrix.
//
// Contract:
//   - Values are returned in ascending order, so index 0 always selects the
//     same physical (lower) band at every momentum.
//   - Vectors are orthonormal columns; their overall phase is unspecified.
//   - Non-Hermitian input yields ErrNotHermitian.
type Solver interface {
	Name() string
	Diagonalize(h Matrix2) (Eigen, error)
}

// SolverNames returns the accepted solver names in sorted order.
func SolverNames() []string {
	names := []string{SolverClosedForm, SolverJacobi, SolverGonum}
	sort.Strings(names)

	return names
}

// ParseSolver maps a solver name to its default-configured implementation.
// Returns ErrUnknownSolver for any other name.
func ParseSolver(name string) (Solver, error) {
	switch name {
	case SolverClosedForm:
		return ClosedForm{}, nil
	case SolverJacobi:
		return DefaultJacobi(), nil
	case SolverGonum:
		return Gonum{}, nil
	default:
		return nil, fmt.Errorf("ParseSolver(%q): %w", name, ErrUnknownSolver)
	}
}

// LowestBand diagonalizes h with s and returns the unit eigenvector of the
// lowest eigenvalue, i.e. the occupied-band projector of a half-filled
// two-band insulator.
//
// Errors from s are wrapped as "LowestBand: <cause>".
func LowestBand(s Solver, h Matrix2) (Vector2, error) {
	e, err := s.Diagonalize(h)
	if err != nil {
		return Vector2{}, fmt.Errorf("LowestBand: %w", err)
	}

	return e.Vector(0), nil
}
