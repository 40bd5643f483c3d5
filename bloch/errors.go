// SPDX-License-Identifier: MIT

package bloch

import "errors"

// Sentinel errors. Callers match them with errors.Is; wrapping adds an
// operation prefix only ("LowestBand: bloch: ...").
var (
	// ErrNotHermitian indicates the input deviates from H = H† beyond DefaultEpsilon.
	ErrNotHermitian = errors.New("bloch: matrix is not Hermitian within eps")

	// ErrEigenFailed indicates an iterative solver did not converge within its sweep budget.
	ErrEigenFailed = errors.New("bloch: eigen decomposition did not converge")

	// ErrUnknownSolver indicates a solver name outside SolverNames().
	ErrUnknownSolver = errors.New("bloch: unknown solver")
)
