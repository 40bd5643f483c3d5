// SPDX-License-Identifier: MIT

// Package bloch builds the Qi-Wu-Zhang (QWZ) Bloch Hamiltonian and projects
// it onto its occupied (lower) band.
//
// 🚀 What is here?
//
//	The QWZ model is the simplest two-band Chern insulator on a square lattice:
//
//	  H(k) = [[ Mz,                  sin kx − i·sin ky ],
//	          [ sin kx + i·sin ky,   −Mz               ]],  Mz = M + cos kx + cos ky
//
//	At half filling the lower band is occupied; its eigenvector is the
//	occupied-subspace projector U(k) consumed by the Wilson-loop package.
//
// ✨ Key features:
//   - QWZ: pure Hamiltonian evaluator, Hermitian by construction
//   - Solver: "diagonalize a Hermitian 2×2" capability with three backends:
//     ClosedForm (analytic, default), Jacobi (cyclic rotations on the real
//     4×4 embedding) and Gonum (LAPACK-backed mat.EigenSym on the same embedding)
//   - LowestBand: eigenvector of the lowest eigenvalue, unit norm
//
// Gauge:
//
//	Every eigenvector is defined only up to an overall phase e^{iφ}. Solvers
//	make no promise about that phase; only gauge-invariant products such as a
//	closed Wilson loop may be compared across solvers.
//
// ⚙️ Usage:
//
//	h := bloch.QWZ(kgrid.Point{Kx: 0.3, Ky: 1.2}, -1.0)
//	u, err := bloch.LowestBand(bloch.ClosedForm{}, h)
//
// Eigenvalues are always returned in ascending order.
package bloch
