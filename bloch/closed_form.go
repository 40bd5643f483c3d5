// SPDX-License-Identifier: MIT

package bloch

import (
	"math"
	"math/cmplx"
)

// ClosedForm diagonalizes a Hermitian 2×2 matrix analytically.
// It is the default solver. The same input always yields the same
// eigenvector phase.
type ClosedForm struct{}

// Name returns SolverClosedForm.
func (ClosedForm) Name() string { return SolverClosedForm }

// Diagonalize returns the ascending eigenpairs of h.
//
// Implementation:
//   - Stage 1: Validate Hermiticity within DefaultEpsilon.
//   - Stage 2: λ± = (a+d)/2 ± sqrt(((a−d)/2)² + |b|²) for h = [[a, b], [b*, d]].
//   - Stage 3: The lower eigenvector solves either row of (h − λ−)v = 0:
//     v = (b, λ−−a) or v = (λ−−d, b*). The longer candidate is normalized,
//     which keeps the result well conditioned when b → 0.
//   - Stage 4: The upper eigenvector is the orthogonal complement of the lower one.
//
// Degenerate input (b = 0, a = d) returns the canonical basis.
//
// Errors:
//   - ErrNotHermitian.
//
// Complexity:
//   - Time O(1), Space O(1).
func (ClosedForm) Diagonalize(h Matrix2) (Eigen, error) {
	if !h.IsHermitian(DefaultEpsilon) {
		return Eigen{}, ErrNotHermitian
	}

	a, d := real(h[0][0]), real(h[1][1])
	b := h[0][1]
	mean := (a + d) / 2
	r := math.Hypot((a-d)/2, cmplx.Abs(b))
	lo, hi := mean-r, mean+r
	if r == 0 {
		return fromColumns(lo, hi, Vector2{1, 0}), nil
	}

	v := Vector2{b, complex(lo-a, 0)}
	alt := Vector2{complex(lo-d, 0), cmplx.Conj(b)}
	if alt.Norm() > v.Norm() {
		v = alt
	}

	return fromColumns(lo, hi, v.Normalize()), nil
}
