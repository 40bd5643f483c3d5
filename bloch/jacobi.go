// SPDX-License-Identifier: MIT

package bloch

import (
	"fmt"
	"math"
	"sort"
)

// Jacobi defaults.
const (
	// DefaultJacobiTol is the relative off-diagonal threshold for convergence.
	DefaultJacobiTol = 1e-14

	// DefaultJacobiSweeps caps the number of full cyclic sweeps.
	DefaultJacobiSweeps = 50
)

// embedDim is the size of the real-symmetric embedding of a 2×2 Hermitian matrix.
const embedDim = 4

// Jacobi diagonalizes a Hermitian 2×2 matrix through its real-symmetric
// embedding S = [[Re H, −Im H], [Im H, Re H]] using cyclic Jacobi rotations.
// Every eigenvalue of H appears twice in S; an eigenvector (x; y) of S folds
// back to u = x + i·y.
type Jacobi struct {
	Tol       float64 // relative off-diagonal threshold
	MaxSweeps int     // sweep budget before ErrEigenFailed
}

// DefaultJacobi returns a Jacobi solver with DefaultJacobiTol and DefaultJacobiSweeps.
func DefaultJacobi() Jacobi {
	return Jacobi{Tol: DefaultJacobiTol, MaxSweeps: DefaultJacobiSweeps}
}

// Name returns SolverJacobi.
func (Jacobi) Name() string { return SolverJacobi }

// Diagonalize returns the ascending eigenpairs of h.
//
// Implementation:
//   - Stage 1: Validate Hermiticity; build the 4×4 embedding.
//   - Stage 2: Run cyclic Jacobi sweeps until the off-diagonal norm drops
//     below Tol·‖S‖F (or Tol when S = 0).
//   - Stage 3: Sort eigenvalues ascending; fold the eigenvector of the
//     smallest one back into C². The upper eigenvector is its complement.
//
// Errors:
//   - ErrNotHermitian, ErrEigenFailed.
//
// Complexity:
//   - Time O(MaxSweeps·4³) worst case, Space O(1).
func (j Jacobi) Diagonalize(h Matrix2) (Eigen, error) {
	// Stage 1: Validate input
	if !h.IsHermitian(DefaultEpsilon) {
		return Eigen{}, ErrNotHermitian
	}
	s := embed(h)

	// Stage 2: Execute Jacobi rotations
	vals, vecs, err := jacobiEigen(s, j.Tol, j.MaxSweeps)
	if err != nil {
		return Eigen{}, fmt.Errorf("Jacobi: %w", err)
	}

	// Stage 3: Order and fold
	order := ascending(vals[:])
	lower := fold([embedDim]float64{
		vecs[0][order[0]], vecs[1][order[0]], vecs[2][order[0]], vecs[3][order[0]],
	})

	return fromColumns(vals[order[0]], vals[order[embedDim-1]], lower), nil
}

// embed returns the real-symmetric embedding [[A, −B], [B, A]] of h = A + iB.
func embed(h Matrix2) [embedDim][embedDim]float64 {
	var s [embedDim][embedDim]float64
	for i := 0; i < 2; i++ {
		for k := 0; k < 2; k++ {
			re, im := real(h[i][k]), imag(h[i][k])
			s[i][k] = re
			s[i+2][k+2] = re
			s[i][k+2] = -im
			s[i+2][k] = im
		}
	}

	return s
}

// fold maps an eigenvector (x0, x1, y0, y1) of the embedding to u = x + i·y, unit norm.
func fold(col [embedDim]float64) Vector2 {
	return Vector2{complex(col[0], col[2]), complex(col[1], col[3])}.Normalize()
}

// ascending returns the indices of vals sorted by value, ties kept in index order.
func ascending(vals []float64) []int {
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })

	return order
}

// jacobiEigen diagonalizes the symmetric matrix a in place and returns its
// eigenvalues (unsorted) and the accumulated rotation matrix whose columns
// are the matching eigenvectors.
func jacobiEigen(a [embedDim][embedDim]float64, tol float64, maxSweeps int) ([embedDim]float64, [embedDim][embedDim]float64, error) {
	var (
		v       [embedDim][embedDim]float64 // accumulated rotations
		vals    [embedDim]float64
		i, k    int
		p, q    int
		sweep   int
		scale   float64 // Frobenius norm of the input
		off     float64 // off-diagonal norm
		theta   float64
		t, c, s float64
	)
	for i = 0; i < embedDim; i++ {
		v[i][i] = 1.0
		for k = 0; k < embedDim; k++ {
			scale += a[i][k] * a[i][k]
		}
	}
	scale = math.Sqrt(scale)
	if scale == 0 {
		scale = 1
	}

	for sweep = 0; sweep <= maxSweeps; sweep++ {
		off = 0
		for p = 0; p < embedDim; p++ {
			for q = p + 1; q < embedDim; q++ {
				off += 2 * a[p][q] * a[p][q]
			}
		}
		if math.Sqrt(off) <= tol*scale {
			for i = 0; i < embedDim; i++ {
				vals[i] = a[i][i] // diagonal elements are eigenvalues
			}

			return vals, v, nil
		}
		if sweep == maxSweeps {
			break
		}

		for p = 0; p < embedDim-1; p++ {
			for q = p + 1; q < embedDim; q++ {
				if a[p][q] == 0 {
					continue
				}
				// rotation angle: cot 2φ = (a_qq − a_pp) / (2·a_pq)
				theta = (a[q][q] - a[p][p]) / (2 * a[p][q])
				t = math.Copysign(1.0, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				// A ← A·J
				for k = 0; k < embedDim; k++ {
					akp, akq := a[k][p], a[k][q]
					a[k][p] = c*akp - s*akq
					a[k][q] = s*akp + c*akq
				}
				// A ← Jᵀ·A
				for k = 0; k < embedDim; k++ {
					apk, aqk := a[p][k], a[q][k]
					a[p][k] = c*apk - s*aqk
					a[q][k] = s*apk + c*aqk
				}
				// V ← V·J
				for k = 0; k < embedDim; k++ {
					vkp, vkq := v[k][p], v[k][q]
					v[k][p] = c*vkp - s*vkq
					v[k][q] = s*vkp + c*vkq
				}
			}
		}
	}

	return vals, v, ErrEigenFailed
}
