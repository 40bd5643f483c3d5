// SPDX-License-Identifier: MIT

package bloch

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gonum diagonalizes a Hermitian 2×2 matrix by factorizing its real-symmetric
// embedding with gonum's mat.EigenSym (LAPACK dsyev).
type Gonum struct{}

// Name returns SolverGonum.
func (Gonum) Name() string { return SolverGonum }

// Diagonalize returns the ascending eigenpairs of h.
// Errors: ErrNotHermitian, ErrEigenFailed (factorization reported failure).
func (Gonum) Diagonalize(h Matrix2) (Eigen, error) {
	if !h.IsHermitian(DefaultEpsilon) {
		return Eigen{}, ErrNotHermitian
	}

	s := embed(h)
	data := make([]float64, 0, embedDim*embedDim)
	for i := 0; i < embedDim; i++ {
		data = append(data, s[i][:]...)
	}

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(embedDim, data), true); !ok {
		return Eigen{}, fmt.Errorf("Gonum: %w", ErrEigenFailed)
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	order := ascending(vals)
	lowest := order[0]
	lower := fold([embedDim]float64{
		vecs.At(0, lowest), vecs.At(1, lowest), vecs.At(2, lowest), vecs.At(3, lowest),
	})

	return fromColumns(vals[lowest], vals[order[embedDim-1]], lower), nil
}
