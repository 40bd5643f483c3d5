// SPDX-License-Identifier: MIT

package bloch

import (
	"math"
	"math/cmplx"
)

// DefaultEpsilon is the tolerance used by Hermiticity checks.
const DefaultEpsilon = 1e-12

// Matrix2 is a 2×2 complex matrix, indexed [row][col].
type Matrix2 [2][2]complex128

// Vector2 is a 2×1 complex column.
type Vector2 [2]complex128

// Eigen holds a Hermitian eigendecomposition.
// Values are ascending; Vectors holds the matching orthonormal eigenvectors as columns.
type Eigen struct {
	Values  [2]float64
	Vectors Matrix2
}

// Vector returns the eigenvector of Values[j].
func (e Eigen) Vector(j int) Vector2 {
	return e.Vectors.Column(j)
}

// IsHermitian reports whether h equals its adjoint within eps:
// real diagonal and h[0][1] == conj(h[1][0]).
func (h Matrix2) IsHermitian(eps float64) bool {
	if math.Abs(imag(h[0][0])) > eps || math.Abs(imag(h[1][1])) > eps {
		return false
	}

	return cmplx.Abs(h[0][1]-cmplx.Conj(h[1][0])) <= eps
}

// Column returns column j of h.
func (h Matrix2) Column(j int) Vector2 {
	return Vector2{h[0][j], h[1][j]}
}

// MulVec returns h·v.
func (h Matrix2) MulVec(v Vector2) Vector2 {
	return Vector2{
		h[0][0]*v[0] + h[0][1]*v[1],
		h[1][0]*v[0] + h[1][1]*v[1],
	}
}

// Inner returns the overlap ⟨v|w⟩ = v†·w (v is conjugated).
func (v Vector2) Inner(w Vector2) complex128 {
	return cmplx.Conj(v[0])*w[0] + cmplx.Conj(v[1])*w[1]
}

// Norm returns the Euclidean norm ‖v‖.
func (v Vector2) Norm() float64 {
	return math.Hypot(cmplx.Abs(v[0]), cmplx.Abs(v[1]))
}

// Normalize returns v/‖v‖. The zero vector is returned unchanged.
func (v Vector2) Normalize() Vector2 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	s := complex(1/n, 0)

	return Vector2{v[0] * s, v[1] * s}
}

// complement returns the unit vector orthogonal to the unit vector v in C².
// For a 2×2 Hermitian matrix it is the eigenvector of the other eigenvalue.
func complement(v Vector2) Vector2 {
	return Vector2{-cmplx.Conj(v[1]), cmplx.Conj(v[0])}
}

// fromColumns assembles an Eigen from the lower eigenvector; the upper one is its complement.
func fromColumns(lo, hi float64, u Vector2) Eigen {
	w := complement(u)

	return Eigen{
		Values: [2]float64{lo, hi},
		Vectors: Matrix2{
			{u[0], w[0]},
			{u[1], w[1]},
		},
	}
}
