// SPDX-License-Identifier: MIT

package bloch

import (
	"math"

	"github.com/katalvlaran/wilsonloop/kgrid"
)

// QWZ evaluates the Qi-Wu-Zhang Bloch Hamiltonian at momentum k with mass M:
//
//	H = [[Mz, sin kx − i sin ky], [sin kx + i sin ky, −Mz]],  Mz = M + cos kx + cos ky
//
// Pure function: the result is rebuilt on every call and is Hermitian by
// construction. All real inputs are valid.
// Complexity: O(1).
func QWZ(k kgrid.Point, mass float64) Matrix2 {
	sx, sy := math.Sin(k.Kx), math.Sin(k.Ky)
	mz := complex(mass+math.Cos(k.Kx)+math.Cos(k.Ky), 0)

	return Matrix2{
		{mz, complex(sx, -sy)},
		{complex(sx, sy), -mz},
	}
}

// Gap returns the direct band gap 2·|d(k)| of the QWZ model at k, where
// d = (sin kx, sin ky, Mz) is the Bloch vector. It reaches zero somewhere in
// the zone only for the gap-closing masses M ∈ {−2, 0, 2}.
func Gap(k kgrid.Point, mass float64) float64 {
	mz := mass + math.Cos(k.Kx) + math.Cos(k.Ky)

	return 2 * math.Sqrt(math.Sin(k.Kx)*math.Sin(k.Kx)+math.Sin(k.Ky)*math.Sin(k.Ky)+mz*mz)
}
