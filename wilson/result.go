// SPDX-License-Identifier: MIT

package wilson

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/wilsonloop/kgrid"
)

// Result is the outcome of Compute.
type Result struct {
	Mass      float64
	Options   Options
	Grid      *kgrid.Grid
	Spectrum  []complex128 // W(n), n = 0..Nk−1
	Phases    []float64    // principal arguments of Spectrum
	Track     []float64    // Phases after Unwrap
	Chern     float64      // Chern or ChernClosed per Options.CloseSeam
	OpenChern float64      // always the open-track sum
}

// MinModulus returns the smallest |W(n)|; 0 for an empty spectrum.
// It measures how far the discrete overlap product is from unitary.
func (r *Result) MinModulus() float64 {
	if len(r.Spectrum) == 0 {
		return 0
	}
	lowest := math.Inf(1)
	for _, w := range r.Spectrum {
		lowest = math.Min(lowest, cmplx.Abs(w))
	}

	return lowest
}
