// SPDX-License-Identifier: MIT

package wilson

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Chern returns the winding of an unwrapped phase track divided by 2π:
//
//	C = Σ_{n=0}^{Nk−2} (track[n+1] − track[n]) / 2π
//
// The step from the last sample back to the first is not part of the sum,
// so on a finite grid the result sits slightly inside the integer it
// converges to. Tracks shorter than two samples yield 0.
func Chern(track []float64) float64 {
	if len(track) < 2 {
		return 0
	}
	steps := make([]float64, len(track)-1)
	floats.SubTo(steps, track[1:], track[:len(track)-1])

	return floats.Sum(steps) / (2 * math.Pi)
}

// ChernClosed returns Chern plus the seam step track[0] − track[Nk−1],
// reduced into [−π, π]. The sum telescopes to an integer multiple of 2π, so
// the result is an integer up to rounding for any resolution.
func ChernClosed(track []float64) float64 {
	if len(track) < 2 {
		return 0
	}
	seam := wrapStep(track[0] - track[len(track)-1])

	return Chern(track) + seam/(2*math.Pi)
}
