// SPDX-License-Identifier: MIT

package wilson

import (
	"math"
	"math/cmplx"
)

// Phases returns the principal argument of every Wilson-loop value, in (−π, π].
// A zero value (possible on very coarse grids) has argument 0; a negative
// real value with a −0 imaginary part maps to π, not −π.
func Phases(spectrum []complex128) []float64 {
	out := make([]float64, len(spectrum))
	for n, w := range spectrum {
		p := cmplx.Phase(w)
		if p == -math.Pi {
			p = math.Pi
		}
		out[n] = p
	}

	return out
}

// Unwrap removes 2π jumps from track in place, left to right:
//
//	delta = track[n] − track[n−1]   (track[n−1] already unwrapped)
//	if delta > π:  delta −= 2π
//	if delta < −π: delta += 2π
//	track[n] = track[n−1] + delta
//
// The correction is applied as often as needed (an IEEE remainder), so the
// |delta| ≤ π guarantee also holds once the track has wound past ±3π; for
// smaller excursions it is exactly the single-step rule above.
// track[0] is kept. The seam between the last and first sample is not
// examined; an empty or single-element track is left untouched.
func Unwrap(track []float64) {
	for n := 1; n < len(track); n++ {
		track[n] = track[n-1] + wrapStep(track[n]-track[n-1])
	}
}

// wrapStep reduces delta into [−π, π]; ±π itself is kept.
func wrapStep(delta float64) float64 {
	return math.Remainder(delta, 2*math.Pi)
}

// MaxStep returns the largest |track[n+1] − track[n]|; 0 for fewer than two samples.
// For a track produced by Unwrap from principal arguments it never exceeds π.
func MaxStep(track []float64) float64 {
	var worst float64
	for n := 1; n < len(track); n++ {
		worst = math.Max(worst, math.Abs(track[n]-track[n-1]))
	}

	return worst
}
