// SPDX-License-Identifier: MIT

// Package wilson computes the Wilson-loop spectrum of the occupied band of
// the QWZ model and extracts its Chern number.
//
// 🚀 What is a Wilson loop?
//
//	For a fixed loop index n the occupied projectors U(n, m) are sampled
//	around the closed cycle m = 0 … Nk−1 → 0 and their overlaps multiplied:
//
//	  W(n) = ⟨U₀|U₁⟩·⟨U₁|U₂⟩ ⋯ ⟨U_{Nk−1}|U₀⟩
//
//	Each projector's arbitrary phase enters once as a bra and once as a ket,
//	so only the closed product is gauge invariant. The phase of W(n), tracked
//	continuously across n, winds by 2π·C where C is the Chern number.
//
// ✨ Key features:
//   - Loop / Spectrum: one independent accumulation per loop index
//   - Phases / Unwrap: principal arguments, then a sequential 2π-jump removal
//   - Chern: winding over the open track n = 0 … Nk−1 (seam excluded)
//   - ChernClosed: opt-in winding that also includes the seam step, an exact integer
//   - Compute: the whole pipeline driven by Options
//
// ⚙️ Usage:
//
//	opts := wilson.DefaultOptions()
//	opts.Nk = 50
//	res, err := wilson.Compute(-1.0, opts)
//	if err != nil {
//	  // handle ErrUnsupportedBands, kgrid.ErrGridTooSmall, ...
//	}
//	fmt.Println(res.Chern) // ≈ −0.94 for Nk = 50
//
// Boundary cases:
//
//	At the gap-closing masses M ∈ {−2, 0, 2} the lower band is not separated
//	from the upper one, the projector is ill defined at the touching point and
//	the result does not converge with Nk. NearCritical detects this.
//
// Performance:
//
//   - Time:   O(Nk²) Hamiltonian evaluations and 2×2 eigensolves
//   - Memory: O(Nk²) for the grid, O(Nk) for spectrum and track
package wilson
