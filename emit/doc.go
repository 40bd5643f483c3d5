// SPDX-License-Identifier: MIT

// Package emit writes the artifacts of a Wilson-loop run.
//
// Two plain-text files are always produced:
//
//	Wilson_Loop_Phases : Nk lines, one unwrapped phase per loop index n
//	Kpoints            : Nk·Nk lines, (kx, ky) for every grid point, n outer, m inner
//
// Numbers are fixed-point with 17 fractional digits, left-justified in a
// fixed-width field (30 columns; ky in Kpoints uses 40). An optional YAML
// summary records the run parameters and the Chern number.
package emit
