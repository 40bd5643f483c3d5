// Package wilsonloop computes the Wilson-loop spectrum and the Chern number
// of the lower band of the Qi-Wu-Zhang two-band model on a discretized
// Brillouin zone.
//
// What is in the box?
//
//	kgrid/   the Nk×Nk momentum grid over [0, 2π)²
//	bloch/   the QWZ Bloch Hamiltonian and interchangeable 2×2 eigensolvers
//	         (closed form, cyclic Jacobi, gonum EigenSym)
//	wilson/  Wilson loops along ky, phase unwrapping, the Chern integral
//	         and the Compute pipeline
//	emit/    the Wilson_Loop_Phases and Kpoints text files plus an optional
//	         YAML run summary
//	config/  TOML run settings
//
// The command lives in cmd/wilsonloop:
//
//	wilsonloop -1.0
//	Wilson loop spectrum in the Qi-Wu-Zhang model.
//	Mass parameter: -1
//	Chern number  =>   -0.968656
//
// The Chern number is the winding of the unwrapped phase track divided by
// 2π. It tends to -1 for -2 < M < 0, +1 for 0 < M < 2 and 0 for |M| > 2;
// pass --close-seam to include the wrap-around step and get an exact integer
// on any grid.
//
//	go get github.com/katalvlaran/wilsonloop
package wilsonloop
