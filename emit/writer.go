// SPDX-License-Identifier: MIT

package emit

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/wilsonloop/kgrid"
)

// Field layout of the text artifacts.
const (
	// Precision is the number of fractional digits; it covers the 17
	// significant digits needed to round-trip a float64.
	Precision = 17

	// PhaseWidth is the field width of a phase and of kx.
	PhaseWidth = 30

	// KyWidth is the field width of ky.
	KyWidth = 40
)

var (
	phaseFormat  = fmt.Sprintf("%%-%d.%df\n", PhaseWidth, Precision)
	kpointFormat = fmt.Sprintf("%%-%d.%df%%-%d.%df\n", PhaseWidth, Precision, KyWidth, Precision)
)

// WritePhases writes one line per sample of track, in order.
func WritePhases(w io.Writer, track []float64) error {
	bw := bufio.NewWriter(w)
	for n, phase := range track {
		if _, err := fmt.Fprintf(bw, phaseFormat, phase); err != nil {
			return fmt.Errorf("write phase %d: %w", n, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush phases: %w", err)
	}

	return nil
}

// WriteKpoints writes the Nk·Nk grid points in row-major order (n outer, m inner).
func WriteKpoints(w io.Writer, g *kgrid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	bw := bufio.NewWriter(w)
	for i, k := range g.Points() {
		if _, err := fmt.Fprintf(bw, kpointFormat, k.Kx, k.Ky); err != nil {
			return fmt.Errorf("write kpoint %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush kpoints: %w", err)
	}

	return nil
}
