// SPDX-License-Identifier: MIT

package emit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/wilsonloop/wilson"
)

// Default artifact names.
const (
	DefaultPhasesFile  = "Wilson_Loop_Phases"
	DefaultKpointsFile = "Kpoints"
)

// Sentinel errors.
var (
	// ErrNilResult indicates Emit was called without a result.
	ErrNilResult = errors.New("emit: result is nil")

	// ErrNilGrid indicates a nil grid was passed to WriteKpoints.
	ErrNilGrid = errors.New("emit: grid is nil")
)

// Emitter writes the artifacts of a run into Dir.
// An empty SummaryFile disables the YAML summary.
type Emitter struct {
	Dir         string
	PhasesFile  string
	KpointsFile string
	SummaryFile string
	Now         func() time.Time // clock for the summary; time.Now when nil
}

// NewEmitter returns an Emitter writing the default artifact names into dir.
func NewEmitter(dir string) *Emitter {
	return &Emitter{
		Dir:         dir,
		PhasesFile:  DefaultPhasesFile,
		KpointsFile: DefaultKpointsFile,
	}
}

// Paths returns the paths Emit writes to, in write order.
func (e *Emitter) Paths() []string {
	paths := []string{e.path(e.PhasesFile), e.path(e.KpointsFile)}
	if e.SummaryFile != "" {
		paths = append(paths, e.path(e.SummaryFile))
	}

	return paths
}

// Emit writes the phase track, the k-point grid and, if configured, the
// summary. Dir is created when missing.
func (e *Emitter) Emit(res *wilson.Result) error {
	if res == nil {
		return ErrNilResult
	}
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", e.Dir, err)
	}

	if err := writeFile(e.path(e.PhasesFile), func(w io.Writer) error {
		return WritePhases(w, res.Track)
	}); err != nil {
		return err
	}
	if err := writeFile(e.path(e.KpointsFile), func(w io.Writer) error {
		return WriteKpoints(w, res.Grid)
	}); err != nil {
		return err
	}
	if e.SummaryFile == "" {
		return nil
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	s := NewSummary(res, now())
	s.Phases = e.PhasesFile
	s.Kpoints = e.KpointsFile

	return writeFile(e.path(e.SummaryFile), func(w io.Writer) error {
		return WriteSummary(w, s)
	})
}

func (e *Emitter) path(name string) string {
	return filepath.Join(e.Dir, name)
}

// writeFile creates path, runs fill on it and reports the first of the fill
// and close errors.
func writeFile(path string, fill func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err = fill(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
