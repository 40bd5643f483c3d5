// SPDX-License-Identifier: MIT

package emit

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wilsonloop/wilson"
)

// Summary is the YAML record of one run.
type Summary struct {
	RunID      string    `yaml:"run_id"`
	Created    time.Time `yaml:"created"`
	Model      string    `yaml:"model"`
	Mass       float64   `yaml:"mass"`
	Nk         int       `yaml:"nk"`
	Solver     string    `yaml:"solver"`
	CloseSeam  bool      `yaml:"close_seam"`
	Chern      float64   `yaml:"chern"`
	OpenChern  float64   `yaml:"open_chern"`
	MinModulus float64   `yaml:"min_modulus"`
	Phases     string    `yaml:"phases_file"`
	Kpoints    string    `yaml:"kpoints_file"`
}

// modelName identifies the Hamiltonian in summaries.
const modelName = "qwz"

// NewSummary builds a Summary for res with a fresh run id and the given timestamp.
func NewSummary(res *wilson.Result, created time.Time) Summary {
	return Summary{
		RunID:      uuid.NewString(),
		Created:    created.UTC(),
		Model:      modelName,
		Mass:       res.Mass,
		Nk:         res.Options.Nk,
		Solver:     res.Options.Solver,
		CloseSeam:  res.Options.CloseSeam,
		Chern:      res.Chern,
		OpenChern:  res.OpenChern,
		MinModulus: res.MinModulus(),
	}
}

// WriteSummary encodes s as YAML to w.
func WriteSummary(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	return nil
}

// ReadSummary decodes a YAML summary from r.
func ReadSummary(r io.Reader) (Summary, error) {
	var s Summary
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Summary{}, fmt.Errorf("decode summary: %w", err)
	}

	return s, nil
}
