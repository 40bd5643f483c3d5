// SPDX-License-Identifier: MIT

// Package config loads run settings from a TOML file.
//
// Every key is optional; missing keys keep their defaults:
//
//	nk = 100
//	solver = "closed"
//	close_seam = false
//
//	[output]
//	dir = "."
//	phases = "Wilson_Loop_Phases"
//	kpoints = "Kpoints"
//	summary = ""
//
// Unknown keys are rejected so that typos do not silently fall back to defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/wilsonloop/emit"
	"github.com/katalvlaran/wilsonloop/wilson"
)

// ErrUnknownKey indicates the file contains keys outside the documented set.
var ErrUnknownKey = errors.New("config: unknown key")

// Config mirrors the TOML file.
type Config struct {
	Nk        int    `toml:"nk"`
	Solver    string `toml:"solver"`
	CloseSeam bool   `toml:"close_seam"`
	Output    Output `toml:"output"`
}

// Output selects where artifacts are written.
type Output struct {
	Dir     string `toml:"dir"`
	Phases  string `toml:"phases"`
	Kpoints string `toml:"kpoints"`
	Summary string `toml:"summary"`
}

// Default returns the reference settings.
func Default() Config {
	opts := wilson.DefaultOptions()

	return Config{
		Nk:        opts.Nk,
		Solver:    opts.Solver,
		CloseSeam: opts.CloseSeam,
		Output: Output{
			Dir:     ".",
			Phases:  emit.DefaultPhasesFile,
			Kpoints: emit.DefaultKpointsFile,
		},
	}
}

// Load decodes the TOML file at path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return Config{}, fmt.Errorf("load %s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Options converts c into wilson options; Bands and Subspace keep their defaults.
func (c Config) Options() wilson.Options {
	opts := wilson.DefaultOptions()
	opts.Nk = c.Nk
	opts.Solver = c.Solver
	opts.CloseSeam = c.CloseSeam

	return opts
}

// Emitter builds the artifact writer described by c.Output.
func (c Config) Emitter() *emit.Emitter {
	e := emit.NewEmitter(c.Output.Dir)
	e.PhasesFile = c.Output.Phases
	e.KpointsFile = c.Output.Kpoints
	e.SummaryFile = c.Output.Summary

	return e
}
