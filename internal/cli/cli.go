// SPDX-License-Identifier: MIT

// Package cli implements the wilsonloop command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wilsonloop/config"
	"github.com/katalvlaran/wilsonloop/internal/buildinfo"
	"github.com/katalvlaran/wilsonloop/wilson"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the command name used in usage and version output.
	appName = "wilsonloop"

	// banner is the first line written to stdout on every run.
	banner = "Wilson loop spectrum in the Qi-Wu-Zhang model."

	// criticalTolerance is the distance from a gap-closing mass that triggers a warning.
	criticalTolerance = 1e-3
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	// ErrUsage indicates the wrong number of positional arguments.
	ErrUsage = errors.New("cli: exactly one argument, the mass parameter M, is required")

	// ErrInvalidMass indicates M is not a finite real number.
	ErrInvalidMass = errors.New("cli: mass must be a finite real number")
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds the writers and logger shared by the root command.
type CLI struct {
	Logger *log.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a CLI that echoes results to stdout and logs to stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		Stdout: stdout,
		Stderr: stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// runFlags holds the raw flag values of one invocation.
type runFlags struct {
	nk         int
	solver     string
	closeSeam  bool
	out        string
	summary    string
	configPath string
	verbose    bool
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	var f runFlags
	defaults := config.Default()

	root := &cobra.Command{
		Use:   appName + " [flags] <M>",
		Short: "Wilson-loop spectrum and Chern number of the Qi-Wu-Zhang model",
		Long: `wilsonloop diagonalizes the Qi-Wu-Zhang two-band Hamiltonian on an Nk x Nk
Brillouin-zone grid, multiplies lowest-band overlaps along ky to build one
Wilson loop per kx, and integrates the winding of the unwrapped phases into
the Chern number of the lower band.

The phase track is written to Wilson_Loop_Phases and the grid to Kpoints.`,
		Example:       "  wilsonloop -1.0\n  wilsonloop --nk 200 --close-seam -- -1.5",
		Version:       buildinfo.Version,
		Args:          exactlyOneArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if f.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args[0], &f)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)

	flags := root.Flags()
	flags.IntVar(&f.nk, "nk", defaults.Nk, "grid points per Brillouin-zone direction")
	flags.StringVar(&f.solver, "solver", defaults.Solver, "eigensolver: closed, jacobi or gonum")
	flags.BoolVar(&f.closeSeam, "close-seam", defaults.CloseSeam, "include the wrap-around step in the Chern sum")
	flags.StringVar(&f.out, "out", defaults.Output.Dir, "directory for output files")
	flags.StringVar(&f.summary, "summary", defaults.Output.Summary, "write a YAML run summary to this file inside --out")
	flags.StringVar(&f.configPath, "config", "", "TOML configuration file")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

// Execute runs the root command with args, excluding the program name.
// Negative masses such as "-1.0" are accepted without a "--" separator.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(massArgs(root, args))

	return root.ExecuteContext(ctx)
}

func exactlyOneArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return fmt.Errorf("%w (%v)", ErrUsage, err)
	}

	return nil
}

// =============================================================================
// Run
// =============================================================================

func (c *CLI) run(cmd *cobra.Command, arg string, f *runFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	mass, err := parseMass(arg)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	opts := cfg.Options()
	if err = opts.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, banner)
	fmt.Fprintf(out, "Mass parameter: %s\n", strconv.FormatFloat(mass, 'g', 6, 64))

	logger.Debug("Configuration", "nk", opts.Nk, "solver", opts.Solver, "close_seam", opts.CloseSeam, "out", cfg.Output.Dir)
	if wilson.NearCritical(mass, criticalTolerance) {
		logger.Warn("Mass is at a gap-closing point; the Chern number is ill-defined here",
			"mass", mass, "critical", wilson.CriticalMasses)
	}

	prog := newProgress(logger)
	res, err := wilson.Compute(mass, opts)
	if err != nil {
		return err
	}
	prog.done("Computed Wilson loops", "nk", opts.Nk, "min_modulus", res.MinModulus(), "max_step", wilson.MaxStep(res.Track))

	if err = ctx.Err(); err != nil {
		return err
	}

	prog = newProgress(logger)
	emitter := cfg.Emitter()
	if err = emitter.Emit(res); err != nil {
		return err
	}
	prog.done("Wrote results", "files", strings.Join(emitter.Paths(), ", "))

	fmt.Fprintf(out, "Chern number  =>   %s\n", strconv.FormatFloat(res.Chern, 'g', 6, 64))

	return nil
}

// parseMass converts the positional argument into a finite mass.
func parseMass(arg string) (float64, error) {
	mass, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMass, err)
	}
	if math.IsNaN(mass) || math.IsInf(mass, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMass, arg)
	}

	return mass, nil
}

// resolveConfig layers explicitly set flags over the config file over defaults.
func resolveConfig(cmd *cobra.Command, f *runFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("nk") {
		cfg.Nk = f.nk
	}
	if flags.Changed("solver") {
		cfg.Solver = f.solver
	}
	if flags.Changed("close-seam") {
		cfg.CloseSeam = f.closeSeam
	}
	if flags.Changed("out") {
		cfg.Output.Dir = f.out
	}
	if flags.Changed("summary") {
		cfg.Output.Summary = f.summary
	}

	return cfg, nil
}

// =============================================================================
// Argument normalization
// =============================================================================

// massArgs moves negative-number tokens behind a "--" separator so that
// pflag does not read them as shorthand flags. Values of flags that take
// an argument are left in place.
func massArgs(cmd *cobra.Command, args []string) []string {
	out := make([]string, 0, len(args)+1)
	var numbers []string

	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			out = append(out, "--")
			out = append(out, numbers...)
			return append(out, args[i+1:]...)
		}
		if isNegativeNumber(a) {
			numbers = append(numbers, a)
			continue
		}
		out = append(out, a)
		if takesValue(cmd, a) && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	if len(numbers) == 0 {
		return out
	}
	out = append(out, "--")

	return append(out, numbers...)
}

func isNegativeNumber(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(a, 64)

	return err == nil
}

// takesValue reports whether a is a flag in "--name" or "-n" form whose
// value is the next token.
func takesValue(cmd *cobra.Command, a string) bool {
	var fl interface{ Type() string }

	switch {
	case strings.HasPrefix(a, "--") && !strings.Contains(a, "="):
		name := a[2:]
		if v := cmd.Flags().Lookup(name); v != nil {
			fl = v.Value
		} else if v = cmd.PersistentFlags().Lookup(name); v != nil {
			fl = v.Value
		}
	case len(a) == 2 && a[0] == '-' && a[1] != '-':
		name := a[1:]
		if v := cmd.Flags().ShorthandLookup(name); v != nil {
			fl = v.Value
		} else if v = cmd.PersistentFlags().ShorthandLookup(name); v != nil {
			fl = v.Value
		}
	}

	return fl != nil && fl.Type() != "bool"
}
