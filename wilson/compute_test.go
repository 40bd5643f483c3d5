package wilson_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/wilsonloop/bloch"
	"github.com/katalvlaran/wilsonloop/wilson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// options returns DefaultOptions with the given resolution, solver and seam policy.
func options(nk int, solver string, closeSeam bool) wilson.Options {
	opts := wilson.DefaultOptions()
	opts.Nk = nk
	opts.Solver = solver
	opts.CloseSeam = closeSeam

	return opts
}

// TestCompute_KnownPhases checks the Chern number across the QWZ phase diagram
// on the reference grid: C = −1 for −2 < M < 0, +1 for 0 < M < 2, 0 for |M| > 2.
func TestCompute_KnownPhases(t *testing.T) {
	cases := []struct {
		name string
		mass float64
		want float64
	}{
		{"Topological_Minus1", -1.0, -1},
		{"Topological_Minus1.5", -1.5, -1},
		{"Topological_Plus0.5", 0.5, 1},
		{"Topological_Plus1", 1.0, 1},
		{"Topological_Plus1.5", 1.5, 1},
		{"Trivial_Minus3", -3.0, 0},
		{"Trivial_Plus3", 3.0, 0},
		{"Trivial_Minus2.5", -2.5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			open, err := wilson.Compute(tc.mass, options(100, bloch.SolverClosedForm, false))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, open.Chern, 0.05, "open sum")
			assert.Equal(t, open.Chern, open.OpenChern)

			closed, err := wilson.Compute(tc.mass, options(100, bloch.SolverClosedForm, true))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, closed.Chern, 1e-9, "closed sum")
			assert.Equal(t, open.OpenChern, closed.OpenChern)
		})
	}
}

// TestCompute_ReferenceRun pins the open-sum value of the reference
// configuration M = −1, Nk = 100; the seam step accounts for the rest.
func TestCompute_ReferenceRun(t *testing.T) {
	res, err := wilson.Compute(-1, wilson.DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, -0.968656, res.Chern, 1e-5)
	assert.Equal(t, -1.0, math.Round(res.Chern))
	assert.Len(t, res.Track, 100)
	assert.Len(t, res.Phases, 100)
	assert.Len(t, res.Spectrum, 100)
	assert.Equal(t, 100, res.Grid.Size())
	assert.Equal(t, -1.0, res.Mass)
}

// TestCompute_TrackContinuous verifies the unwrapped track has no step above π
// and trends monotonically in the topological phase.
func TestCompute_TrackContinuous(t *testing.T) {
	res, err := wilson.Compute(-1, wilson.DefaultOptions())
	require.NoError(t, err)

	assert.LessOrEqual(t, wilson.MaxStep(res.Track), math.Pi)
	assert.Less(t, res.Track[len(res.Track)-1], res.Track[0], "C = −1 winds downwards")
	assert.Equal(t, res.Phases[0], res.Track[0])
}

// TestCompute_DoublingNk verifies the closed winding is invariant under
// doubling Nk and that the open sum converges towards it.
func TestCompute_DoublingNk(t *testing.T) {
	for _, mass := range []float64{-1, 0.5, -2.5} {
		coarse, err := wilson.Compute(mass, options(25, bloch.SolverClosedForm, true))
		require.NoError(t, err)
		fine, err := wilson.Compute(mass, options(50, bloch.SolverClosedForm, true))
		require.NoError(t, err)

		assert.InDelta(t, coarse.Chern, fine.Chern, 1e-6, "closed winding at M=%g", mass)
		if math.Round(fine.Chern) != 0 {
			assert.Less(t, math.Abs(fine.OpenChern-fine.Chern), math.Abs(coarse.OpenChern-coarse.Chern),
				"open sum must approach the closed winding at M=%g", mass)
		}
	}
}

// TestCompute_SolversAgree runs the pipeline with every backend.
func TestCompute_SolversAgree(t *testing.T) {
	ref, err := wilson.Compute(0.5, options(20, bloch.SolverClosedForm, false))
	require.NoError(t, err)
	for _, name := range []string{bloch.SolverJacobi, bloch.SolverGonum} {
		res, err := wilson.Compute(0.5, options(20, name, false))
		require.NoError(t, err)
		assert.InDelta(t, ref.Chern, res.Chern, 1e-9, name)
	}
}

// TestCompute_Deterministic verifies bit-identical repeated runs.
func TestCompute_Deterministic(t *testing.T) {
	a, err := wilson.Compute(-1, options(30, bloch.SolverClosedForm, false))
	require.NoError(t, err)
	b, err := wilson.Compute(-1, options(30, bloch.SolverClosedForm, false))
	require.NoError(t, err)

	assert.Equal(t, a.Spectrum, b.Spectrum)
	assert.Equal(t, a.Track, b.Track)
	assert.True(t, a.Grid.Equal(b.Grid))
}

// TestCompute_Errors verifies input validation happens before any work.
func TestCompute_Errors(t *testing.T) {
	_, err := wilson.Compute(math.NaN(), wilson.DefaultOptions())
	assert.ErrorIs(t, err, wilson.ErrNonFiniteMass)
	_, err = wilson.Compute(math.Inf(-1), wilson.DefaultOptions())
	assert.ErrorIs(t, err, wilson.ErrNonFiniteMass)

	opts := wilson.DefaultOptions()
	opts.Subspace = 2
	_, err = wilson.Compute(-1, opts)
	assert.ErrorIs(t, err, wilson.ErrUnsupportedSubspace)
}

// TestResult_MinModulus covers the empty spectrum and a normal run.
func TestResult_MinModulus(t *testing.T) {
	assert.Equal(t, 0.0, (&wilson.Result{}).MinModulus())

	res, err := wilson.Compute(-3, options(100, bloch.SolverClosedForm, false))
	require.NoError(t, err)
	assert.InDelta(t, 0.9918, res.MinModulus(), 1e-3)
}

// TestNearCritical flags masses next to the gap-closing points only.
func TestNearCritical(t *testing.T) {
	for _, m := range []float64{-2, -2.01, 0, 1e-3, 2, 1.995} {
		assert.True(t, wilson.NearCritical(m, 0.05), "M=%g", m)
	}
	for _, m := range []float64{-3, -1, 1, 3, 0.5} {
		assert.False(t, wilson.NearCritical(m, 0.05), "M=%g", m)
	}
}
