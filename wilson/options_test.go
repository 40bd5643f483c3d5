package wilson_test

import (
	"testing"

	"github.com/katalvlaran/wilsonloop/bloch"
	"github.com/katalvlaran/wilsonloop/kgrid"
	"github.com/katalvlaran/wilsonloop/wilson"
	"github.com/stretchr/testify/assert"
)

// TestDefaultOptions checks the reference configuration.
func TestDefaultOptions(t *testing.T) {
	opts := wilson.DefaultOptions()
	assert.Equal(t, 2, opts.Bands)
	assert.Equal(t, 1, opts.Subspace)
	assert.Equal(t, 100, opts.Nk)
	assert.Equal(t, bloch.SolverClosedForm, opts.Solver)
	assert.False(t, opts.CloseSeam)
	assert.NoError(t, opts.Validate())
}

// TestOptions_Validate verifies each rejection and its sentinel.
func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*wilson.Options)
		err    error
	}{
		{"ThreeBands", func(o *wilson.Options) { o.Bands = 3 }, wilson.ErrUnsupportedBands},
		{"FullSubspace", func(o *wilson.Options) { o.Subspace = 2 }, wilson.ErrUnsupportedSubspace},
		{"EmptySubspace", func(o *wilson.Options) { o.Subspace = 0 }, wilson.ErrUnsupportedSubspace},
		{"SinglePointGrid", func(o *wilson.Options) { o.Nk = 1 }, kgrid.ErrGridTooSmall},
		{"UnknownSolver", func(o *wilson.Options) { o.Solver = "qr" }, bloch.ErrUnknownSolver},
		{"BandsCheckedFirst", func(o *wilson.Options) { o.Bands = 4; o.Nk = 0 }, wilson.ErrUnsupportedBands},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := wilson.DefaultOptions()
			tc.mutate(&opts)
			assert.ErrorIs(t, opts.Validate(), tc.err)
		})
	}
}

// TestOptions_SmallGridAccepted verifies the minimum resolution is valid.
func TestOptions_SmallGridAccepted(t *testing.T) {
	opts := wilson.DefaultOptions()
	opts.Nk = kgrid.MinSize
	opts.Solver = bloch.SolverJacobi
	assert.NoError(t, opts.Validate())
}
