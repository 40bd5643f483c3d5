package bloch_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/wilsonloop/bloch"
	"github.com/katalvlaran/wilsonloop/kgrid"
	"github.com/stretchr/testify/assert"
)

// TestQWZ_Entries checks the matrix entries at a generic momentum.
func TestQWZ_Entries(t *testing.T) {
	k := kgrid.Point{Kx: 0.7, Ky: -1.3}
	const mass = -1.0
	h := bloch.QWZ(k, mass)

	mz := mass + math.Cos(0.7) + math.Cos(-1.3)
	assert.Equal(t, complex(mz, 0), h[0][0])
	assert.Equal(t, complex(-mz, 0), h[1][1])
	assert.Equal(t, complex(math.Sin(0.7), -math.Sin(-1.3)), h[0][1])
	assert.Equal(t, complex(math.Sin(0.7), math.Sin(-1.3)), h[1][0])
}

// TestQWZ_Hermitian verifies H = H† over a sampled zone for several masses.
func TestQWZ_Hermitian(t *testing.T) {
	g, err := kgrid.New(9)
	assert.NoError(t, err)
	for _, mass := range []float64{-3, -2, -1, 0, 0.5, 2, 3} {
		for _, k := range g.Points() {
			h := bloch.QWZ(k, mass)
			assert.True(t, h.IsHermitian(0), "QWZ(%v, %g) must be exactly Hermitian", k, mass)
		}
	}
}

// TestQWZ_Traceless verifies tr H = 0, so eigenvalues come in ±E pairs.
func TestQWZ_Traceless(t *testing.T) {
	h := bloch.QWZ(kgrid.Point{Kx: 2.1, Ky: 0.4}, 1.5)
	assert.Equal(t, complex(0, 0), h[0][0]+h[1][1])
}

// TestGap_MatchesSpectrum compares Gap with the eigenvalue splitting.
func TestGap_MatchesSpectrum(t *testing.T) {
	k := kgrid.Point{Kx: 1.1, Ky: 5.0}
	h := bloch.QWZ(k, -1)
	e, err := bloch.ClosedForm{}.Diagonalize(h)
	assert.NoError(t, err)
	assert.InDelta(t, e.Values[1]-e.Values[0], bloch.Gap(k, -1), 1e-12)
}

// TestGap_ClosesAtCriticalMass checks the gap-closing momenta of the QWZ model.
func TestGap_ClosesAtCriticalMass(t *testing.T) {
	cases := []struct {
		name string
		k    kgrid.Point
		mass float64
	}{
		{"Gamma", kgrid.Point{Kx: 0, Ky: 0}, -2},
		{"M", kgrid.Point{Kx: math.Pi, Ky: math.Pi}, 2},
		{"X", kgrid.Point{Kx: math.Pi, Ky: 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, 0, bloch.Gap(tc.k, tc.mass), 1e-12)
		})
	}
}

// TestVector2_Inner checks conjugate-linearity in the first argument.
func TestVector2_Inner(t *testing.T) {
	v := bloch.Vector2{complex(0, 1), 1}
	w := bloch.Vector2{1, complex(0, 1)}

	assert.Equal(t, complex(0, 0), v.Inner(w))
	assert.Equal(t, complex(2, 0), v.Inner(v))
	assert.InDelta(t, math.Sqrt2, v.Norm(), 1e-15)
	assert.InDelta(t, 1, v.Normalize().Norm(), 1e-15)
	assert.Equal(t, bloch.Vector2{}, bloch.Vector2{}.Normalize())

	phase := cmplx.Exp(complex(0, 0.3))
	scaled := bloch.Vector2{v[0] * phase, v[1] * phase}
	assert.InDelta(t, 0, cmplx.Abs(scaled.Inner(v)-2*cmplx.Conj(phase)), 1e-15)
}

// TestMatrix2_IsHermitian rejects complex diagonals and mismatched off-diagonals.
func TestMatrix2_IsHermitian(t *testing.T) {
	assert.False(t, bloch.Matrix2{{complex(1, 1e-6), 0}, {0, 1}}.IsHermitian(1e-9))
	assert.False(t, bloch.Matrix2{{0, complex(1, 1)}, {complex(1, 1), 0}}.IsHermitian(1e-9))
	assert.True(t, bloch.Matrix2{{0, complex(1, 1)}, {complex(1, -1), 0}}.IsHermitian(0))
}
