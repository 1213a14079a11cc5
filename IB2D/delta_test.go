package IB2D

import (
	"fmt"
	"math"
	"testing"

	"github.com/notargets/goib/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodicDistance(t *testing.T) {
	var (
		L = 1.0
	)
	assert.Equal(t, 0., PeriodicDistance(0.25, 0.25, L))
	assert.InDelta(t, 0.2, PeriodicDistance(0.1, 0.3, L), 1.e-15)
	// Wrapping around the seam is shorter than the direct path
	assert.InDelta(t, 0.2, PeriodicDistance(0.9, 0.1, L), 1.e-15)
	// Symmetry and the half-domain bound
	for _, pair := range [][2]float64{{0.1, 0.95}, {0.5, 0.49}, {0., 0.5}, {0.75, 0.2}} {
		d1 := PeriodicDistance(pair[0], pair[1], L)
		d2 := PeriodicDistance(pair[1], pair[0], L)
		assert.Equal(t, d1, d2)
		assert.LessOrEqual(t, d1, L/2)
		assert.GreaterOrEqual(t, d1, 0.)
	}
}

func TestDeltaKernel(t *testing.T) {
	var (
		dx = 1.0 / 32
	)
	// Compact support with two grid cells on either side
	assert.Equal(t, 0., DeltaKernel(2*dx, dx))
	assert.Equal(t, 0., DeltaKernel(5*dx, dx))
	// The two branches agree at r = 1 where both reduce to 1/(4dx)
	assert.Equal(t, 1/(4*dx), DeltaKernel(dx, dx))
	assert.InDelta(t, 1/(4*dx), DeltaKernel((1-1.e-9)*dx, dx), 1.e-6)
	// Peak value at zero separation
	assert.InDelta(t, 0.5/dx, DeltaKernel(0, dx), 1.e-15)

	{ // Midpoint quadrature over the support integrates to one
		var (
			Nq  = 32768
			h   = 4 * dx / float64(Nq)
			sum float64
		)
		for i := 0; i < Nq; i++ {
			r := -2*dx + (float64(i)+0.5)*h
			sum += DeltaKernel(math.Abs(r), dx) * h
		}
		assert.True(t, near(1., sum, 1.e-6))
	}
	{ // Discrete sum over grid nodes is exactly one for any point location
		var (
			N = 32
			L = 1.0
		)
		for _, p := range []float64{0., 0.013, 0.25, 0.5 + dx/3, 0.997} {
			var sum float64
			for j := 0; j < N; j++ {
				sum += DeltaKernel(PeriodicDistance(float64(j)*dx, p, L), dx) * dx
			}
			assert.True(t, near(1., sum, 10*utils.NODETOL))
		}
	}
}

func TestDeltaKernelsMatrix(t *testing.T) {
	var (
		L  = 2.0
		dx = L / 16
		A  = utils.NewMatrix(2, 3, []float64{0.1, 1.9, 0.5, 1.0, 0.25, 0.75})
		B  = utils.NewMatrix(2, 3, []float64{0.2, 0.1, 1.7, 1.0, 0.30, 0.70})
	)
	Dist, err := PeriodicDistances(A, B, L)
	require.NoError(t, err)
	W := DeltaKernels(Dist, dx)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			d := PeriodicDistance(A.At(i, j), B.At(i, j), L)
			assert.Equal(t, d, Dist.At(i, j))
			assert.Equal(t, DeltaKernel(d, dx), W.At(i, j))
		}
	}
	// Shape mismatch is an error
	_, err = PeriodicDistances(A, utils.NewMatrix(3, 2), L)
	assert.Error(t, err)
}

func nearVec(a, b []float64, tol float64) (l bool) {
	for i, val := range a {
		if !near(b[i], val, tol) {
			fmt.Printf("Diff = %v, Left[%d] = %v, Right[%d] = %v\n", math.Abs(val-b[i]), i, val, i, b[i])
			return false
		}
	}
	return true
}

func near(a, b float64, tolI ...float64) (l bool) {
	var (
		tol float64
	)
	if len(tolI) == 0 {
		tol = 1.e-08
	} else {
		tol = tolI[0]
	}
	bound := math.Max(tol, tol*math.Abs(a))
	if math.Abs(a-b) <= bound {
		l = true
	}
	return
}
