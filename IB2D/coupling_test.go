package IB2D

import (
	"math/rand"
	"testing"

	"github.com/notargets/goib/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestCouplingInterpolate(t *testing.T) {
	var (
		N       = 16
		Nb      = 4
		gi, err = NewGridInfo(N, N, 1.0, 1.0, 4, Nb, 0.01)
		rnd     = rand.New(rand.NewSource(3))
	)
	require.NoError(t, err)
	var (
		x = utils.NewVector(Nb, []float64{0.1, 0.48, 0.733, 0.99})
		y = utils.NewVector(Nb, []float64{0.62, 0.25, 0.01, 0.5})
		U = utils.NewMatrix(N, N).Apply(func(float64) float64 { return rnd.Float64() })
		V = utils.NewMatrix(N, N).Apply(func(float64) float64 { return rnd.Float64() })
	)
	co, err := NewCouplingOperator(x, y, gi)
	require.NoError(t, err)

	// Sampling a constant field returns the constant at every point
	ones := utils.NewMatrix(N, N, utils.ConstArray(N*N, 1.))
	R, err := co.Interpolate(ones)
	require.NoError(t, err)
	for k := 0; k < Nb; k++ {
		assert.InDelta(t, 1., R.AtVec(k), 1.e-12)
	}

	// The assembled weights reproduce the advection integral: with dt = 1,
	// zeroed previous positions and porous passthrough, Move returns the
	// raw interpolated velocities
	uAtPoints, err := co.Interpolate(U)
	require.NoError(t, err)
	vAtPoints, err := co.Interpolate(V)
	require.NoError(t, err)
	xNext, yNext, err := MoveLagrangianPoints(U, V,
		utils.NewVector(Nb), utils.NewVector(Nb), x, y, 1.0, gi, true)
	require.NoError(t, err)
	assert.True(t, nearVec(xNext.DataP, uAtPoints.DataP, 1.e-12))
	assert.True(t, nearVec(yNext.DataP, vAtPoints.DataP, 1.e-12))
}

func TestCouplingSpread(t *testing.T) {
	var (
		N       = 16
		Nb      = 3
		ds      = 0.05
		gi, err = NewGridInfo(N, N, 1.0, 1.0, 4, Nb, ds)
	)
	require.NoError(t, err)
	var (
		x    = utils.NewVector(Nb, []float64{0.2, 0.5, 0.81})
		y    = utils.NewVector(Nb, []float64{0.7, 0.5, 0.33})
		vals = utils.NewVector(Nb, []float64{2.0, -1.5, 0.25})
	)
	co, err := NewCouplingOperator(x, y, gi)
	require.NoError(t, err)
	F, err := co.Spread(vals, ds)
	require.NoError(t, err)

	// Spreading preserves the total: the discrete grid integral equals the
	// Lagrangian sum times its quadrature weight
	assert.InDelta(t, ds*floats.Sum(vals.DataP),
		gi.CellArea()*floats.Sum(F.DataP), 1.e-12)
}

func TestCouplingAdjoint(t *testing.T) {
	var (
		N       = 16
		Nb      = 5
		gi, err = NewGridInfo(N, N, 1.0, 1.0, 4, Nb, 0.01)
		rnd     = rand.New(rand.NewSource(11))
	)
	require.NoError(t, err)
	var (
		x = utils.NewVector(Nb)
		y = utils.NewVector(Nb)
		F = utils.NewMatrix(N, N).Apply(func(float64) float64 { return rnd.Float64() - 0.5 })
		g = utils.NewVector(Nb)
	)
	for k := 0; k < Nb; k++ {
		x.DataP[k] = rnd.Float64()
		y.DataP[k] = rnd.Float64()
		g.DataP[k] = rnd.Float64() - 0.5
	}
	co, err := NewCouplingOperator(x, y, gi)
	require.NoError(t, err)

	// Interpolation and spreading are transposes of one another:
	// <Interp(F), g> over points equals <F, Spread(g, area)> over cells
	iF, err := co.Interpolate(F)
	require.NoError(t, err)
	sG, err := co.Spread(g, gi.CellArea())
	require.NoError(t, err)
	assert.InDelta(t, floats.Dot(iF.DataP, g.DataP),
		floats.Dot(F.DataP, sG.DataP), 1.e-12)
}

func TestCouplingSupport(t *testing.T) {
	var (
		N       = 16
		gi, err = NewGridInfo(N, N, 1.0, 1.0, 4, 1, 0.01)
	)
	require.NoError(t, err)

	// A point exactly on a node keeps the kernel zeros out of the matrix:
	// three nonzero weights per axis
	co, err := NewCouplingOperator(
		utils.NewVector(1, []float64{0.5}), utils.NewVector(1, []float64{0.5}), gi)
	require.NoError(t, err)
	assert.Equal(t, 9, co.W.NNZ())

	// A generic point touches its full stencil, never more
	co, err = NewCouplingOperator(
		utils.NewVector(1, []float64{0.513}), utils.NewVector(1, []float64{0.497}), gi)
	require.NoError(t, err)
	assert.Equal(t, 16, co.W.NNZ())

	// The spread footprint on the grid is the same stencil
	F, err := co.Spread(utils.NewVector(1, []float64{1.0}), 1.0)
	require.NoError(t, err)
	assert.Equal(t, 16, F.Find(utils.Greater, 0).Len)
}

func TestCouplingValidation(t *testing.T) {
	var (
		gi, err = NewGridInfo(16, 16, 1.0, 1.0, 4, 2, 0.01)
	)
	require.NoError(t, err)
	_, err = NewCouplingOperator(utils.NewVector(2), utils.NewVector(3), gi)
	assert.Error(t, err)

	co, err := NewCouplingOperator(utils.NewVector(2), utils.NewVector(2), gi)
	require.NoError(t, err)
	_, err = co.Interpolate(utils.NewMatrix(8, 16))
	assert.Error(t, err)
	_, err = co.Spread(utils.NewVector(3), 0.01)
	assert.Error(t, err)
}
