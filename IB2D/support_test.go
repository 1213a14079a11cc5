package IB2D

import (
	"testing"

	"github.com/notargets/goib/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportIndices1D(t *testing.T) {
	var (
		N    = 32
		dx   = 1.0 / 32
		supp = 4
	)
	// Interior point centered between nodes 16 and 17
	I := SupportIndices1D(0.5, N, dx, supp)
	assert.Equal(t, utils.Index{15, 16, 17, 18}, I)

	// The support straddles the seam near either end of the domain
	I = SupportIndices1D(0.01, N, dx, supp)
	assert.Equal(t, utils.Index{31, 0, 1, 2}, I)
	I = SupportIndices1D(0.99, N, dx, supp)
	assert.Equal(t, utils.Index{30, 31, 0, 1}, I)

	// The domain length aliases to zero
	assert.Equal(t, SupportIndices1D(0., N, dx, supp),
		SupportIndices1D(1.0, N, dx, supp))

	// All indices stay in range and are distinct for every location
	for _, p := range []float64{0, 0.003, 0.2481, 0.5, 0.74, 0.97, 0.9999} {
		for _, s := range []int{2, 4, 6} {
			I = SupportIndices1D(p, N, dx, s)
			require.Equal(t, s, len(I))
			seen := make(map[int]bool)
			for _, ind := range I {
				assert.GreaterOrEqual(t, ind, 0)
				assert.Less(t, ind, N)
				assert.False(t, seen[ind])
				seen[ind] = true
			}
		}
	}
}

func TestSupportStencil(t *testing.T) {
	var (
		gi, err = NewGridInfo(8, 8, 1.0, 1.0, 2, 2, 0.1)
	)
	require.NoError(t, err)
	var (
		xLag = utils.NewVector(2, []float64{0.3, 0.8})
		yLag = utils.NewVector(2, []float64{0.55, 0.05})
	)
	st, err := NewSupportStencil(xLag, yLag, gi)
	require.NoError(t, err)
	assert.Equal(t, 2*2*2, st.I2.Len)

	// Row blocks replicate the y indices while x varies fastest
	xI := SupportIndices1D(0.3, 8, 0.125, 2)
	yI := SupportIndices1D(0.55, 8, 0.125, 2)
	assert.Equal(t, utils.Index{yI[0], yI[0], yI[1], yI[1]}, st.I2.RI[0:4])
	assert.Equal(t, utils.Index{xI[0], xI[1], xI[0], xI[1]}, st.I2.CI[0:4])
	// Flat indices address row-major Ny x Nx storage
	for k := 0; k < st.I2.Len; k++ {
		assert.Equal(t, st.I2.RI[k]*8+st.I2.CI[k], st.I2.Ind[k])
	}

	// Point count disagreement is an error
	_, err = NewSupportStencil(xLag, utils.NewVector(3), gi)
	assert.Error(t, err)
}
