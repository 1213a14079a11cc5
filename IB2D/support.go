package IB2D

import (
	"fmt"
	"math"

	"github.com/notargets/goib/utils"
)

// SupportIndices1D returns the supp grid indices along one axis whose
// kernel support can overlap the Lagrangian coordinate p, centered on the
// lower-left neighbor of p. Indices are periodic in {0..N-1}; a coordinate
// exactly on the periodic boundary wraps identically to p=0.
func SupportIndices1D(p float64, N int, dx float64, supp int) (I utils.Index) {
	var (
		base = int(math.Floor(p/dx + 1)) // 1-based index of the lower-left neighbor
		offs = utils.NewRange(1-supp/2, supp/2)
	)
	I = utils.NewIndex(supp)
	for j, off := range offs {
		I[j] = pMod(base+off-1, N)
	}
	return
}

// SupportStencil lists, for each Lagrangian point, the supp x supp block of
// Eulerian indices its kernel support covers. The index pairs are stored
// flattened row-major per point, x varying fastest, as an Index2D into the
// Ny x Nx grid.
type SupportStencil struct {
	Grid GridInfo
	I2   utils.Index2D // Length Nb*Supp*Supp
}

func NewSupportStencil(xLag, yLag utils.Vector, gi GridInfo) (st SupportStencil, err error) {
	var (
		supp = gi.Supp
		ns   = supp * supp
	)
	if xLag.Len() != gi.Nb || yLag.Len() != gi.Nb {
		err = fmt.Errorf("point count mismatch: len(x), len(y) = %v, %v, Nb = %v",
			xLag.Len(), yLag.Len(), gi.Nb)
		return
	}
	var (
		RI = utils.NewIndex(gi.Nb * ns)
		CI = utils.NewIndex(gi.Nb * ns)
	)
	for k := 0; k < gi.Nb; k++ {
		var (
			xInds = SupportIndices1D(xLag.AtVec(k), gi.Nx, gi.Dx, supp)
			yInds = SupportIndices1D(yLag.AtVec(k), gi.Ny, gi.Dy, supp)
			base  = k * ns
		)
		for a := 0; a < supp; a++ {
			for b := 0; b < supp; b++ {
				RI[base+a*supp+b] = yInds[a]
				CI[base+a*supp+b] = xInds[b]
			}
		}
	}
	st.Grid = gi
	st.I2, err = utils.NewIndex2D(gi.Ny, gi.Nx, RI, CI)
	return
}
