package IB2D

import (
	"fmt"

	"github.com/notargets/goib/utils"
)

// CouplingOperator is the assembled delta-weight matrix W of shape
// Nb x (Nx*Ny), W[k, yi*Nx+xi] = deltaX*deltaY over the support stencil of
// point k. Its action is interpolation (grid to points) and its transpose
// action is spreading (points to grid); the two share one set of weights.
// Assemble once per set of point positions; the weights are position
// dependent and must be rebuilt after points move.
type CouplingOperator struct {
	Grid GridInfo
	W    utils.CSR
}

func NewCouplingOperator(xLag, yLag utils.Vector, gi GridInfo) (co *CouplingOperator, err error) {
	var (
		supp = gi.Supp
	)
	if xLag.Len() != gi.Nb || yLag.Len() != gi.Nb {
		err = fmt.Errorf("point count mismatch: len(x), len(y) = %v, %v, Nb = %v",
			xLag.Len(), yLag.Len(), gi.Nb)
		return
	}
	dok := utils.NewDOK(gi.Nb, gi.Nx*gi.Ny)
	for k := 0; k < gi.Nb; k++ {
		var (
			xk    = gi.WrapX(xLag.AtVec(k))
			yk    = gi.WrapY(yLag.AtVec(k))
			xInds = SupportIndices1D(xk, gi.Nx, gi.Dx, supp)
			yInds = SupportIndices1D(yk, gi.Ny, gi.Dy, supp)
		)
		for _, yi := range yInds {
			dY := DeltaKernel(PeriodicDistance(float64(yi)*gi.Dy, yk, gi.Ly), gi.Dy)
			for _, xi := range xInds {
				dX := DeltaKernel(PeriodicDistance(float64(xi)*gi.Dx, xk, gi.Lx), gi.Dx)
				if w := dX * dY; w != 0 {
					dok.Set(k, yi*gi.Nx+xi, w)
				}
			}
		}
	}
	W := dok.ToCSR()
	W.SetReadOnly("coupling weights")
	co = &CouplingOperator{
		Grid: gi,
		W:    W,
	}
	return
}

// Interpolate samples the field at every Lagrangian point:
// (W * vec(F)) * dx*dy. For a velocity component this equals the
// interpolation integral the Advector evaluates.
func (co *CouplingOperator) Interpolate(F utils.Matrix) (R utils.Vector, err error) {
	if err = validateField("F", F, co.Grid); err != nil {
		return
	}
	R = utils.NewVector(co.Grid.Nb)
	co.W.DoNonZero(func(i, j int, w float64) {
		R.DataP[i] += w * F.DataP[j]
	})
	R.Scale(co.Grid.CellArea())
	return
}

// Spread projects per-point values onto the grid via the transpose weights,
// scaled by the Lagrangian quadrature weight (typically Ds):
// F = Wt * vals * weight. Force assembly itself is the caller's concern.
func (co *CouplingOperator) Spread(vals utils.Vector, weight float64) (F utils.Matrix, err error) {
	if vals.Len() != co.Grid.Nb {
		err = fmt.Errorf("point value vector has length %v, Nb = %v", vals.Len(), co.Grid.Nb)
		return
	}
	F = utils.NewMatrix(co.Grid.Ny, co.Grid.Nx)
	co.W.DoNonZero(func(i, j int, w float64) {
		F.DataP[j] += w * vals.DataP[i]
	})
	F.Scale(weight)
	return
}
