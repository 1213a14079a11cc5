package IB2D

import (
	"fmt"
	"sync"

	"github.com/notargets/goib/utils"
	"gonum.org/v1/gonum/blas/blas64"
)

// Advector moves Lagrangian points with the local fluid velocity by
// evaluating the regularized delta interpolation integral
//
//	U(X_k) = sum over the support stencil of u * deltaX * deltaY * dx*dy
//
// which is the discrete form of integrating u(x) * delta(x - X_k) over the
// domain. Kernel support covers exactly Supp x Supp cells per point and
// every stage wraps periodically.
type Advector struct {
	Grid   GridInfo
	Porous bool // Porous points are not wrapped back into the domain
	PM     *utils.PartitionMap
}

func NewAdvector(gi GridInfo, porous bool, procLimit int) (ad *Advector) {
	ad = &Advector{
		Grid:   gi,
		Porous: porous,
		PM:     utils.NewPartitionMap(utils.CalculateParallelDegree(procLimit, gi.Nb), gi.Nb),
	}
	return
}

// Move advances the point set one step: xNext = xPrev + dt * U(xCur).
// Current positions are wrapped into the domain before stencil evaluation;
// results are wrapped unless the boundary is porous. The previous and
// current position vectors are not modified.
func (ad *Advector) Move(U, V utils.Matrix, xPrev, yPrev, xCur, yCur utils.Vector,
	dt float64) (xNext, yNext utils.Vector, err error) {
	var (
		gi = ad.Grid
	)
	if err = validateField("u", U, gi); err != nil {
		return
	}
	if err = validateField("v", V, gi); err != nil {
		return
	}
	for _, vec := range []struct {
		name string
		v    utils.Vector
	}{
		{"xPrev", xPrev}, {"yPrev", yPrev}, {"xCur", xCur}, {"yCur", yCur},
	} {
		if vec.v.Len() != gi.Nb {
			err = fmt.Errorf("point vector %s has length %v, Nb = %v", vec.name, vec.v.Len(), gi.Nb)
			return
		}
	}
	xNext, yNext = utils.NewVector(gi.Nb), utils.NewVector(gi.Nb)
	wg := sync.WaitGroup{}
	for n := 0; n < ad.PM.ParallelDegree; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			kMin, kMax := ad.PM.GetBucketRange(n)
			ad.movePoints(U, V, xPrev, yPrev, xCur, yCur, dt, xNext, yNext, kMin, kMax)
		}(n)
	}
	wg.Wait()
	return
}

// movePoints computes one partition of the point range into the output
// vectors, which are written on disjoint index ranges per partition.
func (ad *Advector) movePoints(U, V utils.Matrix, xPrev, yPrev, xCur, yCur utils.Vector,
	dt float64, xNext, yNext utils.Vector, kMin, kMax int) {
	var (
		gi   = ad.Grid
		supp = gi.Supp
		ns   = supp * supp
		area = gi.CellArea()
		// Per-partition scratch, one stencil at a time
		dXs  = make([]float64, supp)
		dYs  = make([]float64, supp)
		wBuf = make([]float64, ns)
		uBuf = make([]float64, ns)
		vBuf = make([]float64, ns)
	)
	wVec := blas64.Vector{N: ns, Data: wBuf, Inc: 1}
	uVec := blas64.Vector{N: ns, Data: uBuf, Inc: 1}
	vVec := blas64.Vector{N: ns, Data: vBuf, Inc: 1}
	for k := kMin; k < kMax; k++ {
		var (
			xk    = gi.WrapX(xCur.AtVec(k))
			yk    = gi.WrapY(yCur.AtVec(k))
			xInds = SupportIndices1D(xk, gi.Nx, gi.Dx, supp)
			yInds = SupportIndices1D(yk, gi.Ny, gi.Dy, supp)
		)
		for b, xi := range xInds {
			dXs[b] = DeltaKernel(PeriodicDistance(float64(xi)*gi.Dx, xk, gi.Lx), gi.Dx)
		}
		for a, yi := range yInds {
			dYs[a] = DeltaKernel(PeriodicDistance(float64(yi)*gi.Dy, yk, gi.Ly), gi.Dy)
		}
		for a, yi := range yInds {
			rowBase := yi * gi.Nx
			for b, xi := range xInds {
				j := a*supp + b
				wBuf[j] = dXs[b] * dYs[a]
				uBuf[j] = U.DataP[rowBase+xi]
				vBuf[j] = V.DataP[rowBase+xi]
			}
		}
		moveX := blas64.Dot(uVec, wVec) * area
		moveY := blas64.Dot(vVec, wVec) * area
		xn := xPrev.AtVec(k) + dt*moveX
		yn := yPrev.AtVec(k) + dt*moveY
		if !ad.Porous {
			xn = gi.WrapX(xn)
			yn = gi.WrapY(yn)
		}
		xNext.DataP[k] = xn
		yNext.DataP[k] = yn
	}
}

// MoveLagrangianPoints is the one-shot serial form of Advector.Move.
func MoveLagrangianPoints(U, V utils.Matrix, xPrev, yPrev, xCur, yCur utils.Vector,
	dt float64, gi GridInfo, porous bool) (xNext, yNext utils.Vector, err error) {
	return NewAdvector(gi, porous, 1).Move(U, V, xPrev, yPrev, xCur, yCur, dt)
}

func validateField(name string, F utils.Matrix, gi GridInfo) (err error) {
	var (
		nr, nc = F.Dims()
	)
	if nr != gi.Ny || nc != gi.Nx {
		err = fmt.Errorf("field %s has shape %v x %v, grid is %v x %v", name, nr, nc, gi.Ny, gi.Nx)
	}
	return
}
