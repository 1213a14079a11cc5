package IB2D

import (
	"fmt"
	"math"

	"github.com/notargets/goib/utils"
)

// PeriodicDistance is the shortest distance between a and b on a periodic
// interval of length L, in [0, L/2] for a, b in [0, L).
func PeriodicDistance(a, b, L float64) (d float64) {
	d = math.Abs(a - b)
	if L-d < d {
		d = L - d
	}
	return
}

// PeriodicDistances applies PeriodicDistance elementwise over two matrices
// of equal shape.
func PeriodicDistances(A, B utils.Matrix, L float64) (R utils.Matrix, err error) {
	var (
		aNr, aNc = A.Dims()
		bNr, bNc = B.Dims()
	)
	if aNr != bNr || aNc != bNc {
		err = fmt.Errorf("mismatched shapes: %v x %v vs %v x %v", aNr, aNc, bNr, bNc)
		return
	}
	R = utils.NewMatrix(aNr, aNc)
	for i, a := range A.DataP {
		R.DataP[i] = PeriodicDistance(a, B.DataP[i], L)
	}
	return
}

// DeltaKernel evaluates the Peskin four point regularized discrete delta
// function at a distance dist on a grid of spacing dx. With r = |dist|/dx:
//
//	0 <= r < 1:  (3 - 2r + sqrt(1 + 4r - 4r^2)) / (8 dx)
//	1 <= r < 2:  (5 - 2r - sqrt(-7 + 12r - 4r^2)) / (8 dx)
//	r >= 2:      0
//
// The two branches agree at r=1 (both give 1/(4 dx)) and the second branch
// reaches zero at r=2, so the kernel is continuous with support of exactly
// four cells. The radicands are non-negative on their branches; round-off
// at the branch ends is clamped rather than propagated as NaN.
func DeltaKernel(dist, dx float64) (delta float64) {
	var (
		r = math.Abs(dist) / dx
	)
	switch {
	case r < 1:
		rad := 1 + 4*r - 4*utils.POW(r, 2)
		if rad < 0 {
			rad = 0
		}
		delta = (3 - 2*r + math.Sqrt(rad)) / (8 * dx)
	case r < 2:
		rad := -7 + 12*r - 4*utils.POW(r, 2)
		if rad < 0 {
			rad = 0
		}
		delta = (5 - 2*r - math.Sqrt(rad)) / (8 * dx)
	}
	return
}

// DeltaKernels applies DeltaKernel elementwise to a matrix of distances.
func DeltaKernels(Dist utils.Matrix, dx float64) (R utils.Matrix) {
	R = Dist.Copy().Apply(func(d float64) float64 {
		return DeltaKernel(d, dx)
	})
	return
}
