package IB2D

import (
	"fmt"
	"sync"

	"github.com/notargets/goib/utils"
	"gonum.org/v1/gonum/floats"
)

// Fields below this cell count are combined serially
const transportParallelThreshold = 1 << 15

// AdvanceConcentration performs one explicit Euler advection-diffusion step
// of a concentration field on the periodic grid:
//
//	C' = C + dt*(k*(Cxx+Cyy) - uX*Cx - uY*Cy)
//
// with all derivatives from the periodic centered operators D and DD. The
// result is a new field; no input is modified. Explicit-step stability
// (CFL and diffusion number limits on dt) is the caller's responsibility.
func AdvanceConcentration(C utils.Matrix, dt, dx, dy float64, uX, uY utils.Matrix,
	k float64) (CNext utils.Matrix, err error) {
	var (
		nr, nc = C.Dims()
	)
	for _, f := range []struct {
		name string
		m    utils.Matrix
	}{
		{"uX", uX}, {"uY", uY},
	} {
		fNr, fNc := f.m.Dims()
		if fNr != nr || fNc != nc {
			err = fmt.Errorf("velocity field %s has shape %v x %v, concentration is %v x %v",
				f.name, fNr, fNc, nr, nc)
			return
		}
	}
	var Cx, Cy, Cxx, Cyy utils.Matrix
	if Cx, err = D(C, dx, AxisX); err != nil {
		return
	}
	if Cy, err = D(C, dy, AxisY); err != nil {
		return
	}
	if Cxx, err = DD(C, dx, AxisX); err != nil {
		return
	}
	if Cyy, err = DD(C, dy, AxisY); err != nil {
		return
	}
	// Build the right hand side in place over the derivative scratch:
	// rhs = k*(Cxx+Cyy) - uX*Cx - uY*Cy
	rhs := Cxx
	floats.Add(rhs.DataP, Cyy.DataP)
	floats.Scale(k, rhs.DataP)
	Cx.ElMul(uX)
	Cy.ElMul(uY)
	floats.Sub(rhs.DataP, Cx.DataP)
	floats.Sub(rhs.DataP, Cy.DataP)

	CNext = utils.NewMatrix(nr, nc)
	var (
		cells = nr * nc
	)
	if cells < transportParallelThreshold {
		copy(CNext.DataP, C.DataP)
		floats.AddScaled(CNext.DataP, dt, rhs.DataP)
		return
	}
	pm := utils.NewPartitionMap(utils.CalculateParallelDegree(0, cells), cells)
	wg := sync.WaitGroup{}
	for n := 0; n < pm.ParallelDegree; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			iMin, iMax := pm.GetBucketRange(n)
			for i := iMin; i < iMax; i++ {
				CNext.DataP[i] = C.DataP[i] + dt*rhs.DataP[i]
			}
		}(n)
	}
	wg.Wait()
	return
}
