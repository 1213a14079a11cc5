package IB2D

import (
	"fmt"

	"github.com/notargets/goib/utils"
)

// Axis selects the derivative direction on a 2D field stored row-major
// [y][x]: AxisX differentiates across columns, AxisY across rows.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return "invalid"
}

// D computes the periodic centered first derivative of a square field,
// (f[i+1]-f[i-1])/(2 dz), wrapping the stencil at the edges: index -1 reads
// the last row/column and index N reads the first.
func D(F utils.Matrix, dz float64, along Axis) (R utils.Matrix, err error) {
	if err = checkOperatorArgs(F, dz, along); err != nil {
		return
	}
	var (
		N     = fieldSize(F)
		half  = 1 / (2 * dz)
		fData = F.DataP
	)
	R = utils.NewMatrix(N, N)
	switch along {
	case AxisX:
		for i := 0; i < N; i++ {
			row := i * N
			for j := 0; j < N; j++ {
				jp, jm := j+1, j-1
				if jp == N {
					jp = 0
				}
				if jm < 0 {
					jm = N - 1
				}
				R.DataP[row+j] = (fData[row+jp] - fData[row+jm]) * half
			}
		}
	case AxisY:
		for i := 0; i < N; i++ {
			ip, im := i+1, i-1
			if ip == N {
				ip = 0
			}
			if im < 0 {
				im = N - 1
			}
			for j := 0; j < N; j++ {
				R.DataP[i*N+j] = (fData[ip*N+j] - fData[im*N+j]) * half
			}
		}
	}
	return
}

// DD computes the periodic centered second derivative of a square field,
// (f[i+1]-2f[i]+f[i-1])/dz^2, with the same edge wrap as D.
func DD(F utils.Matrix, dz float64, along Axis) (R utils.Matrix, err error) {
	if err = checkOperatorArgs(F, dz, along); err != nil {
		return
	}
	var (
		N     = fieldSize(F)
		idz2  = 1 / (dz * dz)
		fData = F.DataP
	)
	R = utils.NewMatrix(N, N)
	switch along {
	case AxisX:
		for i := 0; i < N; i++ {
			row := i * N
			for j := 0; j < N; j++ {
				jp, jm := j+1, j-1
				if jp == N {
					jp = 0
				}
				if jm < 0 {
					jm = N - 1
				}
				R.DataP[row+j] = (fData[row+jp] - 2*fData[row+j] + fData[row+jm]) * idz2
			}
		}
	case AxisY:
		for i := 0; i < N; i++ {
			ip, im := i+1, i-1
			if ip == N {
				ip = 0
			}
			if im < 0 {
				im = N - 1
			}
			for j := 0; j < N; j++ {
				R.DataP[i*N+j] = (fData[ip*N+j] - 2*fData[i*N+j] + fData[im*N+j]) * idz2
			}
		}
	}
	return
}

func checkOperatorArgs(F utils.Matrix, dz float64, along Axis) (err error) {
	var (
		nr, nc = F.Dims()
	)
	switch {
	case along != AxisX && along != AxisY:
		err = fmt.Errorf("derivative axis must be x or y, got %v", along)
	case nr != nc:
		err = fmt.Errorf("derivative operators require a square field, got %v x %v", nr, nc)
	case dz <= 0:
		err = fmt.Errorf("grid spacing must be positive: dz = %v", dz)
	}
	return
}

func fieldSize(F utils.Matrix) int {
	nr, _ := F.Dims()
	return nr
}
