package utils

import (
	"fmt"
)

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func (I Index) Add(val int) (r Index) {
	r = make(Index, len(I))
	for i, ival := range I {
		r[i] = val + ival
	}
	return r
}

func (I Index) Apply(f func(val int) int) (r Index) {
	r = make(Index, len(I))
	for i, val := range I {
		r[i] = f(val)
	}
	return
}

func (I Index) Subset(J Index) (r Index) {
	r = make(Index, len(J))
	for j, val := range J {
		r[j] = I[val]
	}
	return
}

type Index2D struct {
	RI, CI Index
	Ind    Index // Flat index into row-major storage, Ind = RI*nc + CI
	Len    int
}

func NewIndex2D(nr, nc int, RI, CI Index) (I2 Index2D, err error) {
	if len(RI) != len(CI) {
		err = fmt.Errorf("lengths of row and column indices must be the same: nr, nc = %v, %v\n", len(RI), len(CI))
		return
	}
	I2 = Index2D{
		RI:  RI,
		CI:  CI,
		Ind: make(Index, len(RI)),
		Len: len(RI),
	}
	for i := range RI {
		ri, ci := RI[i], CI[i]
		if ri < 0 || ri >= nr || ci < 0 || ci >= nc {
			err = fmt.Errorf("index out of bounds: ri, ci = %v, %v, nr, nc = %v, %v\n", ri, ci, nr, nc)
			return
		}
		I2.Ind[i] = ri*nc + ci
	}
	return
}
