package utils

import (
	"math"
)

const (
	NODETOL = 1.e-12
)

type EvalOp uint8

const (
	Equal EvalOp = iota
	Less
	Greater
	LessOrEqual
	GreaterOrEqual
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// POW is an integer power fast path, equivalent to math.Pow(x, p)
func POW(x float64, p int) (y float64) {
	var (
		pa = p
	)
	if pa < 0 {
		pa = -pa
	}
	if pa > 8 {
		return math.Pow(x, float64(p))
	}
	y = 1
	for i := 0; i < pa; i++ {
		y *= x
	}
	if p < 0 {
		y = 1. / y
	}
	return
}
