package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	N := 3
	v1 := NewVector(N).Set(1)
	require.Equal(t, 1., v1.DataP[N-1])
	v1.Set(2)
	require.Equal(t, 2., v1.DataP[N-1])

	// Construction over existing data aliases the slice
	data := []float64{1, 2, 3}
	v2 := NewVector(3, data)
	v2.Scale(2)
	assert.Equal(t, []float64{2, 4, 6}, data)

	// Copy does not alias
	v3 := v2.Copy()
	v3.AddScalar(1)
	assert.Equal(t, []float64{2, 4, 6}, v2.DataP)
	assert.Equal(t, []float64{3, 5, 7}, v3.DataP)

	// Subset
	v4 := NewVector(5, []float64{10, 11, 12, 13, 14})
	I := Index{4, 0, 2}
	assert.Equal(t, []float64{14, 10, 12}, v4.Subset(I).DataP)

	// Apply, Min, Max
	v5 := NewVector(4, []float64{-2, 1, 3, -1}).Apply(func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	})
	assert.Equal(t, 1., v5.Min())
	assert.Equal(t, 3., v5.Max())

	// Length mismatch panics
	assert.Panics(t, func() { NewVector(2, []float64{1, 2, 3}) })
}
