package IB2D

import (
	"fmt"
	"math"

	"github.com/notargets/goib/utils"
)

// GridInfo describes a uniform periodic Eulerian grid together with the
// Lagrangian discretization coupled to it. It is constructed once per
// simulation configuration and never modified.
type GridInfo struct {
	Nx, Ny int     // Grid resolution in x and y
	Lx, Ly float64 // Domain extents
	Dx, Dy float64 // Grid spacing, Lx/Nx and Ly/Ny
	Supp   int     // Delta kernel support width in grid cells, even
	Nb     int     // Number of Lagrangian boundary points
	Ds     float64 // Lagrangian point spacing
}

func NewGridInfo(Nx, Ny int, Lx, Ly float64, supp, Nb int, ds float64) (gi GridInfo, err error) {
	switch {
	case Nx < 1 || Ny < 1:
		err = fmt.Errorf("grid resolution must be positive: Nx, Ny = %v, %v", Nx, Ny)
		return
	case Lx <= 0 || Ly <= 0:
		err = fmt.Errorf("domain extents must be positive: Lx, Ly = %v, %v", Lx, Ly)
		return
	case supp < 2 || supp%2 != 0:
		err = fmt.Errorf("kernel support width must be even and at least 2: supp = %v", supp)
		return
	case supp > Nx || supp > Ny:
		err = fmt.Errorf("kernel support width %v exceeds grid resolution %v x %v", supp, Nx, Ny)
		return
	case Nb < 0:
		err = fmt.Errorf("number of Lagrangian points must be non-negative: Nb = %v", Nb)
		return
	case Nb > 0 && ds <= 0:
		err = fmt.Errorf("Lagrangian spacing must be positive: ds = %v", ds)
		return
	}
	gi = GridInfo{
		Nx: Nx, Ny: Ny,
		Lx: Lx, Ly: Ly,
		Dx: Lx / float64(Nx), Dy: Ly / float64(Ny),
		Supp: supp,
		Nb:   Nb,
		Ds:   ds,
	}
	return
}

func (gi GridInfo) CellArea() float64 { return gi.Dx * gi.Dy }

// WrapX reduces a coordinate into [0, Lx), including negative inputs.
func (gi GridInfo) WrapX(p float64) float64 { return wrapCoord(p, gi.Lx) }

// WrapY reduces a coordinate into [0, Ly), including negative inputs.
func (gi GridInfo) WrapY(p float64) float64 { return wrapCoord(p, gi.Ly) }

// WrapIndexX reduces a signed index into {0..Nx-1}.
func (gi GridInfo) WrapIndexX(i int) int { return pMod(i, gi.Nx) }

// WrapIndexY reduces a signed index into {0..Ny-1}.
func (gi GridInfo) WrapIndexY(i int) int { return pMod(i, gi.Ny) }

// XCoords returns the x node coordinates, i*Dx for i in 0..Nx-1.
func (gi GridInfo) XCoords() (V utils.Vector) {
	V = utils.NewVector(gi.Nx)
	for i := range V.DataP {
		V.DataP[i] = float64(i) * gi.Dx
	}
	return
}

// YCoords returns the y node coordinates, j*Dy for j in 0..Ny-1.
func (gi GridInfo) YCoords() (V utils.Vector) {
	V = utils.NewVector(gi.Ny)
	for i := range V.DataP {
		V.DataP[i] = float64(i) * gi.Dy
	}
	return
}

// pMod is the positive modulus, pMod(i, n) in {0..n-1} for any signed i.
func pMod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

func wrapCoord(p, L float64) float64 {
	m := math.Mod(p, L)
	if m < 0 {
		m += L
	}
	return m
}
