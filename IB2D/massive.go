package IB2D

import (
	"fmt"

	"github.com/notargets/goib/utils"
)

// StandardGravity is the standard acceleration of gravity in m/s^2,
// the 1901 CGPM conventional value.
const StandardGravity = 9.80665

// Gravity switches a constant body acceleration g*(GX, GY) on or off.
// GX, GY are the components of a unit direction vector.
type Gravity struct {
	Enabled bool
	GX, GY  float64
}

// MassiveBoundary holds the boundary points that carry explicit mass and
// obey Newtonian dynamics instead of moving with the fluid. LagIndex maps
// each point into the global Lagrangian force array. Mass must stay
// positive for the life of the simulation; a zero or negative mass is a
// caller bug and surfaces as NaN/Inf, not as an error.
type MassiveBoundary struct {
	LagIndex utils.Index
	X, Y     utils.Vector
	Stiff    utils.Vector // Tether stiffness to the massless partner points
	Mass     utils.Vector
}

// PointVelocities pairs the velocity components of a massive point set.
type PointVelocities struct {
	VX, VY utils.Vector
}

func NewMassiveBoundary(lagIndex utils.Index, x, y, stiff, mass utils.Vector) (mb MassiveBoundary, err error) {
	var (
		n = len(lagIndex)
	)
	if x.Len() != n || y.Len() != n || stiff.Len() != n || mass.Len() != n {
		err = fmt.Errorf("column length mismatch: lagIndex %v, x %v, y %v, stiff %v, mass %v",
			n, x.Len(), y.Len(), stiff.Len(), mass.Len())
		return
	}
	mb = MassiveBoundary{
		LagIndex: lagIndex,
		X:        x,
		Y:        y,
		Stiff:    stiff,
		Mass:     mass,
	}
	return
}

func (mb MassiveBoundary) Len() int { return len(mb.LagIndex) }

// AdvancePosition moves every massive point by dt times its velocity and
// returns the updated set together with an Nb x 2 copy of the pre-update
// positions. Massive points are not wrapped into the domain; a tethered
// structure may legitimately sit outside it. Inputs are not modified.
func AdvancePosition(dt float64, mb MassiveBoundary, vel PointVelocities) (next MassiveBoundary, positionsOld utils.Matrix, err error) {
	var (
		n = mb.Len()
	)
	if vel.VX.Len() != n || vel.VY.Len() != n {
		err = fmt.Errorf("velocity length mismatch: vx %v, vy %v, points %v",
			vel.VX.Len(), vel.VY.Len(), n)
		return
	}
	positionsOld = utils.NewMatrix(n, 2)
	next = mb
	next.X, next.Y = utils.NewVector(n), utils.NewVector(n)
	for i := 0; i < n; i++ {
		x, y := mb.X.AtVec(i), mb.Y.AtVec(i)
		positionsOld.DataP[2*i] = x
		positionsOld.DataP[2*i+1] = y
		next.X.DataP[i] = x + dt*vel.VX.AtVec(i)
		next.Y.DataP[i] = y + dt*vel.VY.AtVec(i)
	}
	return
}

// AdvanceVelocity applies one explicit step of Newton's second law to the
// massive points:
//
//	vel' = vel - dt*(force/mass - g)
//
// where force is looked up per point through LagIndex in the global
// Lagrangian force array (Nb_total x 2, columns fx, fy) and g is the
// gravity contribution when enabled. The result is freshly allocated with
// the shape of vel; inputs are not modified.
func AdvanceVelocity(dt float64, mb MassiveBoundary, vel PointVelocities,
	forceOnMass utils.Matrix, grav Gravity) (next PointVelocities, err error) {
	var (
		n      = mb.Len()
		nr, nc = forceOnMass.Dims()
		gx, gy float64
	)
	if vel.VX.Len() != n || vel.VY.Len() != n {
		err = fmt.Errorf("velocity length mismatch: vx %v, vy %v, points %v",
			vel.VX.Len(), vel.VY.Len(), n)
		return
	}
	if nc != 2 {
		err = fmt.Errorf("force array must have 2 columns, has %v", nc)
		return
	}
	if grav.Enabled {
		gx, gy = StandardGravity*grav.GX, StandardGravity*grav.GY
	}
	next = PointVelocities{
		VX: utils.NewVector(n),
		VY: utils.NewVector(n),
	}
	for i := 0; i < n; i++ {
		id := mb.LagIndex[i]
		if id < 0 || id >= nr {
			err = fmt.Errorf("lagIndex %v of point %v outside force array of %v rows", id, i, nr)
			return
		}
		mass := mb.Mass.AtVec(i)
		next.VX.DataP[i] = vel.VX.AtVec(i) - dt*(forceOnMass.At(id, 0)/mass-gx)
		next.VY.DataP[i] = vel.VY.AtVec(i) - dt*(forceOnMass.At(id, 1)/mass-gy)
	}
	return
}
