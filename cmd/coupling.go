/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/goib/IB2D"
	"github.com/notargets/goib/InputParameters"
	"github.com/notargets/goib/utils"
)

type CouplingModel struct {
	ParamsFile string
	Steps      int
	Threads    int
}

// CouplingCmd represents the coupling command
var CouplingCmd = &cobra.Command{
	Use:   "coupling",
	Short: "Coupled fiber, massive boundary and scalar transport demo",
	Long: `
Advects a closed fiber of Lagrangian points through an analytic rotating
velocity field while releasing a passive scalar, exercising the full
interpolation and spreading kernel set

goib coupling -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("coupling called")
		cm := &CouplingModel{}
		if cm.ParamsFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		cm.Steps, _ = cmd.Flags().GetInt("steps")
		cm.Threads, _ = cmd.Flags().GetInt("threads")
		cp := processCouplingInput(cm)
		RunCoupling(cm, cp)
	},
}

func processCouplingInput(cm *CouplingModel) (cp *InputParameters.CouplingParameters) {
	var (
		err error
	)
	if len(cm.ParamsFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputParametersFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Rotating Fiber"
Nx: 64
Ny: 64
Lx: 1.
Ly: 1.
SupportWidth: 4
NumPoints: 128
PointSpacing: 0.0245
Dt: 0.0001
FinalTime: 1.
Diffusion: 0.01
Mass: 0.5
Stiffness: 10000.
DyeRate: 1.
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if cp, err = InputParameters.ReadCouplingFile(cm.ParamsFile); err != nil {
		panic(err)
	}
	cp.Print()
	return
}

func init() {
	rootCmd.AddCommand(CouplingCmd)
	CouplingCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- Grid resolution\n\t- Kernel support width")
	CouplingCmd.Flags().IntP("steps", "s", 0, "override the step count from the parameters file")
	CouplingCmd.Flags().IntP("threads", "t", 0, "limit on parallel threads, 0 uses all cores")
}

func RunCoupling(cm *CouplingModel, cp *InputParameters.CouplingParameters) {
	gi, err := cp.GridInfo()
	if err != nil {
		panic(err)
	}
	if cm.Steps > 0 {
		cp.FinalTime = float64(cm.Steps) * cp.Dt
	}
	var (
		Nb     = gi.Nb
		cx, cy = gi.Lx / 2, gi.Ly / 2
		// Fiber circumference Nb*Ds sets the rest radius
		radius = float64(Nb) * gi.Ds / (2 * math.Pi)
		x      = utils.NewVector(Nb)
		y      = utils.NewVector(Nb)
		grav   = cp.GravityModel()
	)
	for k := 0; k < Nb; k++ {
		theta := 2 * math.Pi * float64(k) / float64(Nb)
		x.DataP[k] = cx + radius*math.Cos(theta)
		y.DataP[k] = cy + radius*math.Sin(theta)
	}
	U, V := rotatingField(gi, cx, cy, 2*math.Pi)
	var (
		C   = utils.NewMatrix(gi.Ny, gi.Nx)
		ad  = IB2D.NewAdvector(gi, cp.Porous, cm.Threads)
		dye = utils.NewVector(Nb).Set(cp.DyeRate)
	)
	// The massive boundary starts on the fiber, tethered to its rest shape
	var (
		mb      IB2D.MassiveBoundary
		velMass IB2D.PointVelocities
		force   utils.Matrix
		tX, tY  utils.Vector
	)
	if cp.Mass > 0 {
		if mb, err = IB2D.NewMassiveBoundary(utils.NewRange(0, Nb-1),
			x.Copy(), y.Copy(),
			utils.NewVector(Nb, utils.ConstArray(Nb, cp.Stiffness)),
			utils.NewVector(Nb, utils.ConstArray(Nb, cp.Mass))); err != nil {
			panic(err)
		}
		velMass = IB2D.PointVelocities{VX: utils.NewVector(Nb), VY: utils.NewVector(Nb)}
		force = utils.NewMatrix(Nb, 2)
		tX, tY = x.Copy(), y.Copy()
	}
	var (
		steps  = int(math.Ceil(cp.FinalTime / cp.Dt))
		report = steps / 10
	)
	if report == 0 {
		report = 1
	}
	fmt.Printf("running %d steps on a %d x %d grid with %d points\n", steps, gi.Nx, gi.Ny, Nb)
	for n := 1; n <= steps; n++ {
		if x, y, err = ad.Move(U, V, x, y, x, y, cp.Dt); err != nil {
			panic(err)
		}
		if cp.DyeRate > 0 {
			co, errC := IB2D.NewCouplingOperator(x, y, gi)
			if errC != nil {
				panic(errC)
			}
			S, errC := co.Spread(dye, gi.Ds)
			if errC != nil {
				panic(errC)
			}
			C.Add(S.Scale(cp.Dt))
		}
		if C, err = IB2D.AdvanceConcentration(C, cp.Dt, gi.Dx, gi.Dy, U, V, cp.Diffusion); err != nil {
			panic(err)
		}
		if cp.Mass > 0 {
			for i := 0; i < Nb; i++ {
				force.DataP[2*i] = cp.Stiffness * (mb.X.AtVec(i) - tX.AtVec(i))
				force.DataP[2*i+1] = cp.Stiffness * (mb.Y.AtVec(i) - tY.AtVec(i))
			}
			if mb, _, err = IB2D.AdvancePosition(cp.Dt, mb, velMass); err != nil {
				panic(err)
			}
			if velMass, err = IB2D.AdvanceVelocity(cp.Dt, mb, velMass, force, grav); err != nil {
				panic(err)
			}
		}
		if n%report == 0 || n == steps {
			var (
				fx  = floats.Sum(x.DataP) / float64(Nb)
				fy  = floats.Sum(y.DataP) / float64(Nb)
				tot = floats.Sum(C.DataP) * gi.CellArea()
			)
			fmt.Printf("time = %8.4f, fiber center = (%8.5f, %8.5f), total dye = %8.5f\n",
				float64(n)*cp.Dt, fx, fy, tot)
		}
	}
}

// rotatingField fills grid node velocities with solid body rotation of rate
// omega about (cx, cy)
func rotatingField(gi IB2D.GridInfo, cx, cy, omega float64) (U, V utils.Matrix) {
	U, V = utils.NewMatrix(gi.Ny, gi.Nx), utils.NewMatrix(gi.Ny, gi.Nx)
	for i := 0; i < gi.Ny; i++ {
		yc := float64(i) * gi.Dy
		for j := 0; j < gi.Nx; j++ {
			xc := float64(j) * gi.Dx
			U.Set(i, j, -omega*(yc-cy))
			V.Set(i, j, omega*(xc-cx))
		}
	}
	return
}
