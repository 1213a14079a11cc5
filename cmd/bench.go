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
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/goib/IB2D"
	"github.com/notargets/goib/utils"
)

type BenchModel struct {
	GridSize  int
	NumPoints int
	Steps     int
	Threads   int
	Profile   bool
	Perf      bool
}

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Throughput benchmark of the coupling kernels",
	Long: `
Times repeated point advection and scalar transport steps on a synthetic
rotating field, reporting step rate and memory use

goib bench -n 256 -b 1024 -s 100`,
	Run: func(cmd *cobra.Command, args []string) {
		bm := &BenchModel{}
		bm.GridSize, _ = cmd.Flags().GetInt("gridSize")
		bm.NumPoints, _ = cmd.Flags().GetInt("points")
		bm.Steps, _ = cmd.Flags().GetInt("steps")
		bm.Threads, _ = cmd.Flags().GetInt("threads")
		bm.Profile, _ = cmd.Flags().GetBool("profile")
		bm.Perf, _ = cmd.Flags().GetBool("perf")
		RunBench(bm)
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().IntP("gridSize", "n", 128, "cells per axis of the square grid")
	BenchCmd.Flags().IntP("points", "b", 512, "number of Lagrangian points")
	BenchCmd.Flags().IntP("steps", "s", 100, "number of coupled steps to time")
	BenchCmd.Flags().IntP("threads", "t", 0, "limit on parallel threads, 0 uses all cores")
	BenchCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
	BenchCmd.Flags().Bool("perf", false, "report retired instructions, linux only")
}

func RunBench(bm *BenchModel) {
	var (
		N       = bm.GridSize
		Nb      = bm.NumPoints
		ds      = 1.0 / float64(Nb)
		gi, err = IB2D.NewGridInfo(N, N, 1.0, 1.0, 4, Nb, ds)
	)
	if err != nil {
		panic(err)
	}
	if bm.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	var (
		cx, cy = gi.Lx / 2, gi.Ly / 2
		x      = utils.NewVector(Nb)
		y      = utils.NewVector(Nb)
		dt     = 0.25 * gi.Dx // keeps the explicit steps well inside stability
	)
	for k := 0; k < Nb; k++ {
		theta := 2 * math.Pi * float64(k) / float64(Nb)
		x.DataP[k] = cx + 0.25*math.Cos(theta)
		y.DataP[k] = cy + 0.25*math.Sin(theta)
	}
	var (
		U, V = rotatingField(gi, cx, cy, 1.0)
		C    = utils.NewMatrix(gi.Ny, gi.Nx)
		ad   = IB2D.NewAdvector(gi, false, bm.Threads)
	)
	fmt.Printf("%d steps, %d x %d grid, %d points, %d way parallel\n",
		bm.Steps, N, N, Nb, ad.PM.ParallelDegree)
	loop := func() {
		for n := 0; n < bm.Steps; n++ {
			if x, y, err = ad.Move(U, V, x, y, x, y, dt); err != nil {
				panic(err)
			}
			if C, err = IB2D.AdvanceConcentration(C, dt, gi.Dx, gi.Dy, U, V, 0.001); err != nil {
				panic(err)
			}
		}
	}
	start := time.Now()
	if bm.Perf {
		perfReport(loop)
	} else {
		loop()
	}
	elapsed := time.Since(start)
	fmt.Printf("elapsed = %v, %8.2f steps/sec\n",
		elapsed, float64(bm.Steps)/elapsed.Seconds())
	fmt.Println(utils.GetMemUsage())
}
