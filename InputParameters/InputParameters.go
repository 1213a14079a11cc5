package InputParameters

import (
	"fmt"
	"io/ioutil"

	"github.com/ghodss/yaml"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/notargets/goib/IB2D"
)

// Parameters obtained from the YAML input file
type CouplingParameters struct {
	Title        string            `yaml:"Title"`
	Nx           int               `yaml:"Nx"`
	Ny           int               `yaml:"Ny"`
	Lx           float64           `yaml:"Lx"`
	Ly           float64           `yaml:"Ly"`
	SupportWidth int               `yaml:"SupportWidth"` // Kernel support in cells per axis, even
	NumPoints    int               `yaml:"NumPoints"`
	PointSpacing float64           `yaml:"PointSpacing"` // Lagrangian quadrature weight Ds
	Dt           float64           `yaml:"Dt"`
	FinalTime    float64           `yaml:"FinalTime"`
	Diffusion    float64           `yaml:"Diffusion"` // Scalar diffusion coefficient
	Porous       bool              `yaml:"Porous"`    // Porous points pass the domain edge unwrapped
	Mass         float64           `yaml:"Mass"`      // Per point mass of the massive boundary
	Stiffness    float64           `yaml:"Stiffness"` // Tether spring stiffness
	DyeRate      float64           `yaml:"DyeRate"`   // Scalar release rate per point
	Gravity      GravityParameters `yaml:"Gravity"`
	Threads      int               `yaml:"Threads"` // 0 uses all available cores
}

type GravityParameters struct {
	Enabled bool    `yaml:"Enabled"`
	GX      float64 `yaml:"GX"` // Unit direction components
	GY      float64 `yaml:"GY"`
}

func (cp *CouplingParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, cp)
}

// ReadCouplingFile loads parameters from a YAML file, expanding a leading
// ~ in the path
func ReadCouplingFile(path string) (cp *CouplingParameters, err error) {
	if path, err = homedir.Expand(path); err != nil {
		return nil, err
	}
	var data []byte
	if data, err = ioutil.ReadFile(path); err != nil {
		return nil, err
	}
	cp = &CouplingParameters{}
	if err = cp.Parse(data); err != nil {
		return nil, err
	}
	return cp, nil
}

// GridInfo validates the grid related parameters into the solver form
func (cp *CouplingParameters) GridInfo() (IB2D.GridInfo, error) {
	return IB2D.NewGridInfo(cp.Nx, cp.Ny, cp.Lx, cp.Ly,
		cp.SupportWidth, cp.NumPoints, cp.PointSpacing)
}

func (cp *CouplingParameters) GravityModel() IB2D.Gravity {
	return IB2D.Gravity{
		Enabled: cp.Gravity.Enabled,
		GX:      cp.Gravity.GX,
		GY:      cp.Gravity.GY,
	}
}

func (cp *CouplingParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("[%d x %d]\t\t= Grid Resolution\n", cp.Nx, cp.Ny)
	fmt.Printf("[%4.2f x %4.2f]\t= Domain Extents\n", cp.Lx, cp.Ly)
	fmt.Printf("[%d]\t\t\t\t= Kernel Support Width\n", cp.SupportWidth)
	fmt.Printf("[%d]\t\t\t= Lagrangian Points\n", cp.NumPoints)
	fmt.Printf("%8.5f\t\t= Dt\n", cp.Dt)
	fmt.Printf("%8.5f\t\t= FinalTime\n", cp.FinalTime)
	fmt.Printf("%8.5f\t\t= Diffusion\n", cp.Diffusion)
	if cp.Gravity.Enabled {
		fmt.Printf("[%4.2f, %4.2f]\t= Gravity Direction\n", cp.Gravity.GX, cp.Gravity.GY)
	}
}
