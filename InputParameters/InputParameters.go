package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML run-parameters file. The solver
// settings are handed through to whichever nonlinear solver drives the
// assembled model; the core does not interpret them.
type RunParameters struct {
	Title         string  `yaml:"Title"`
	MaxIterations int     `yaml:"MaxIterations"`
	Tolerance     float64 `yaml:"Tolerance"`
	Relaxation    float64 `yaml:"Relaxation"`
	Verbose       bool    `yaml:"Verbose"`
}

// DefaultRunParameters returns the settings used when no parameters file
// is supplied.
func DefaultRunParameters() *RunParameters {
	return &RunParameters{
		MaxIterations: 30,
		Tolerance:     1.0e-5,
		Relaxation:    0.75,
	}
}

func (rp *RunParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, rp)
}

func (rp *RunParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("[%d]\t\t\t= Max Iterations\n", rp.MaxIterations)
	fmt.Printf("%8.2e\t\t= Tolerance\n", rp.Tolerance)
	fmt.Printf("%8.5f\t\t= Relaxation\n", rp.Relaxation)
}
