package airnet

import "math"

// Node is a pressure/temperature state point in the airflow network.
// Fixed nodes carry a boundary pressure; variable nodes are unknowns whose
// pressure the outer solver updates between iterations.
type Node struct {
	Name        string
	Variable    bool
	Height      float64 // m
	Temperature float64 // K
	Pressure    float64 // Pa, gauge

	// Index is the dense 0-based position among variable nodes, assigned
	// during model assembly. It is -1 for fixed nodes.
	Index int

	// Derived thermophysical properties, recomputed from (Temperature,
	// Pressure) by SetProperties and never set independently.
	Density     float64 // kg/m^3
	Viscosity   float64 // Pa.s
	SqrtDensity float64
	DVisc       float64 // density / viscosity
}

// NewNode returns a node with defaults matching a standard indoor state:
// 20 C, zero gauge pressure, zero height.
func NewNode(name string) (n *Node) {
	n = &Node{
		Name:        name,
		Variable:    true,
		Temperature: 293.15,
		Index:       -1,
	}
	return
}

// SetProperties computes density, viscosity, sqrt-density and the
// density/viscosity ratio from the node's temperature and pressure. The
// density constant folds the gas constant for air into the ideal gas law;
// the viscosity is a linear fit valid over building temperatures.
// Temperature = 0 yields Inf/NaN derived values rather than a panic.
func (n *Node) SetProperties() {
	n.Density = 0.0034838 * (101325.0 + n.Pressure) / n.Temperature
	n.SqrtDensity = math.Sqrt(n.Density)
	n.Viscosity = 1.71432e-5 + 4.828e-8*(n.Temperature-273.15)
	n.DVisc = n.Density / n.Viscosity
}
