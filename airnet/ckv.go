package airnet

import "math"

// CheckValve passes flow in the forward direction once the pressure drop
// exceeds the cut-off and blocks it entirely otherwise.
type CheckValve struct {
	DP0  float64 // cut-off pressure (Pa)
	Coef float64 // flow coefficient
}

func NewCheckValve(c Coefficients) (e *CheckValve, err error) {
	e = &CheckValve{}
	if e.DP0, err = c.required("ckv", "dp0"); err != nil {
		return nil, err
	}
	if e.Coef, err = c.required("ckv", "coef", "coeff"); err != nil {
		return nil, err
	}
	return
}

func (e *CheckValve) Type() string { return "ckv" }

// Calculate applies the square-root orifice law to the excess pressure
// above the cut-off. At or below the cut-off the flow and derivative are
// exactly zero: a closed valve contributes nothing to the linearization.
func (e *CheckValve) Calculate(link *Link, pdrop float64) (r FlowResult, err error) {
	r.Branches = 1
	if pdrop <= e.DP0 {
		return
	}
	excess := pdrop - e.DP0
	r.Flow1 = e.Coef * link.Node0.SqrtDensity * math.Sqrt(excess)
	r.DFlow1 = 0.5 * r.Flow1 / excess
	return
}
