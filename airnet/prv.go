package airnet

import "math"

// ReliefValve relieves pressure in either direction through separate
// design-flow power laws.
type ReliefValve struct {
	FPos float64 // design flow rate, positive direction (kg/s)
	CPos float64 // positive pressure coefficient
	FNeg float64 // design flow rate, negative direction (kg/s)
	CNeg float64 // negative pressure coefficient
}

func NewReliefValve(c Coefficients) (e *ReliefValve, err error) {
	e = &ReliefValve{}
	if e.FPos, err = c.required("prv", "fpos"); err != nil {
		return nil, err
	}
	if e.CPos, err = c.required("prv", "cpos"); err != nil {
		return nil, err
	}
	if e.FNeg, err = c.required("prv", "fneg"); err != nil {
		return nil, err
	}
	if e.CNeg, err = c.required("prv", "cneg"); err != nil {
		return nil, err
	}
	return
}

func (e *ReliefValve) Type() string { return "prv" }

func (e *ReliefValve) Calculate(link *Link, pdrop float64) (r FlowResult, err error) {
	r.Branches = 1
	switch {
	case pdrop > 0.0:
		r.Flow1 = e.FPos * math.Pow(pdrop, e.CPos)
		r.DFlow1 = r.Flow1 * e.CPos / pdrop
	case pdrop < 0.0:
		r.Flow1 = -e.FNeg * math.Pow(-pdrop, e.CNeg)
		r.DFlow1 = r.Flow1 * e.CNeg / pdrop
	}
	return
}
