package airnet

import "math"

// Quadratic is the quadratic flow resistance pdrop = A*f + B*f^2,
// inverted in closed form for the flow.
type Quadratic struct {
	A float64
	B float64
}

func NewQuadratic(c Coefficients) (e *Quadratic, err error) {
	e = &Quadratic{}
	if e.A, err = c.required("qfr", "a"); err != nil {
		return nil, err
	}
	if e.B, err = c.required("qfr", "b"); err != nil {
		return nil, err
	}
	return
}

func (e *Quadratic) Type() string { return "qfr" }

// Calculate solves B*f^2 + A*f - |pdrop| = 0 for the positive root and
// applies the sign of the pressure drop. The derivative follows from
// d(pdrop)/df = A + 2*B*|f|.
func (e *Quadratic) Calculate(link *Link, pdrop float64) (r FlowResult, err error) {
	r.Branches = 1
	if pdrop == 0.0 {
		if e.A != 0.0 {
			r.DFlow1 = 1.0 / e.A
		}
		return
	}
	var (
		dp = math.Abs(pdrop)
		f  float64
	)
	if e.B == 0.0 {
		f = dp / e.A
	} else {
		f = (-e.A + math.Sqrt(e.A*e.A+4.0*e.B*dp)) / (2.0 * e.B)
	}
	r.DFlow1 = 1.0 / (e.A + 2.0*e.B*f)
	if pdrop > 0.0 {
		r.Flow1 = f
	} else {
		r.Flow1 = -f
	}
	return
}
