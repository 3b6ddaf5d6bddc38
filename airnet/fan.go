package airnet

import "fmt"

// FanPoint is one segment of a fan performance curve: pressure rise as a
// cubic polynomial of mass flow, valid up to the segment's flow limit.
type FanPoint struct {
	A1, A2, A3, A4 float64 // prise = A1 + A2*f + A3*f^2 + A4*f^3
	MF             float64 // upper mass flow limit of the segment (kg/s)
}

// Fan is a performance-curve fan. When running, the operating point is
// found by Newton inversion of the piecewise cubic curve against the
// pressure rise; below the Off relative speed, or past the shut-off
// pressure, the embedded power law models case leakage.
type Fan struct {
	PowerLaw
	RDens float64 // reference fluid density (kg/m^3)
	FDF   float64 // free delivery flow at zero pressure rise (kg/s)
	SOP   float64 // shut-off pressure at zero flow (Pa)
	Off   float64 // fan is off below this rpm/rated-rpm ratio
	MF1   float64 // lower mass flow limit of the first curve segment
	Pts   []FanPoint

	// Speed is the current rpm/rated-rpm ratio, 1.0 for a fan running at
	// its rated point.
	Speed float64
}

func NewFan(c Coefficients, pts []FanPoint) (e *Fan, err error) {
	var plr *PowerLaw
	if plr, err = newPowerLaw("fan", c); err != nil {
		return nil, err
	}
	e = &Fan{PowerLaw: *plr, Pts: pts, Speed: 1.0}
	if e.RDens, err = c.required("fan", "rdens"); err != nil {
		return nil, err
	}
	if e.FDF, err = c.required("fan", "fdf"); err != nil {
		return nil, err
	}
	if e.SOP, err = c.required("fan", "sop"); err != nil {
		return nil, err
	}
	e.Off = c.optional(0.0, "off", "ltt")
	e.MF1 = c.optional(0.0, "mfl", "mf1")
	return
}

func (e *Fan) Type() string { return "fan" }

func (e *Fan) Calculate(link *Link, pdrop float64) (r FlowResult, err error) {
	prise := -pdrop
	if e.Speed < e.Off || prise > e.SOP {
		// Fan off or overpowered: only case leakage remains.
		return e.PowerLaw.Calculate(link, pdrop)
	}
	if len(e.Pts) == 0 {
		return r, fmt.Errorf("fan element has no performance curve: %w", ErrUnimplemented)
	}
	var (
		f  = e.FDF // seed at free delivery
		df float64
	)
	for i := 0; i < 30; i++ {
		p, dp := e.curve(f)
		if dp == 0.0 {
			break
		}
		step := (p - prise) / dp
		f -= step
		if step < 1.0e-10 && step > -1.0e-10 {
			break
		}
	}
	_, dp := e.curve(f)
	if dp != 0.0 {
		df = -1.0 / dp // dP/df < 0 on a stable curve, so df/dpdrop > 0
	}
	r.Branches = 1
	r.Flow1 = f
	r.DFlow1 = df
	return
}

// curve evaluates the piecewise performance polynomial and its slope at a
// mass flow, clamping to the outer segments beyond the tabulated range.
func (e *Fan) curve(f float64) (p, dp float64) {
	seg := e.Pts[0]
	for _, pt := range e.Pts[1:] {
		if f <= seg.MF {
			break
		}
		seg = pt
	}
	p = seg.A1 + f*(seg.A2+f*(seg.A3+f*seg.A4))
	dp = seg.A2 + f*(2.0*seg.A3+3.0*f*seg.A4)
	return
}
