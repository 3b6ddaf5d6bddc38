package airnet

import "math"

const gravity = 9.8 // m/s^2

// Doorway is a power-law opening tall enough for buoyancy-driven two-way
// flow. Below the DTMin temperature difference it degenerates to the
// power law with the stack correction folded into the pressure drop;
// above it the orifice formula is integrated over the doorway height on
// either side of the neutral pressure level.
type Doorway struct {
	PowerLaw
	DTMin float64 // minimum temperature difference for two-way flow (C)
	Ht    float64 // height of doorway (m)
	Wd    float64 // width of doorway (m)
	Cd    float64 // discharge coefficient
}

func NewDoorway(c Coefficients) (e *Doorway, err error) {
	var plr *PowerLaw
	if plr, err = newPowerLaw("dor", c); err != nil {
		return nil, err
	}
	e = &Doorway{PowerLaw: *plr}
	if e.Ht, err = c.required("dor", "ht", "height"); err != nil {
		return nil, err
	}
	if e.Wd, err = c.required("dor", "wd", "width"); err != nil {
		return nil, err
	}
	if e.Cd, err = c.required("dor", "cd", "discharge"); err != nil {
		return nil, err
	}
	e.DTMin = c.optional(0.0, "dtmin")
	return
}

func (e *Doorway) Type() string { return "dor" }

func (e *Doorway) Calculate(link *Link, pdrop float64) (r FlowResult, err error) {
	var (
		node0 = link.Node0
		node1 = link.Node1
		drho  = node0.Density - node1.Density
		gdrho = gravity * drho
	)
	if math.Abs(node0.Temperature-node1.Temperature) < e.DTMin || gdrho == 0.0 {
		// Stack effect too weak for two-way flow: power law at the
		// height-corrected pressure drop.
		return e.PowerLaw.Calculate(link, pdrop-0.5*e.Ht*gdrho)
	}

	var (
		y    = pdrop / gdrho // neutral pressure level height
		coef = 1.414214 * e.Wd * e.Cd
		dr   = math.Abs(drho)
		// Orifice integrals from the bottom of the opening to the
		// neutral level and from the neutral level to the top.
		f0       = (2.0 / 3.0) * coef * math.Sqrt(2.0*gravity*dr*math.Abs(y)) * math.Abs(y)
		fh       = (2.0 / 3.0) * coef * math.Sqrt(2.0*gravity*dr*math.Abs(e.Ht-y)) * math.Abs(e.Ht-y)
		df0, dfh float64
	)
	// f0 and fh scale as |pdrop|^1.5 and |pdrop - gdrho*ht|^1.5.
	if pdrop != 0.0 {
		df0 = 1.5 * f0 / pdrop
	}
	if pdrop != gdrho*e.Ht {
		dfh = 1.5 * fh / (pdrop - gdrho*e.Ht)
	}

	switch {
	case y < 0.0:
		// Neutral level below the opening: one-way flow, direction set
		// by the density difference.
		r.Branches = 1
		if drho > 0.0 {
			r.Flow1 = -node1.SqrtDensity * (fh - f0)
			r.DFlow1 = -node1.SqrtDensity * (dfh - df0)
		} else {
			r.Flow1 = node0.SqrtDensity * (fh - f0)
			r.DFlow1 = node0.SqrtDensity * (dfh - df0)
		}
	case y > e.Ht:
		// Neutral level above the opening: one-way flow the other way up.
		r.Branches = 1
		if drho > 0.0 {
			r.Flow1 = node0.SqrtDensity * (f0 - fh)
			r.DFlow1 = node0.SqrtDensity * (df0 - dfh)
		} else {
			r.Flow1 = -node1.SqrtDensity * (f0 - fh)
			r.DFlow1 = -node1.SqrtDensity * (df0 - dfh)
		}
	default:
		// Neutral level inside the opening: genuine two-way flow, one
		// branch per direction, each weighted by its upstream density.
		r.Branches = 2
		if drho > 0.0 {
			r.Flow1 = node0.SqrtDensity * f0
			r.DFlow1 = node0.SqrtDensity * df0
			r.Flow2 = -node1.SqrtDensity * fh
			r.DFlow2 = -node1.SqrtDensity * dfh
		} else {
			r.Flow1 = -node1.SqrtDensity * f0
			r.DFlow1 = -node1.SqrtDensity * df0
			r.Flow2 = node0.SqrtDensity * fh
			r.DFlow2 = node0.SqrtDensity * dfh
		}
	}
	return
}
