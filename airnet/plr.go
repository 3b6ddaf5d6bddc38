package airnet

import "math"

// PowerLaw is the orifice/crack power-law resistance element. A laminar
// candidate (linear in pdrop) and a turbulent candidate (pdrop^Expt) are
// both evaluated and the smaller magnitude wins, reproducing the physical
// laminar-to-turbulent transition at low pressure drops.
type PowerLaw struct {
	Init float64 // laminar initialization coefficient
	Lam  float64 // laminar flow coefficient
	Turb float64 // turbulent flow coefficient
	Expt float64 // turbulent flow exponent
}

// NewPowerLaw builds the element from named coefficients. The exponent
// defaults to 0.5 (square-root orifice law).
func NewPowerLaw(c Coefficients) (*PowerLaw, error) {
	return newPowerLaw("plr", c)
}

func newPowerLaw(kind string, c Coefficients) (e *PowerLaw, err error) {
	e = &PowerLaw{}
	if e.Lam, err = c.required(kind, "lam", "laminar"); err != nil {
		return nil, err
	}
	if e.Turb, err = c.required(kind, "turb", "turbulent"); err != nil {
		return nil, err
	}
	e.Init = c.optional(0.0, "init", "linit")
	e.Expt = c.optional(0.5, "expt", "exponent")
	return
}

func (e *PowerLaw) Type() string { return "plr" }

// Calculate evaluates the power law. The pdrop > 0 branch uses Node0's
// properties, the pdrop < 0 branch Node1's, and the zero crossing averages
// both; the asymmetry is deliberate (original code used node0) and keeps
// the law differentiable at the origin.
func (e *PowerLaw) Calculate(link *Link, pdrop float64) (r FlowResult, err error) {
	var (
		cdm, fl, ft float64
	)
	r.Branches = 1
	switch {
	case pdrop > 0.0:
		cdm = e.Lam * link.Node0.DVisc
		fl = cdm * pdrop
		ft = e.Turb * link.Node0.SqrtDensity * math.Pow(pdrop, e.Expt)
		if fl <= ft {
			r.Flow1 = fl
			r.DFlow1 = cdm
		} else {
			r.Flow1 = ft
			r.DFlow1 = ft * e.Expt / pdrop
		}
	case pdrop < 0.0:
		cdm = e.Lam * link.Node1.DVisc
		fl = cdm * pdrop
		ft = -e.Turb * link.Node1.SqrtDensity * math.Pow(-pdrop, e.Expt)
		if fl >= ft {
			r.Flow1 = fl
			r.DFlow1 = cdm
		} else {
			r.Flow1 = ft
			r.DFlow1 = ft * e.Expt / pdrop
		}
	default:
		r.Flow1 = 0.0
		r.DFlow1 = 0.5 * e.Lam * (link.Node0.DVisc + link.Node1.DVisc)
	}
	return
}

// Linearize returns the slope used to seed an unknown-pressure solve
// before any trial pdrop exists.
func (e *PowerLaw) Linearize(link *Link) float64 {
	return 0.5 * e.Init * (link.Node0.DVisc + link.Node1.DVisc)
}
