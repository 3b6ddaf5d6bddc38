package airnet

// ConstantPowerFan delivers a fixed useful power, so mass flow varies
// inversely with the pressure rise. Below the minimum rise the flow is
// clamped to the PRMin operating point; with zero or adverse rise the
// typical flow applies.
type ConstantPowerFan struct {
	UPO   float64 // useful power output (W)
	PRMin float64 // minimum pressure rise (Pa)
	FTyp  float64 // typical mass flow rate (kg/s)
}

func NewConstantPowerFan(c Coefficients) (e *ConstantPowerFan, err error) {
	e = &ConstantPowerFan{}
	if e.UPO, err = c.required("cpf", "upo"); err != nil {
		return nil, err
	}
	if e.PRMin, err = c.required("cpf", "prmin"); err != nil {
		return nil, err
	}
	if e.FTyp, err = c.required("cpf", "ftyp", "ftype"); err != nil {
		return nil, err
	}
	return
}

func (e *ConstantPowerFan) Type() string { return "cpf" }

func (e *ConstantPowerFan) Calculate(link *Link, pdrop float64) (r FlowResult, err error) {
	prise := -pdrop
	r.Branches = 1
	switch {
	case prise >= e.PRMin && prise > 0.0:
		r.Flow1 = e.UPO / prise
		r.DFlow1 = e.UPO / (pdrop * pdrop)
	case e.PRMin > 0.0:
		r.Flow1 = e.UPO / e.PRMin
	default:
		r.Flow1 = e.FTyp
	}
	return
}
