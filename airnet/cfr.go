package airnet

// ConstantFlow imposes a fixed mass flow regardless of pressure drop,
// e.g. a balanced mechanical supply. The derivative is zero; the outer
// solver must not pivot on this link alone.
type ConstantFlow struct {
	Flow float64 // kg/s
}

func NewConstantFlow(c Coefficients) (e *ConstantFlow, err error) {
	e = &ConstantFlow{}
	if e.Flow, err = c.required("cfr", "flow"); err != nil {
		return nil, err
	}
	return
}

func (e *ConstantFlow) Type() string { return "cfr" }

func (e *ConstantFlow) Calculate(link *Link, pdrop float64) (r FlowResult, err error) {
	r.Branches = 1
	r.Flow1 = e.Flow
	return
}
